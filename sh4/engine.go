package sh4

import "github.com/retrocore/sh4dc/opcodes"

func (c *CPU) advancePC(wasDelayPending bool) {
	if wasDelayPending {
		c.Regs.SetPC(c.delayTarget)
		c.delayPending = false
		return
	}
	if c.pcOverridden {
		c.pcOverridden = false
		return
	}
	c.Regs.SetPC(c.Regs.PC() + 2)
}

// peekWord reads an instruction word without translating a bus fault into
// an architectural exception; used only for the speculative co-issue probe,
// which must not have any observable effect when it decides not to execute.
func (c *CPU) peekWord(addr uint32) (uint16, bool) {
	v, err := c.bus.Read16(addr)
	return v, err == nil
}

// coIssuable implements the group-compatibility matrix in spec §4.5:
// CO never co-issues; MT co-issues with anything non-CO; any other pair
// co-issues iff their groups differ.
func coIssuable(a, b opcodes.Group) bool {
	if a == opcodes.GroupCO || b == opcodes.GroupCO {
		return false
	}
	if a == opcodes.GroupMT || b == opcodes.GroupMT {
		return true
	}
	return a != b
}

// tryCoIssue speculatively executes the instruction now at PC for free when
// it is compatible with firstGroup, per spec §4.5 step 7. It is only
// attempted after a straight-line (non-delay-slot-setting) instruction, so
// the delayed-branch sequencing in §4.6 and the co-issue optimization here
// never interact.
func (c *CPU) tryCoIssue(firstGroup opcodes.Group) error {
	pc := c.Regs.PC()
	word, ok := c.peekWord(pc)
	if !ok {
		return nil // let the main loop's real fetch raise the fault
	}
	d := c.table.Decode(word)
	if !coIssuable(firstGroup, d.Group) {
		return nil
	}
	if checkSlotIllegal(c, d.PCRelative) {
		// Can only happen if the probed instruction is itself pc_relative
		// while a branch set delayPending moments ago, which tryCoIssue's
		// caller already excludes; kept as a defensive no-op path.
		return nil
	}
	savedCurrentPC := c.currentPC
	c.currentPC = pc
	fault, err := c.dispatch(d, word)
	c.currentPC = savedCurrentPC
	if err != nil {
		return err
	}
	if fault {
		return nil
	}
	c.advancePC(false)
	return nil
}

// serviceInterrupt enters the highest-priority pending interrupt when it is
// unblocked (SR.BL clear and priority exceeds IMASK), per spec §4.5 step 2.
func (c *CPU) serviceInterrupt() bool {
	p := c.pendingInterrupt
	if p == nil || c.Regs.BL() {
		return false
	}
	if p.Priority <= int(c.Regs.IMASK()) {
		return false
	}
	c.pendingInterrupt = nil
	c.raiseException(ExcInterrupt, c.Regs.PC(), uint32(p.Code))
	return true
}

// executeOne fetches, decodes, and executes exactly one instruction,
// reporting how many cycles it consumed. If the decoded issue cost exceeds
// budget, it does nothing and reports stop=true so Run can save the
// remainder and return.
func (c *CPU) executeOne(budget int) (consumed int, stop bool, err error) {
	c.currentPC = c.Regs.PC()
	word, faulted := c.readWord(c.currentPC)
	if faulted {
		return 0, false, nil
	}
	d := c.table.Decode(word)
	if checkSlotIllegal(c, d.PCRelative) {
		return 0, false, nil
	}
	cost := int(d.Issue)
	if cost > budget {
		return 0, true, nil
	}
	wasDelayPending := c.delayPending
	fault, err := c.dispatch(d, word)
	if err != nil {
		return 0, false, err
	}
	if fault {
		return cost, false, nil
	}
	c.advancePC(wasDelayPending)
	if !wasDelayPending && !c.delayPending && d.Group != opcodes.GroupCO {
		if err := c.tryCoIssue(d.Group); err != nil {
			return cost, false, err
		}
	}
	return cost, false, nil
}

// Run executes instructions until at least nCycles of CPU time has been
// consumed, accounting for carry-over from previous calls, per spec §4.5.
func (c *CPU) Run(host Host, nCycles int) error {
	remaining := nCycles + c.cycleAccumulator
	for remaining > 0 {
		if c.state != StateNormal {
			if c.serviceInterrupt() {
				c.state = StateNormal
				continue
			}
			host.CreditCycles(1)
			remaining--
			continue
		}
		if c.serviceInterrupt() {
			continue
		}
		consumed, stop, err := c.executeOne(remaining)
		if err != nil {
			return err
		}
		if stop {
			break
		}
		if consumed > 0 {
			host.CreditCycles(consumed)
		}
		remaining -= consumed
		if consumed == 0 {
			// An exception redirected PC without consuming budget; loop
			// again immediately rather than spin forever on remaining<=0.
			continue
		}
	}
	if remaining < 0 {
		remaining = 0
	}
	c.cycleAccumulator = remaining
	return nil
}

// Step executes exactly one instruction, with no speculative co-issue and
// no cycle credit to any scheduler, for use by debuggers and tests.
func (c *CPU) Step() error {
	if c.state != StateNormal {
		if c.serviceInterrupt() {
			c.state = StateNormal
		}
		return nil
	}
	if c.serviceInterrupt() {
		return nil
	}
	c.currentPC = c.Regs.PC()
	word, faulted := c.readWord(c.currentPC)
	if faulted {
		return nil
	}
	d := c.table.Decode(word)
	if checkSlotIllegal(c, d.PCRelative) {
		return nil
	}
	wasDelayPending := c.delayPending
	fault, err := c.dispatch(d, word)
	if err != nil {
		return err
	}
	if fault {
		return nil
	}
	c.advancePC(wasDelayPending)
	return nil
}

// RunUntil steps until PC equals addr, used by debuggers and tests that
// need to stop at a breakpoint rather than after a cycle budget.
func (c *CPU) RunUntil(addr uint32) error {
	for c.Regs.PC() != addr {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
