// Package sh4 implements the SH-4 instruction-set core: the register file
// and FPU (via packages registers and fpu), the decode table (via package
// opcodes), every instruction handler, delayed-branch sequencing, dual-issue
// cycle accounting, the exception-entry protocol, store queues, and the
// on-chip register block. Everything outside this set — the physical
// memory map, MMU, peripherals, and scheduler — is reached only through
// the bus.CPUBus and Host interfaces.
package sh4

import (
	"github.com/retrocore/sh4dc/bus"
	"github.com/retrocore/sh4dc/fpu"
	"github.com/retrocore/sh4dc/logger"
	"github.com/retrocore/sh4dc/opcodes"
	"github.com/retrocore/sh4dc/registers"
)

// Host is the scheduler collaborator the execution engine credits with
// consumed cycles. It generalizes the teacher's single-cycle callback
// convention to the SH-4's multi-cycle, dual-issue instruction cost: one
// call to CreditCycles happens per issued instruction slot (which may cover
// two co-issued instructions), not once per cycle.
type Host interface {
	CreditCycles(n int)
}

// ExecState is the coarse execution state described in spec §3.4.
type ExecState uint8

const (
	StateNormal ExecState = iota
	StateSleep
	StateStandby
)

// CPU is the complete architectural state of one SH-4 core.
type CPU struct {
	Regs *registers.File
	FPU  *fpu.File

	bus   bus.CPUBus
	table *opcodes.Table
	log   *logger.Log

	state ExecState

	delayPending bool
	delayTarget  uint32

	// delayBranchPC is the address of the branch instruction that set
	// delayPending, captured by setDelay. raiseException uses it to restart
	// at the branch itself, rather than at the delay slot, whenever the
	// fault it is reporting occurred with a branch still pending.
	delayBranchPC uint32

	// pcOverridden is set by a handler that has already written PC directly
	// (the non-delay-slot conditional branches, BT/BF) so advancePC's normal
	// PC+2 step is skipped for this instruction only.
	pcOverridden bool

	cycleAccumulator int

	// currentPC is the address of the instruction presently executing; used
	// as the SPC value when a handler raises a re-execution-type exception.
	currentPC uint32

	sq StoreQueues

	mmio MMIO

	// pendingInterrupt, when non-nil, is consulted at the top of the Run
	// loop; set by the surrounding scheduler via RequestInterrupt.
	pendingInterrupt *PendingInterrupt
}

// PendingInterrupt describes an externally raised interrupt awaiting entry.
type PendingInterrupt struct {
	Code     ExceptionCode
	Priority int
}

// New constructs a CPU wired to the given bus collaborator and performs a
// power-on reset. log may be nil to disable bank-flip/system logging.
func New(b bus.CPUBus, log *logger.Log) *CPU {
	c := &CPU{
		Regs:  registers.New(log),
		FPU:   fpu.New(log),
		bus:   b,
		table: opcodes.Global(),
		log:   log,
	}
	c.mmio.init(c)
	return c
}

// Reset restores power-on/manual-reset state, per spec §3.5.
func (c *CPU) Reset() {
	c.Regs.Reset()
	c.FPU.Reset()
	c.state = StateNormal
	c.delayPending = false
	c.delayTarget = 0
	c.delayBranchPC = 0
	c.pcOverridden = false
	c.cycleAccumulator = 0
	c.sq = StoreQueues{}
}

// State returns the current coarse execution state (NORMAL/SLEEP/STANDBY).
func (c *CPU) State() ExecState { return c.state }

// RequestInterrupt records an externally raised interrupt for the Run loop
// to consider before the next fetch. Only one interrupt can be pending at
// the core's boundary at a time; the surrounding interrupt controller is
// responsible for presenting the highest-priority one.
func (c *CPU) RequestInterrupt(p PendingInterrupt) {
	c.pendingInterrupt = &p
}

// DelayPending and DelayTarget expose the delayed-branch sequencing state,
// used by save-states and tests.
func (c *CPU) DelayPending() bool   { return c.delayPending }
func (c *CPU) DelayTarget() uint32  { return c.delayTarget }
func (c *CPU) CycleAccumulator() int { return c.cycleAccumulator }
