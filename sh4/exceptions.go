package sh4

// ExceptionCode enumerates the architectural events the core can raise,
// per the taxonomy in spec §7. None of these are Go errors: they are data
// consumed by raiseException, which rewrites CPU state so the next fetch
// targets the handler.
type ExceptionCode uint16

const (
	ExcGeneralIllegal ExceptionCode = iota
	ExcSlotIllegal
	ExcFPUDisable
	ExcFPUException
	ExcGeneralFPU
	ExcMemoryReadError
	ExcMemoryWriteError
	ExcTrap
	ExcInterrupt
	ExcReset
)

// kind distinguishes the three offset classes named in spec §4.4 step 5.
type excKind uint8

const (
	kindReExecution excKind = iota
	kindTLBMiss
	kindInterrupt
	kindReset
)

// excMeta holds the priority level, priority order, and PC offset for one
// exception code. It is a plain slice indexed by ExceptionCode, not a map,
// so it is allocated once and stays branch-table friendly, per spec §4.4a.
type excMeta struct {
	priorityLevel int
	priorityOrder int
	kind          excKind
	code          uint32 // value shifted into EXPEVT/INTEVT
}

var exceptionTable = [...]excMeta{
	ExcReset:            {priorityLevel: 0, priorityOrder: 0, kind: kindReset, code: 0x000},
	ExcGeneralIllegal:   {priorityLevel: 1, priorityOrder: 1, kind: kindReExecution, code: 0x180},
	ExcSlotIllegal:      {priorityLevel: 1, priorityOrder: 0, kind: kindReExecution, code: 0x1A0},
	ExcFPUDisable:       {priorityLevel: 1, priorityOrder: 2, kind: kindReExecution, code: 0x800},
	ExcFPUException:     {priorityLevel: 2, priorityOrder: 0, kind: kindReExecution, code: 0x120},
	ExcGeneralFPU:       {priorityLevel: 2, priorityOrder: 1, kind: kindReExecution, code: 0x120},
	ExcMemoryReadError:  {priorityLevel: 2, priorityOrder: 2, kind: kindReExecution, code: 0x0E0},
	ExcMemoryWriteError: {priorityLevel: 2, priorityOrder: 3, kind: kindReExecution, code: 0x100},
	ExcTrap:             {priorityLevel: 2, priorityOrder: 4, kind: kindReExecution, code: 0x160},
	ExcInterrupt:        {priorityLevel: 3, priorityOrder: 0, kind: kindInterrupt, code: 0x000},
}

const (
	offsetReExecution = 0x100
	offsetTLBMiss     = 0x400
	offsetInterrupt   = 0x600
)

func (k excKind) offset() uint32 {
	switch k {
	case kindTLBMiss:
		return offsetTLBMiss
	case kindInterrupt:
		return offsetInterrupt
	default:
		return offsetReExecution
	}
}

// sr field bit positions duplicated here to avoid exporting them from
// package registers purely for this procedure.
const (
	srBL = 1 << 28
	srRB = 1 << 29
	srMD = 1 << 30
	srFD = 1 << 15
)

// raiseException implements the exception-entry procedure in spec §4.4.
// faultPC is the SPC value: the faulting instruction's address for
// re-execution-type exceptions, or the next instruction's address for
// completion-type ones. interruptCode carries the raw INTEVT value for
// ExcInterrupt; it is ignored for every other code.
func (c *CPU) raiseException(ec ExceptionCode, faultPC uint32, interruptCode uint32) {
	meta := exceptionTable[ec]

	if meta.kind == kindReExecution && c.delayPending {
		// The faulting instruction was itself occupying a pending delay
		// slot (a nested delayed branch, or a memory fault raised while
		// executing the slot): the pending branch must not be committed,
		// per spec §4.6, so re-execution resumes at the branch instruction
		// itself, re-establishing the whole branch-plus-slot sequence on
		// return, rather than at the slot instruction alone.
		faultPC = c.delayBranchPC
	}
	c.delayPending = false
	c.delayTarget = 0
	c.pcOverridden = false

	c.Regs.SetSPC(faultPC)
	c.Regs.SetSSR(c.Regs.SR())
	c.Regs.SetSGR(c.Regs.R(15))

	newSR := c.Regs.SR() | (srBL | srMD | srRB)
	newSR &^= srFD
	c.Regs.SetSR(newSR)

	if ec == ExcReset {
		c.Regs.SetPC(0xA0000000)
		return
	}

	if ec == ExcInterrupt {
		c.mmio.setINTEVT(interruptCode)
	} else {
		c.mmio.setEXPEVT(meta.code)
	}

	c.Regs.SetPC(c.Regs.VBR() + meta.kind.offset())
}
