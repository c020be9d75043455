package sh4

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/retrocore/sh4dc/internal/snapshot"
	"github.com/retrocore/sh4dc/xerrors"
)

// Snapshot captures the complete architectural state for save-states and
// diagnostics, per spec §3's "diagnostic snapshot".
func (c *CPU) Snapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		GPR:      c.Regs.GPRSnapshot(),
		GPRBank:  c.Regs.BankSnapshot(),
		SR:       c.Regs.SR(),
		GBR:      c.Regs.GBR(),
		VBR:      c.Regs.VBR(),
		SSR:      c.Regs.SSR(),
		SPC:      c.Regs.SPC(),
		SGR:      c.Regs.SGR(),
		DBR:      c.Regs.DBR(),
		MACH:     c.Regs.MACH(),
		MACL:     c.Regs.MACL(),
		PR:       c.Regs.PR(),
		PC:       c.Regs.PC(),
		FPSCR:    c.FPU.FPSCR(),
		FPUL:     c.FPU.FPUL(),
		FRBank:   c.FPU.BankSnapshot(),
		StoreQ:   c.sq.queue,
		DelayPC:  c.delayPending,
		DelayAt:  c.delayTarget,
		CycleAcc: c.cycleAccumulator,
	}
}

// internalError wraps cause as a curated error carrying a diagnostic
// Snapshot and a stack trace from the point the underlying fault crossed
// into the CPU, per spec §7's note on the teacher's Boost-style error info
// carrier. Unlike raiseException, this is a genuine Go error: it signals a
// bug in the core's own bookkeeping, not an architectural event.
func (c *CPU) internalError(cause error) error {
	snap := c.Snapshot()
	wrapped := xerrors.Errorf("sh4: internal consistency violation at pc=%#x: %w (snapshot=%+v)", c.currentPC, cause, snap)
	return pkgerrors.WithStack(wrapped)
}
