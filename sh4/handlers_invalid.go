package sh4

import "github.com/retrocore/sh4dc/opcodes"

// invalidOpcode is the handler for the "invalid" descriptor: general-illegal
// in normal context, or slot-illegal if a delayed branch is pending, per
// spec §4.3.9.
func invalidOpcode(c *CPU, word uint16) (bool, error) {
	if c.delayPending {
		c.raiseException(ExcSlotIllegal, c.currentPC, 0)
	} else {
		c.raiseException(ExcGeneralIllegal, c.currentPC, 0)
	}
	return true, nil
}

func invalidHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		opcodes.OpInvalid: invalidOpcode,
	}
}

// requirePrivileged raises the general-illegal exception (promoted from the
// source's "unimplemented feature" TODO per spec §9 Design Notes) and
// reports fault=true when called from user mode; it returns false
// otherwise, letting the caller continue its privileged-only effect.
func requirePrivileged(c *CPU) bool {
	if c.Regs.MD() {
		return false
	}
	c.raiseException(ExcGeneralIllegal, c.currentPC, 0)
	return true
}

// checkSlotIllegal raises slot-illegal-instruction and reports fault=true
// when d.PCRelative is true and a delayed branch is already pending,
// implementing the delay-slot rule in spec §4.3.4 / §4.6. It passes the
// delay slot's own address (c.currentPC), but because a branch is pending,
// raiseException replaces it with the branch's address (delayBranchPC): SPC
// holds the branch instruction's PC, not the delay slot's.
func checkSlotIllegal(c *CPU, pcRelative bool) bool {
	if pcRelative && c.delayPending {
		c.raiseException(ExcSlotIllegal, c.currentPC, 0)
		return true
	}
	return false
}
