package sh4

import "github.com/retrocore/sh4dc/opcodes"

// The cache-management triad is architecturally visible only through its
// effect on memory ordering and store-queue flush timing; this core has no
// cache model to invalidate, prefetch into, or write back, so each is a
// no-op except where it already has an observable effect elsewhere (PREF
// into the store-queue window).
func ocbiAtRn(c *CPU, word uint16) (bool, error) { return false, nil }
func ocbpAtRn(c *CPU, word uint16) (bool, error) { return false, nil }
func ocbwbAtRn(c *CPU, word uint16) (bool, error) { return false, nil }

// prefAtRn triggers a store-queue flush when Rn falls in the SQ window, per
// spec §6.3; outside that window it is a no-op, matching the cache triad.
func prefAtRn(c *CPU, word uint16) (bool, error) {
	addr := c.Regs.R(fieldN(word))
	if !InSQWindow(addr) {
		return false, nil
	}
	if err := c.FlushSQ(addr); err != nil {
		c.raiseException(ExcGeneralIllegal, c.currentPC, 0)
		return true, nil
	}
	return false, nil
}

func cacheHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"OCBI_ATRN":  ocbiAtRn,
		"OCBP_ATRN":  ocbpAtRn,
		"OCBWB_ATRN": ocbwbAtRn,
		"PREF_ATRN":  prefAtRn,
	}
}
