package sh4

import "github.com/retrocore/sh4dc/opcodes"

func cmpEqImmR0(c *CPU, word uint16) (bool, error) {
	i := fieldI8(word)
	c.Regs.SetT(c.Regs.R(0) == uint32(signExt8(i)))
	return false, nil
}

func cmpEqRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetT(c.Regs.R(n) == c.Regs.R(m))
	return false, nil
}

func cmpHsRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetT(c.Regs.R(n) >= c.Regs.R(m))
	return false, nil
}

func cmpGeRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetT(int32(c.Regs.R(n)) >= int32(c.Regs.R(m)))
	return false, nil
}

func cmpHiRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetT(c.Regs.R(n) > c.Regs.R(m))
	return false, nil
}

func cmpGtRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetT(int32(c.Regs.R(n)) > int32(c.Regs.R(m)))
	return false, nil
}

func cmpPlRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	c.Regs.SetT(int32(c.Regs.R(n)) > 0)
	return false, nil
}

func cmpPzRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	c.Regs.SetT(int32(c.Regs.R(n)) >= 0)
	return false, nil
}

// cmpStrRmRn implements CMP/STR: T is set if any of the four byte lanes of
// Rn and Rm match, per spec §4.3.1.
func cmpStrRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	x := c.Regs.R(n) ^ c.Regs.R(m)
	match := (x&0xFF == 0) || (x&0xFF00 == 0) || (x&0xFF0000 == 0) || (x&0xFF000000 == 0)
	c.Regs.SetT(match)
	return false, nil
}

func compareHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"CMP_EQ_IMM_R0": cmpEqImmR0,
		"CMP_EQ_RM_RN":  cmpEqRmRn,
		"CMP_HS_RM_RN":  cmpHsRmRn,
		"CMP_GE_RM_RN":  cmpGeRmRn,
		"CMP_HI_RM_RN":  cmpHiRmRn,
		"CMP_GT_RM_RN":  cmpGtRmRn,
		"CMP_PL_RN":     cmpPlRn,
		"CMP_PZ_RN":     cmpPzRn,
		"CMP_STR_RM_RN": cmpStrRmRn,
	}
}
