package sh4

import "github.com/retrocore/sh4dc/opcodes"

func addRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, c.Regs.R(n)+c.Regs.R(m))
	return false, nil
}

func addImmRn(c *CPU, word uint16) (bool, error) {
	n, i := fieldN(word), fieldI8(word)
	c.Regs.SetR(n, c.Regs.R(n)+uint32(signExt8(i)))
	return false, nil
}

func addcRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	a, b := c.Regs.R(n), c.Regs.R(m)
	tin := uint32(0)
	if c.Regs.T() {
		tin = 1
	}
	sum := uint64(a) + uint64(b) + uint64(tin)
	c.Regs.SetR(n, uint32(sum))
	c.Regs.SetT(sum > 0xFFFFFFFF)
	return false, nil
}

func addvRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	a, b := int32(c.Regs.R(n)), int32(c.Regs.R(m))
	sum := a + b
	overflow := (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0)
	c.Regs.SetR(n, uint32(sum))
	c.Regs.SetT(overflow)
	return false, nil
}

func subRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, c.Regs.R(n)-c.Regs.R(m))
	return false, nil
}

func subcRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	a, b := c.Regs.R(n), c.Regs.R(m)
	tin := uint64(0)
	if c.Regs.T() {
		tin = 1
	}
	diff := uint64(a) - uint64(b) - tin
	c.Regs.SetR(n, uint32(diff))
	c.Regs.SetT(uint64(a) < uint64(b)+tin)
	return false, nil
}

func subvRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	a, b := int32(c.Regs.R(n)), int32(c.Regs.R(m))
	diff := a - b
	overflow := (a >= 0) != (b >= 0) && (diff >= 0) != (a >= 0)
	c.Regs.SetR(n, uint32(diff))
	c.Regs.SetT(overflow)
	return false, nil
}

func negRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, uint32(-int32(c.Regs.R(m))))
	return false, nil
}

func negcRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	tin := uint64(0)
	if c.Regs.T() {
		tin = 1
	}
	diff := uint64(0) - uint64(c.Regs.R(m)) - tin
	c.Regs.SetR(n, uint32(diff))
	c.Regs.SetT(diff > 0xFFFFFFFF)
	return false, nil
}

func mulLRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetMACL(c.Regs.R(n) * c.Regs.R(m))
	return false, nil
}

func mulsWRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	a := int32(int16(uint16(c.Regs.R(n))))
	b := int32(int16(uint16(c.Regs.R(m))))
	c.Regs.SetMACL(uint32(a * b))
	return false, nil
}

func muluWRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	a := uint32(uint16(c.Regs.R(n)))
	b := uint32(uint16(c.Regs.R(m)))
	c.Regs.SetMACL(a * b)
	return false, nil
}

func dmulsLRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	a := int64(int32(c.Regs.R(n)))
	b := int64(int32(c.Regs.R(m)))
	prod := uint64(a * b)
	c.Regs.SetMACH(uint32(prod >> 32))
	c.Regs.SetMACL(uint32(prod))
	return false, nil
}

func dmuluLRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	prod := uint64(c.Regs.R(n)) * uint64(c.Regs.R(m))
	c.Regs.SetMACH(uint32(prod >> 32))
	c.Regs.SetMACL(uint32(prod))
	return false, nil
}

func arithHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"ADD_RM_RN":       addRmRn,
		"ADD_IMM_RN":      addImmRn,
		"ADDC_RM_RN":      addcRmRn,
		"ADDV_RM_RN":      addvRmRn,
		"SUB_RM_RN":       subRmRn,
		"SUBC_RM_RN":      subcRmRn,
		"SUBV_RM_RN":      subvRmRn,
		"NEG_RM_RN":       negRmRn,
		"NEGC_RM_RN":      negcRmRn,
		"MUL_L_RM_RN":     mulLRmRn,
		"MULS_W_RM_RN":    mulsWRmRn,
		"MULU_W_RM_RN":    muluWRmRn,
		"DMULS_L_RM_RN":   dmulsLRmRn,
		"DMULU_L_RM_RN":   dmuluLRmRn,
	}
}
