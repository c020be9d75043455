package sh4

import "github.com/retrocore/sh4dc/opcodes"

// shadRmRn implements SHAD: a positive Rm shifts Rn left by Rm&0x1F; a
// negative Rm from -31 to -1 shifts Rn right (arithmetic, sign-extending)
// by -Rm; any Rm of -32 or below shifts by the full width, filling with the
// sign bit, per spec §4.3.1/§8.
func shadRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	rn := int32(c.Regs.R(n))
	shift := int32(c.Regs.R(m))
	switch {
	case shift >= 0:
		amt := uint(shift & 0x1F)
		c.Regs.SetR(n, uint32(rn)<<amt)
	case shift > -32:
		amt := uint((-shift) & 0x1F)
		c.Regs.SetR(n, uint32(rn>>amt))
	default:
		if rn < 0 {
			c.Regs.SetR(n, 0xFFFFFFFF)
		} else {
			c.Regs.SetR(n, 0)
		}
	}
	return false, nil
}

// shldRmRn is SHAD's logical counterpart: right shifts fill with zero
// instead of the sign bit.
func shldRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	rn := c.Regs.R(n)
	shift := int32(c.Regs.R(m))
	switch {
	case shift >= 0:
		amt := uint(shift & 0x1F)
		c.Regs.SetR(n, rn<<amt)
	case shift > -32:
		amt := uint((-shift) & 0x1F)
		c.Regs.SetR(n, rn>>amt)
	default:
		c.Regs.SetR(n, 0)
	}
	return false, nil
}

func shllRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	v := c.Regs.R(n)
	c.Regs.SetT(v&0x80000000 != 0)
	c.Regs.SetR(n, v<<1)
	return false, nil
}

func shlrRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	v := c.Regs.R(n)
	c.Regs.SetT(v&1 != 0)
	c.Regs.SetR(n, v>>1)
	return false, nil
}

func shalRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	v := c.Regs.R(n)
	c.Regs.SetT(v&0x80000000 != 0)
	c.Regs.SetR(n, uint32(int32(v)<<1))
	return false, nil
}

func sharRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	v := c.Regs.R(n)
	c.Regs.SetT(v&1 != 0)
	c.Regs.SetR(n, uint32(int32(v)>>1))
	return false, nil
}

func shllNRn(shiftAmt uint) Handler {
	return func(c *CPU, word uint16) (bool, error) {
		n := fieldN(word)
		c.Regs.SetR(n, c.Regs.R(n)<<shiftAmt)
		return false, nil
	}
}

func shlrNRn(shiftAmt uint) Handler {
	return func(c *CPU, word uint16) (bool, error) {
		n := fieldN(word)
		c.Regs.SetR(n, c.Regs.R(n)>>shiftAmt)
		return false, nil
	}
}

func rotlRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	v := c.Regs.R(n)
	carry := v&0x80000000 != 0
	c.Regs.SetT(carry)
	c.Regs.SetR(n, (v<<1)|(v>>31))
	return false, nil
}

func rotrRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	v := c.Regs.R(n)
	carry := v&1 != 0
	c.Regs.SetT(carry)
	c.Regs.SetR(n, (v>>1)|(v<<31))
	return false, nil
}

func rotclRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	v := c.Regs.R(n)
	tin := uint32(0)
	if c.Regs.T() {
		tin = 1
	}
	c.Regs.SetT(v&0x80000000 != 0)
	c.Regs.SetR(n, (v<<1)|tin)
	return false, nil
}

func rotcrRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	v := c.Regs.R(n)
	tin := uint32(0)
	if c.Regs.T() {
		tin = 0x80000000
	}
	c.Regs.SetT(v&1 != 0)
	c.Regs.SetR(n, (v>>1)|tin)
	return false, nil
}

func shiftHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"SHAD_RM_RN": shadRmRn,
		"SHLD_RM_RN": shldRmRn,
		"SHLL_RN":    shllRn,
		"SHLR_RN":    shlrRn,
		"SHAL_RN":    shalRn,
		"SHAR_RN":    sharRn,
		"SHLL2_RN":   shllNRn(2),
		"SHLR2_RN":   shlrNRn(2),
		"SHLL8_RN":   shllNRn(8),
		"SHLR8_RN":   shlrNRn(8),
		"SHLL16_RN":  shllNRn(16),
		"SHLR16_RN":  shlrNRn(16),
		"ROTL_RN":    rotlRn,
		"ROTR_RN":    rotrRn,
		"ROTCL_RN":   rotclRn,
		"ROTCR_RN":   rotcrRn,
	}
}
