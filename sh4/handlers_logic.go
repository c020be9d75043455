package sh4

import "github.com/retrocore/sh4dc/opcodes"

func andRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, c.Regs.R(n)&c.Regs.R(m))
	return false, nil
}

func andImmR0(c *CPU, word uint16) (bool, error) {
	i := fieldI8(word)
	c.Regs.SetR(0, c.Regs.R(0)&uint32(i))
	return false, nil
}

func andBImmAtR0GBR(c *CPU, word uint16) (bool, error) {
	i := fieldI8(word)
	addr := c.Regs.GBR() + c.Regs.R(0)
	v, f := c.readByte(addr)
	if f {
		return true, nil
	}
	return c.writeByte(addr, v&i), nil
}

func orRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, c.Regs.R(n)|c.Regs.R(m))
	return false, nil
}

func orImmR0(c *CPU, word uint16) (bool, error) {
	i := fieldI8(word)
	c.Regs.SetR(0, c.Regs.R(0)|uint32(i))
	return false, nil
}

func orBImmAtR0GBR(c *CPU, word uint16) (bool, error) {
	i := fieldI8(word)
	addr := c.Regs.GBR() + c.Regs.R(0)
	v, f := c.readByte(addr)
	if f {
		return true, nil
	}
	return c.writeByte(addr, v|i), nil
}

func xorRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, c.Regs.R(n)^c.Regs.R(m))
	return false, nil
}

func xorImmR0(c *CPU, word uint16) (bool, error) {
	i := fieldI8(word)
	c.Regs.SetR(0, c.Regs.R(0)^uint32(i))
	return false, nil
}

func xorBImmAtR0GBR(c *CPU, word uint16) (bool, error) {
	i := fieldI8(word)
	addr := c.Regs.GBR() + c.Regs.R(0)
	v, f := c.readByte(addr)
	if f {
		return true, nil
	}
	return c.writeByte(addr, v^i), nil
}

func notRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, ^c.Regs.R(m))
	return false, nil
}

func tstRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetT(c.Regs.R(n)&c.Regs.R(m) == 0)
	return false, nil
}

func tstImmR0(c *CPU, word uint16) (bool, error) {
	i := fieldI8(word)
	c.Regs.SetT(c.Regs.R(0)&uint32(i) == 0)
	return false, nil
}

func tstBImmAtR0GBR(c *CPU, word uint16) (bool, error) {
	i := fieldI8(word)
	v, f := c.readByte(c.Regs.GBR() + c.Regs.R(0))
	if f {
		return true, nil
	}
	c.Regs.SetT(v&i == 0)
	return false, nil
}

func extsBRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, uint32(signExt8(uint8(c.Regs.R(m)))))
	return false, nil
}

func extsWRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, uint32(int32(int16(uint16(c.Regs.R(m))))))
	return false, nil
}

func extuBRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, uint32(uint8(c.Regs.R(m))))
	return false, nil
}

func extuWRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, uint32(uint16(c.Regs.R(m))))
	return false, nil
}

func logicHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"AND_RM_RN":          andRmRn,
		"AND_IMM_R0":         andImmR0,
		"AND_B_IMM_ATR0GBR":  andBImmAtR0GBR,
		"OR_RM_RN":           orRmRn,
		"OR_IMM_R0":          orImmR0,
		"OR_B_IMM_ATR0GBR":   orBImmAtR0GBR,
		"XOR_RM_RN":          xorRmRn,
		"XOR_IMM_R0":         xorImmR0,
		"XOR_B_IMM_ATR0GBR":  xorBImmAtR0GBR,
		"NOT_RM_RN":          notRmRn,
		"TST_RM_RN":          tstRmRn,
		"TST_IMM_R0":         tstImmR0,
		"TST_B_IMM_ATR0GBR":  tstBImmAtR0GBR,
		"EXTS_B_RM_RN":       extsBRmRn,
		"EXTS_W_RM_RN":       extsWRmRn,
		"EXTU_B_RM_RN":       extuBRmRn,
		"EXTU_W_RM_RN":       extuWRmRn,
	}
}
