package sh4

import "github.com/retrocore/sh4dc/opcodes"

func movImmRn(c *CPU, word uint16) (bool, error) {
	n, i := fieldN(word), fieldI8(word)
	c.Regs.SetR(n, uint32(signExt8(i)))
	return false, nil
}

func movPCWRn(c *CPU, word uint16) (bool, error) {
	n, d := fieldN(word), fieldD8(word)
	addr := (c.currentPC &^ 3) + 4 + uint32(d)*2
	v, f := c.readWord(addr)
	if f {
		return true, nil
	}
	c.Regs.SetR(n, uint32(int32(int16(v))))
	return false, nil
}

func movPCLRn(c *CPU, word uint16) (bool, error) {
	n, d := fieldN(word), fieldD8(word)
	addr := (c.currentPC &^ 3) + 4 + uint32(d)*4
	v, f := c.readLong(addr)
	if f {
		return true, nil
	}
	c.Regs.SetR(n, v)
	return false, nil
}

func movRmRn(c *CPU, word uint16) (bool, error) {
	c.Regs.SetR(fieldN(word), c.Regs.R(fieldM(word)))
	return false, nil
}

func movBRmAtRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	return c.writeByte(c.Regs.R(n), uint8(c.Regs.R(m))), nil
}

func movWRmAtRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	return c.writeWord(c.Regs.R(n), uint16(c.Regs.R(m))), nil
}

func movLRmAtRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	return c.writeLong(c.Regs.R(n), c.Regs.R(m)), nil
}

func movBAtRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	v, f := c.readByte(c.Regs.R(m))
	if f {
		return true, nil
	}
	c.Regs.SetR(n, uint32(signExt8(v)))
	return false, nil
}

func movWAtRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	v, f := c.readWord(c.Regs.R(m))
	if f {
		return true, nil
	}
	c.Regs.SetR(n, uint32(int32(int16(v))))
	return false, nil
}

func movLAtRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	v, f := c.readLong(c.Regs.R(m))
	if f {
		return true, nil
	}
	c.Regs.SetR(n, v)
	return false, nil
}

func movBRmAtMRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(n) - 1
	if f := c.writeByte(addr, uint8(c.Regs.R(m))); f {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func movWRmAtMRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(n) - 2
	if f := c.writeWord(addr, uint16(c.Regs.R(m))); f {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func movLRmAtMRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(n) - 4
	if f := c.writeLong(addr, c.Regs.R(m)); f {
		return true, nil
	}
	c.Regs.SetR(n, addr)
	return false, nil
}

func movBAtRmPRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(m)
	v, f := c.readByte(addr)
	if f {
		return true, nil
	}
	c.Regs.SetR(m, addr+1)
	c.Regs.SetR(n, uint32(signExt8(v)))
	return false, nil
}

func movWAtRmPRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(m)
	v, f := c.readWord(addr)
	if f {
		return true, nil
	}
	c.Regs.SetR(m, addr+2)
	c.Regs.SetR(n, uint32(int32(int16(v))))
	return false, nil
}

func movLAtRmPRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(m)
	v, f := c.readLong(addr)
	if f {
		return true, nil
	}
	c.Regs.SetR(m, addr+4)
	c.Regs.SetR(n, v)
	return false, nil
}

func movBR0AtDispRn(c *CPU, word uint16) (bool, error) {
	n, d := fieldN(word), fieldD4(word)
	return c.writeByte(c.Regs.R(n)+uint32(d), uint8(c.Regs.R(0))), nil
}

func movWR0AtDispRn(c *CPU, word uint16) (bool, error) {
	n, d := fieldN(word), fieldD4(word)
	return c.writeWord(c.Regs.R(n)+uint32(d)*2, uint16(c.Regs.R(0))), nil
}

func movLRmAtDispRn(c *CPU, word uint16) (bool, error) {
	n, m, d := fieldN(word), fieldM(word), fieldD4(word)
	return c.writeLong(c.Regs.R(n)+uint32(d)*4, c.Regs.R(m)), nil
}

func movBAtDispRmR0(c *CPU, word uint16) (bool, error) {
	m, d := fieldM(word), fieldD4(word)
	v, f := c.readByte(c.Regs.R(m) + uint32(d))
	if f {
		return true, nil
	}
	c.Regs.SetR(0, uint32(signExt8(v)))
	return false, nil
}

func movWAtDispRmR0(c *CPU, word uint16) (bool, error) {
	m, d := fieldM(word), fieldD4(word)
	v, f := c.readWord(c.Regs.R(m) + uint32(d)*2)
	if f {
		return true, nil
	}
	c.Regs.SetR(0, uint32(int32(int16(v))))
	return false, nil
}

func movLAtDispRmRn(c *CPU, word uint16) (bool, error) {
	n, m, d := fieldN(word), fieldM(word), fieldD4(word)
	v, f := c.readLong(c.Regs.R(m) + uint32(d)*4)
	if f {
		return true, nil
	}
	c.Regs.SetR(n, v)
	return false, nil
}

func movBRmAtR0Rn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	return c.writeByte(c.Regs.R(n)+c.Regs.R(0), uint8(c.Regs.R(m))), nil
}

func movWRmAtR0Rn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	return c.writeWord(c.Regs.R(n)+c.Regs.R(0), uint16(c.Regs.R(m))), nil
}

func movLRmAtR0Rn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	return c.writeLong(c.Regs.R(n)+c.Regs.R(0), c.Regs.R(m)), nil
}

func movBAtR0RmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	v, f := c.readByte(c.Regs.R(m) + c.Regs.R(0))
	if f {
		return true, nil
	}
	c.Regs.SetR(n, uint32(signExt8(v)))
	return false, nil
}

func movWAtR0RmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	v, f := c.readWord(c.Regs.R(m) + c.Regs.R(0))
	if f {
		return true, nil
	}
	c.Regs.SetR(n, uint32(int32(int16(v))))
	return false, nil
}

func movLAtR0RmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	v, f := c.readLong(c.Regs.R(m) + c.Regs.R(0))
	if f {
		return true, nil
	}
	c.Regs.SetR(n, v)
	return false, nil
}

func movBR0AtDispGBR(c *CPU, word uint16) (bool, error) {
	d := fieldD8(word)
	return c.writeByte(c.Regs.GBR()+uint32(d), uint8(c.Regs.R(0))), nil
}

func movWR0AtDispGBR(c *CPU, word uint16) (bool, error) {
	d := fieldD8(word)
	return c.writeWord(c.Regs.GBR()+uint32(d)*2, uint16(c.Regs.R(0))), nil
}

func movLR0AtDispGBR(c *CPU, word uint16) (bool, error) {
	d := fieldD8(word)
	return c.writeLong(c.Regs.GBR()+uint32(d)*4, c.Regs.R(0)), nil
}

func movBAtDispGBRR0(c *CPU, word uint16) (bool, error) {
	d := fieldD8(word)
	v, f := c.readByte(c.Regs.GBR() + uint32(d))
	if f {
		return true, nil
	}
	c.Regs.SetR(0, uint32(signExt8(v)))
	return false, nil
}

func movWAtDispGBRR0(c *CPU, word uint16) (bool, error) {
	d := fieldD8(word)
	v, f := c.readWord(c.Regs.GBR() + uint32(d)*2)
	if f {
		return true, nil
	}
	c.Regs.SetR(0, uint32(int32(int16(v))))
	return false, nil
}

func movLAtDispGBRR0(c *CPU, word uint16) (bool, error) {
	d := fieldD8(word)
	v, f := c.readLong(c.Regs.GBR() + uint32(d)*4)
	if f {
		return true, nil
	}
	c.Regs.SetR(0, v)
	return false, nil
}

func movaAtDispPCR0(c *CPU, word uint16) (bool, error) {
	d := fieldD8(word)
	addr := (c.currentPC &^ 3) + 4 + uint32(d)*4
	c.Regs.SetR(0, addr)
	return false, nil
}

func movtRn(c *CPU, word uint16) (bool, error) {
	n := fieldN(word)
	if c.Regs.T() {
		c.Regs.SetR(n, 1)
	} else {
		c.Regs.SetR(n, 0)
	}
	return false, nil
}

func swapBRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	v := c.Regs.R(m)
	c.Regs.SetR(n, (v&0xFFFF0000)|((v&0xFF)<<8)|((v>>8)&0xFF))
	return false, nil
}

func swapWRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	v := c.Regs.R(m)
	c.Regs.SetR(n, (v<<16)|(v>>16))
	return false, nil
}

func xtrctRmRn(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	c.Regs.SetR(n, (c.Regs.R(n)>>16)|(c.Regs.R(m)<<16))
	return false, nil
}

func moveHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"MOV_IMM_RN":         movImmRn,
		"MOV_PC_W_RN":        movPCWRn,
		"MOV_PC_L_RN":        movPCLRn,
		"MOV_RM_RN":          movRmRn,
		"MOV_B_RM_ATRN":      movBRmAtRn,
		"MOV_W_RM_ATRN":      movWRmAtRn,
		"MOV_L_RM_ATRN":      movLRmAtRn,
		"MOV_B_ATRM_RN":      movBAtRmRn,
		"MOV_W_ATRM_RN":      movWAtRmRn,
		"MOV_L_ATRM_RN":      movLAtRmRn,
		"MOV_B_RM_ATMRN":     movBRmAtMRn,
		"MOV_W_RM_ATMRN":     movWRmAtMRn,
		"MOV_L_RM_ATMRN":     movLRmAtMRn,
		"MOV_B_ATRMP_RN":     movBAtRmPRn,
		"MOV_W_ATRMP_RN":     movWAtRmPRn,
		"MOV_L_ATRMP_RN":     movLAtRmPRn,
		"MOV_B_R0_ATDISPRN":  movBR0AtDispRn,
		"MOV_W_R0_ATDISPRN":  movWR0AtDispRn,
		"MOV_L_RM_ATDISPRN":  movLRmAtDispRn,
		"MOV_B_ATDISPRM_R0":  movBAtDispRmR0,
		"MOV_W_ATDISPRM_R0":  movWAtDispRmR0,
		"MOV_L_ATDISPRM_RN":  movLAtDispRmRn,
		"MOV_B_RM_ATR0RN":    movBRmAtR0Rn,
		"MOV_W_RM_ATR0RN":    movWRmAtR0Rn,
		"MOV_L_RM_ATR0RN":    movLRmAtR0Rn,
		"MOV_B_ATR0RM_RN":    movBAtR0RmRn,
		"MOV_W_ATR0RM_RN":    movWAtR0RmRn,
		"MOV_L_ATR0RM_RN":    movLAtR0RmRn,
		"MOV_B_R0_ATDISPGBR": movBR0AtDispGBR,
		"MOV_W_R0_ATDISPGBR": movWR0AtDispGBR,
		"MOV_L_R0_ATDISPGBR": movLR0AtDispGBR,
		"MOV_B_ATDISPGBR_R0": movBAtDispGBRR0,
		"MOV_W_ATDISPGBR_R0": movWAtDispGBRR0,
		"MOV_L_ATDISPGBR_R0": movLAtDispGBRR0,
		"MOVA_ATDISPPC_R0":   movaAtDispPCR0,
		"MOVT_RN":            movtRn,
		"SWAP_B_RM_RN":       swapBRmRn,
		"SWAP_W_RM_RN":       swapWRmRn,
		"XTRCT_RM_RN":        xtrctRmRn,
	}
}
