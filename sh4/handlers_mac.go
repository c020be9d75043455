package sh4

import (
	"github.com/retrocore/sh4dc/fpu"
	"github.com/retrocore/sh4dc/opcodes"
)

// macLAtRmPAtRnP implements MAC.L @Rm+,@Rn+: a 32x32->64 signed product
// accumulated into MACH:MACL, saturating to a signed 48-bit range when
// FPSCR... no, SR.S is set (spec §4.3.3).
func macLAtRmPAtRnP(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	dstAddr := c.Regs.R(n)
	srcAddr := c.Regs.R(m)

	lhs, fault := c.readLong(dstAddr)
	if fault {
		return true, nil
	}
	rhs, fault := c.readLong(srcAddr)
	if fault {
		return true, nil
	}

	product := int64(int32(lhs)) * int64(int32(rhs))
	mac := int64(c.Regs.MACL()) | (int64(c.Regs.MACH()) << 32)
	sum := mac + product

	if c.Regs.S() {
		sum = fpu.SaturateMACL48(sum)
	}

	c.Regs.SetMACL(uint32(sum))
	c.Regs.SetMACH(uint32(uint64(sum) >> 32))

	c.Regs.SetR(n, dstAddr+4)
	c.Regs.SetR(m, srcAddr+4)
	return false, nil
}

// macWAtRmPAtRnP implements MAC.W @Rm+,@Rn+. When SR.S is set only MACL
// saturates to signed 32-bit range, and the documented (if admittedly odd)
// hardware quirk is honored: MACH's LSB is forced to 1 on overflow, per
// spec §4.3.3.
func macWAtRmPAtRnP(c *CPU, word uint16) (bool, error) {
	n, m := fieldN(word), fieldM(word)
	dstAddr := c.Regs.R(n)
	srcAddr := c.Regs.R(m)

	lhs, fault := c.readWord(dstAddr)
	if fault {
		return true, nil
	}
	rhs, fault := c.readWord(srcAddr)
	if fault {
		return true, nil
	}

	result := int64(int16(lhs)) * int64(int16(rhs))

	if c.Regs.S() {
		const max32 = int64(0x7FFFFFFF)
		const min32 = -int64(0x80000000)
		result += int64(int32(c.Regs.MACL()))
		if result < min32 {
			result = min32
			c.Regs.SetMACH(c.Regs.MACH() | 1)
		} else if result > max32 {
			result = max32
			c.Regs.SetMACH(c.Regs.MACH() | 1)
		}
		c.Regs.SetMACL(uint32(result))
	} else {
		mac := int64(c.Regs.MACL()) | (int64(c.Regs.MACH()) << 32)
		result += mac
		c.Regs.SetMACL(uint32(result))
		c.Regs.SetMACH(uint32(uint64(result) >> 32))
	}

	c.Regs.SetR(n, dstAddr+2)
	c.Regs.SetR(m, srcAddr+2)
	return false, nil
}

func macHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"MAC_L_ATRMP_ATRNP": macLAtRmPAtRnP,
		"MAC_W_ATRMP_ATRNP": macWAtRmPAtRnP,
	}
}
