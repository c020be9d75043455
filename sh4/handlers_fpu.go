package sh4

import (
	"math"

	"github.com/retrocore/sh4dc/fpu"
	"github.com/retrocore/sh4dc/opcodes"
)

// checkFPUDisabled raises the FPU-disable exception and reports fault=true
// when SR.FD is set, per spec §4.3.7: every FPU opcode is gated by this
// check before it touches any FPU state.
func checkFPUDisabled(c *CPU) bool {
	if !c.Regs.FD() {
		return false
	}
	c.raiseException(ExcFPUDisable, c.currentPC, 0)
	return true
}

// Double-precision register operands in every opcode except FMOV carry the
// DR index directly in the n/m field (the original source reads it as
// sh4_read_double(dr_dst*2); the assembler always emits an even value
// here), so fpu.DR/SetDR take the field as-is. Only FMOV additionally
// reaches into the XD bank; see fpuReadDouble/fpuWriteDouble below.

func fadd(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	if c.FPU.PR() {
		c.FPU.SetDR(n, c.FPU.DR(n)+c.FPU.DR(m))
	} else {
		c.FPU.SetFR(n, c.FPU.FR(n)+c.FPU.FR(m))
	}
	return false, nil
}

func fsub(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	if c.FPU.PR() {
		c.FPU.SetDR(n, c.FPU.DR(n)-c.FPU.DR(m))
	} else {
		c.FPU.SetFR(n, c.FPU.FR(n)-c.FPU.FR(m))
	}
	return false, nil
}

func fmul(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	if c.FPU.PR() {
		c.FPU.SetDR(n, c.FPU.DR(n)*c.FPU.DR(m))
	} else {
		c.FPU.SetFR(n, c.FPU.FR(n)*c.FPU.FR(m))
	}
	return false, nil
}

func fdiv(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	if c.FPU.PR() {
		c.FPU.SetDR(n, c.FPU.DR(n)/c.FPU.DR(m))
	} else {
		c.FPU.SetFR(n, c.FPU.FR(n)/c.FPU.FR(m))
	}
	return false, nil
}

func fcmpEq(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	if c.FPU.PR() {
		c.Regs.SetT(c.FPU.DR(n) == c.FPU.DR(m))
	} else {
		c.Regs.SetT(c.FPU.FR(n) == c.FPU.FR(m))
	}
	return false, nil
}

func fcmpGt(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	if c.FPU.PR() {
		c.Regs.SetT(c.FPU.DR(n) > c.FPU.DR(m))
	} else {
		c.Regs.SetT(c.FPU.FR(n) > c.FPU.FR(m))
	}
	return false, nil
}

// fpuReadDouble and fpuWriteDouble implement FMOV's double-precision
// operand addressing: unlike every other double-precision opcode, FMOV's
// register field carries the DR/XD bank selector in its low bit (odd
// selects XD), with the pair index in the remaining bits, per spec §4.1's
// "read/write XD n" operation.
func fpuReadDouble(f *fpu.File, field int) float64 {
	idx := field &^ 1
	if field&1 != 0 {
		return f.XD(idx)
	}
	return f.DR(idx)
}

func fpuWriteDouble(f *fpu.File, field int, v float64) {
	idx := field &^ 1
	if field&1 != 0 {
		f.SetXD(idx, v)
	} else {
		f.SetDR(idx, v)
	}
}

// fmovSAtRmFRn and its siblings implement the FMOV family. FPSCR.SZ selects
// between a 32-bit single transfer (FR) and a 64-bit double transfer (DR),
// per spec §4.3.7.
func fmovSAtRmFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(m)
	if c.FPU.SZ() {
		v, fault := c.readDouble(addr)
		if fault {
			return true, nil
		}
		fpuWriteDouble(c.FPU, n, v)
	} else {
		v, fault := c.readFloat(addr)
		if fault {
			return true, nil
		}
		c.FPU.SetFR(n, v)
	}
	return false, nil
}

func fmovSFRmAtRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(n)
	if c.FPU.SZ() {
		if c.writeDouble(addr, fpuReadDouble(c.FPU, m)) {
			return true, nil
		}
	} else {
		if c.writeFloat(addr, c.FPU.FR(m)) {
			return true, nil
		}
	}
	return false, nil
}

func fmovSAtRmPFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(m)
	if c.FPU.SZ() {
		v, fault := c.readDouble(addr)
		if fault {
			return true, nil
		}
		fpuWriteDouble(c.FPU, n, v)
		c.Regs.SetR(m, addr+8)
	} else {
		v, fault := c.readFloat(addr)
		if fault {
			return true, nil
		}
		c.FPU.SetFR(n, v)
		c.Regs.SetR(m, addr+4)
	}
	return false, nil
}

func fmovSFRmAtMRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	if c.FPU.SZ() {
		addr := c.Regs.R(n) - 8
		if c.writeDouble(addr, fpuReadDouble(c.FPU, m)) {
			return true, nil
		}
		c.Regs.SetR(n, addr)
	} else {
		addr := c.Regs.R(n) - 4
		if c.writeFloat(addr, c.FPU.FR(m)) {
			return true, nil
		}
		c.Regs.SetR(n, addr)
	}
	return false, nil
}

func fmovSAtR0RmFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(m) + c.Regs.R(0)
	if c.FPU.SZ() {
		v, fault := c.readDouble(addr)
		if fault {
			return true, nil
		}
		fpuWriteDouble(c.FPU, n, v)
	} else {
		v, fault := c.readFloat(addr)
		if fault {
			return true, nil
		}
		c.FPU.SetFR(n, v)
	}
	return false, nil
}

func fmovSFRmAtR0Rn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	addr := c.Regs.R(n) + c.Regs.R(0)
	if c.FPU.SZ() {
		if c.writeDouble(addr, fpuReadDouble(c.FPU, m)) {
			return true, nil
		}
	} else {
		if c.writeFloat(addr, c.FPU.FR(m)) {
			return true, nil
		}
	}
	return false, nil
}

func fmovFRmFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n, m := fieldN(word), fieldM(word)
	if c.FPU.SZ() {
		fpuWriteDouble(c.FPU, n, fpuReadDouble(c.FPU, m))
	} else {
		c.FPU.SetFR(n, c.FPU.FR(m))
	}
	return false, nil
}

func fldi0FRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	c.FPU.SetFR(fieldN(word), 0)
	return false, nil
}

func fldi1FRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	c.FPU.SetFR(fieldN(word), 1)
	return false, nil
}

func fldsFRmFPUL(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	c.FPU.SetFPUL(c.FPU.FRBits(fieldM(word)))
	return false, nil
}

func fstsFPULFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	c.FPU.SetFRBits(fieldN(word), c.FPU.FPUL())
	return false, nil
}

func fabsFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n := fieldN(word)
	if c.FPU.PR() {
		c.FPU.SetDR(n, math.Abs(c.FPU.DR(n)))
	} else {
		c.FPU.SetFR(n, float32(math.Abs(float64(c.FPU.FR(n)))))
	}
	return false, nil
}

func fnegFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n := fieldN(word)
	if c.FPU.PR() {
		c.FPU.SetDR(n, -c.FPU.DR(n))
	} else {
		c.FPU.SetFR(n, -c.FPU.FR(n))
	}
	return false, nil
}

func fsqrtFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n := fieldN(word)
	if c.FPU.PR() {
		c.FPU.SetDR(n, math.Sqrt(c.FPU.DR(n)))
	} else {
		c.FPU.SetFR(n, float32(math.Sqrt(float64(c.FPU.FR(n)))))
	}
	return false, nil
}

func floatFPULFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n := fieldN(word)
	v := float64(int32(c.FPU.FPUL()))
	if c.FPU.PR() {
		c.FPU.SetDR(n, v)
	} else {
		c.FPU.SetFR(n, float32(v))
	}
	return false, nil
}

func ftrcFRmFPUL(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	m := fieldM(word)
	var v float64
	if c.FPU.PR() {
		v = c.FPU.DR(m)
	} else {
		v = float64(c.FPU.FR(m))
	}
	c.FPU.SetFPUL(uint32(fpu.TruncToInt32(v)))
	return false, nil
}

func fcnvdsDRmFPUL(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	m := fieldM(word)
	c.FPU.SetFPUL(math.Float32bits(float32(c.FPU.DR(m))))
	return false, nil
}

func fcnvsdFPULDRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n := fieldN(word)
	c.FPU.SetDR(n, float64(math.Float32frombits(c.FPU.FPUL())))
	return false, nil
}

// fiprFVmFVn computes the single-precision dot product of two 4-element
// vectors, always in single precision regardless of FPSCR.PR, per spec
// §4.3.7.
func fiprFVmFVn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n := (int(word) >> 10) & 0x3
	m := (int(word) >> 8) & 0x3
	var dot float32
	for i := 0; i < 4; i++ {
		dot += c.FPU.FR(m*4+i) * c.FPU.FR(n*4+i)
	}
	c.FPU.SetFR(n*4+3, dot)
	return false, nil
}

// ftrvXMTRXFVn transforms the vector FVn by the 4x4 matrix held in the XF
// bank, per spec §4.3.7: out[i] = sum_j(in[j] * XF[4j+i]).
func ftrvXMTRXFVn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n := (int(word) >> 10) & 0x3
	var in, out [4]float32
	for i := 0; i < 4; i++ {
		in[i] = c.FPU.FR(n*4 + i)
	}
	for i := 0; i < 4; i++ {
		var sum float32
		for j := 0; j < 4; j++ {
			sum += in[j] * c.FPU.XF(4*j+i)
		}
		out[i] = sum
	}
	for i := 0; i < 4; i++ {
		c.FPU.SetFR(n*4+i, out[i])
	}
	return false, nil
}

func fscaFPULDRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n := (int(word) >> 9) & 0x7
	sin, cos := fpu.FSCA(c.FPU.FPUL())
	c.FPU.SetFR(n*2, sin)
	c.FPU.SetFR(n*2+1, cos)
	return false, nil
}

func fsrraFRn(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	n := fieldN(word)
	c.FPU.SetFR(n, float32(1/math.Sqrt(float64(c.FPU.FR(n)))))
	return false, nil
}

func frchg(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	c.FPU.ToggleFR()
	return false, nil
}

func fschg(c *CPU, word uint16) (bool, error) {
	if checkFPUDisabled(c) {
		return true, nil
	}
	c.FPU.ToggleSZ()
	return false, nil
}

func fpuHandlers() map[opcodes.Operator]Handler {
	return map[opcodes.Operator]Handler{
		"FADD":              fadd,
		"FSUB":              fsub,
		"FMUL":              fmul,
		"FDIV":              fdiv,
		"FCMP_EQ":           fcmpEq,
		"FCMP_GT":           fcmpGt,
		"FMOV_S_ATRM_FRN":   fmovSAtRmFRn,
		"FMOV_S_FRM_ATRN":   fmovSFRmAtRn,
		"FMOV_S_ATRMP_FRN":  fmovSAtRmPFRn,
		"FMOV_S_FRM_ATMRN":  fmovSFRmAtMRn,
		"FMOV_S_ATR0RM_FRN": fmovSAtR0RmFRn,
		"FMOV_S_FRM_ATR0RN": fmovSFRmAtR0Rn,
		"FMOV_FRM_FRN":      fmovFRmFRn,
		"FLDI0_FRN":         fldi0FRn,
		"FLDI1_FRN":         fldi1FRn,
		"FLDS_FRM_FPUL":     fldsFRmFPUL,
		"FSTS_FPUL_FRN":     fstsFPULFRn,
		"FABS_FRN":          fabsFRn,
		"FNEG_FRN":          fnegFRn,
		"FSQRT_FRN":         fsqrtFRn,
		"FLOAT_FPUL_FRN":    floatFPULFRn,
		"FTRC_FRM_FPUL":     ftrcFRmFPUL,
		"FCNVDS_DRM_FPUL":   fcnvdsDRmFPUL,
		"FCNVSD_FPUL_DRN":   fcnvsdFPULDRn,
		"FIPR_FVM_FVN":      fiprFVmFVn,
		"FTRV_XMTRX_FVN":    ftrvXMTRXFVn,
		"FSCA_FPUL_DRN":     fscaFPULDRn,
		"FSRRA_FRN":         fsrraFRn,
		"FRCHG":             frchg,
		"FSCHG":             fschg,
	}
}
