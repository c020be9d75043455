// Package fpu implements the SH-4 floating-point register file, FPSCR, and
// the arithmetic helpers (rounding, saturation, NaN classification) shared
// by the instruction handlers in package sh4.
package fpu

import (
	"math"

	"github.com/retrocore/sh4dc/logger"
)

// FPSCR field masks.
const (
	fpscrRM     = 0x3 << 0
	fpscrFlag   = 0x1F << 2
	fpscrEnable = 0x1F << 7
	fpscrCause  = 0x3F << 12
	fpscrDN     = 1 << 18
	fpscrPR     = 1 << 19
	fpscrSZ     = 1 << 20
	fpscrFR     = 1 << 21
)

// RM (rounding mode) values.
const (
	RoundNearest = 0
	RoundZero    = 1
)

// ResetFPSCR is the value FPSCR takes on power-on and manual reset.
const ResetFPSCR = uint32(0x41)

// File holds the FPU register banks and FPSCR/FPUL.
type File struct {
	bank  [2][16]float32 // bank[0]=FR, bank[1]=XF when FPSCR.FR==0; swapped when FR==1
	fpscr uint32
	fpul  uint32

	log *logger.Log

	// rm mirrors FPSCR.RM in a form handlers can use directly when rounding
	// toward zero for FTRC without disturbing the saved mode.
	rm int
}

// New returns a File initialized to power-on reset state.
func New(log *logger.Log) *File {
	f := &File{log: log}
	f.Reset()
	return f
}

// Reset clears FR/XF to +0.0 and restores FPSCR to its reset value.
func (f *File) Reset() {
	f.bank = [2][16]float32{}
	f.fpscr = ResetFPSCR
	f.fpul = 0
	f.rm = RoundNearest
}

// frBank returns which physical bank is currently addressed as FR (0 or 1).
func (f *File) frBank() int {
	if f.fpscr&fpscrFR != 0 {
		return 1
	}
	return 0
}

// FR reads single-precision register n (0<=n<=15) from the current bank.
func (f *File) FR(n int) float32 { return f.bank[f.frBank()][n] }

// SetFR writes single-precision register n in the current bank.
func (f *File) SetFR(n int, v float32) { f.bank[f.frBank()][n] = v }

// XF reads extended register n, the bank NOT currently addressed as FR.
func (f *File) XF(n int) float32 { return f.bank[1-f.frBank()][n] }

// SetXF writes extended register n.
func (f *File) SetXF(n int, v float32) { f.bank[1-f.frBank()][n] = v }

// FRBits/SetFRBits give handlers the raw bit pattern, used by FMOV/LDS/STS
// forms that move FR contents to or from FPUL or memory without converting
// through a float64 intermediate.
func (f *File) FRBits(n int) uint32        { return math.Float32bits(f.FR(n)) }
func (f *File) SetFRBits(n int, v uint32)  { f.SetFR(n, math.Float32frombits(v)) }
func (f *File) XFBits(n int) uint32        { return math.Float32bits(f.XF(n)) }
func (f *File) SetXFBits(n int, v uint32)  { f.SetXF(n, math.Float32frombits(v)) }

// DR reads double-precision register n (n even, 0<=n<=14) by pairing FRn
// (high 32 bits) with FRn+1 (low 32 bits), per spec §3.1.
func (f *File) DR(n int) float64 {
	hi := f.FRBits(n)
	lo := f.FRBits(n + 1)
	return math.Float64frombits(uint64(hi)<<32 | uint64(lo))
}

// SetDR writes double-precision register n, splitting into the FRn/FRn+1
// pair.
func (f *File) SetDR(n int, v float64) {
	bits := math.Float64bits(v)
	f.SetFRBits(n, uint32(bits>>32))
	f.SetFRBits(n+1, uint32(bits))
}

// XD reads the XF-bank double-precision pair, used when FPSCR.FR selects
// FR as the addressed bank and XD-suffixed opcodes reach into XF.
func (f *File) XD(n int) float64 {
	hi := f.XFBits(n)
	lo := f.XFBits(n + 1)
	return math.Float64frombits(uint64(hi)<<32 | uint64(lo))
}

// SetXD writes the XF-bank double-precision pair.
func (f *File) SetXD(n int, v float64) {
	bits := math.Float64bits(v)
	f.SetXFBits(n, uint32(bits>>32))
	f.SetXFBits(n+1, uint32(bits))
}

// FPUL, SetFPUL access the integer-interchange register.
func (f *File) FPUL() uint32     { return f.fpul }
func (f *File) SetFPUL(v uint32) { f.fpul = v }

// FPSCR returns the raw status/control register.
func (f *File) FPSCR() uint32 { return f.fpscr }

// SetFPSCR writes FPSCR, swapping which physical bank FR and XF address on
// an FR toggle and propagating RM to the file's own rounding-mode mirror on
// an RM change, per spec §3.3.
func (f *File) SetFPSCR(v uint32) {
	oldFR := f.fpscr & fpscrFR
	oldRM := f.fpscr & fpscrRM
	f.fpscr = v
	if (v & fpscrFR) != oldFR {
		if f.log != nil {
			f.log.Logf(logger.Allow, "sh4", "FPSCR write flips FR/XF bank")
		}
	}
	if (v & fpscrRM) != oldRM {
		f.rm = int(v & fpscrRM)
		if f.log != nil {
			f.log.Logf(logger.Allow, "sh4", "FPSCR write changes rounding mode to %d", f.rm)
		}
	}
}

func (f *File) PR() bool { return f.fpscr&fpscrPR != 0 }
func (f *File) SZ() bool { return f.fpscr&fpscrSZ != 0 }
func (f *File) FRBit() bool { return f.fpscr&fpscrFR != 0 }
func (f *File) DN() bool { return f.fpscr&fpscrDN != 0 }

// RM returns the current rounding mode field (RoundNearest or RoundZero).
func (f *File) RM() int { return int(f.fpscr & fpscrRM) }

func (f *File) setBit(mask uint32, v bool) {
	if v {
		f.SetFPSCR(f.fpscr | mask)
	} else {
		f.SetFPSCR(f.fpscr &^ mask)
	}
}

func (f *File) SetPRBit(v bool) { f.setBit(fpscrPR, v) }
func (f *File) SetSZBit(v bool) { f.setBit(fpscrSZ, v) }
func (f *File) SetFRBit(v bool) { f.setBit(fpscrFR, v) }

// ToggleFR implements FRCHG: flip FPSCR.FR, swapping banks.
func (f *File) ToggleFR() { f.SetFRBit(!f.FRBit()) }

// ToggleSZ implements FSCHG: flip FPSCR.SZ. No bank effect.
func (f *File) ToggleSZ() { f.SetSZBit(!f.SZ()) }

// BankSnapshot returns both physical FR/XF banks directly, independent of
// which is currently addressed as FR, for save-state serialization.
func (f *File) BankSnapshot() [2][16]float32 { return f.bank }

// SetBankSnapshot restores both physical banks directly.
func (f *File) SetBankSnapshot(v [2][16]float32) { f.bank = v }
