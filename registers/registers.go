// Package registers implements the SH-4 architectural register file: the
// sixteen general-purpose registers with their banked low half, the status
// register and its field accessors, and the remaining control registers.
// The floating-point file lives in package fpu; everything here is the
// integer side plus SR.
package registers

import "github.com/retrocore/sh4dc/logger"

// SR field masks, as bit positions within the 32-bit status register.
const (
	srT     = 1 << 0
	srS     = 1 << 1
	srIMASK = 0xF << 4
	srQ     = 1 << 8
	srM     = 1 << 9
	srFD    = 1 << 15
	srBL    = 1 << 28
	srRB    = 1 << 29
	srMD    = 1 << 30
)

const imaskShift = 4

// ResetSR is the value SR takes on power-on and manual reset: MD, RB, BL,
// FD all set, IMASK all ones.
const ResetSR = uint32(srMD | srRB | srBL | srFD | srIMASK)

// ResetPC is the address the program counter holds immediately after reset.
const ResetPC = uint32(0xA0000000)

// File holds the full integer-side architectural register state.
type File struct {
	// bank[0] and bank[1] are the two physical banks of R0..R7; R8..R15
	// live in unbanked.
	bank     [2][8]uint32
	unbanked [8]uint32 // R8..R15

	sr   uint32
	ssr  uint32
	spc  uint32
	gbr  uint32
	vbr  uint32
	sgr  uint32
	dbr  uint32
	mach uint32
	macl uint32
	pr   uint32
	pc   uint32

	log *logger.Log
}

// New returns a File initialized to power-on reset state. log may be nil,
// in which case bank-flip events are not recorded.
func New(log *logger.Log) *File {
	f := &File{log: log}
	f.Reset()
	return f
}

// Reset restores the control-field reset state described in spec §3.5.
// General registers are left as-is, matching the manual-reset behaviour;
// callers performing a power-on reset should construct a fresh File instead.
func (f *File) Reset() {
	f.sr = ResetSR
	f.pc = ResetPC
	f.ssr, f.spc, f.sgr, f.mach, f.macl, f.pr = 0, 0, 0, 0, 0, 0
}

// visibleBank returns which physical bank of R0..R7 is currently addressed,
// per the invariant "visible bank matches SR.MD & SR.RB".
func (f *File) visibleBank() int {
	if f.sr&srMD != 0 && f.sr&srRB != 0 {
		return 1
	}
	return 0
}

// R reads general register i, 0<=i<=15, from the currently visible bank.
func (f *File) R(i int) uint32 {
	if i < 8 {
		return f.bank[f.visibleBank()][i]
	}
	return f.unbanked[i-8]
}

// SetR writes general register i through the currently visible bank.
func (f *File) SetR(i int, v uint32) {
	if i < 8 {
		f.bank[f.visibleBank()][i] = v
	} else {
		f.unbanked[i-8] = v
	}
}

// RBank reads banked register j (0<=j<=7) from the bank that is NOT
// currently visible, per the LDC/STC Rn_BANK instruction forms.
func (f *File) RBank(j int) uint32 {
	return f.bank[1-f.visibleBank()][j]
}

// SetRBank writes banked register j in the non-visible bank.
func (f *File) SetRBank(j int, v uint32) {
	f.bank[1-f.visibleBank()][j] = v
}

// PC, SetPC access the program counter.
func (f *File) PC() uint32     { return f.pc }
func (f *File) SetPC(v uint32) { f.pc = v }

// PR, SetPR access the procedure register (subroutine return address).
func (f *File) PR() uint32     { return f.pr }
func (f *File) SetPR(v uint32) { f.pr = v }

func (f *File) GBR() uint32     { return f.gbr }
func (f *File) SetGBR(v uint32) { f.gbr = v }

func (f *File) VBR() uint32     { return f.vbr }
func (f *File) SetVBR(v uint32) { f.vbr = v }

func (f *File) SGR() uint32     { return f.sgr }
func (f *File) SetSGR(v uint32) { f.sgr = v }

func (f *File) DBR() uint32     { return f.dbr }
func (f *File) SetDBR(v uint32) { f.dbr = v }

func (f *File) SSR() uint32     { return f.ssr }
func (f *File) SetSSR(v uint32) { f.ssr = v }

func (f *File) SPC() uint32     { return f.spc }
func (f *File) SetSPC(v uint32) { f.spc = v }

func (f *File) MACH() uint32     { return f.mach }
func (f *File) SetMACH(v uint32) { f.mach = v }

func (f *File) MACL() uint32     { return f.macl }
func (f *File) SetMACL(v uint32) { f.macl = v }

// SR returns the raw status register value.
func (f *File) SR() uint32 { return f.sr }

// SetSR writes SR, swapping the R0..R7 bank when MD&RB changes, per §4.1.
func (f *File) SetSR(v uint32) {
	oldVisible := f.visibleBank()
	f.sr = v
	newVisible := f.visibleBank()
	if oldVisible != newVisible && f.log != nil {
		f.log.Logf(logger.Allow, "sh4", "SR write flips visible bank %d -> %d", oldVisible, newVisible)
	}
}

// SR field accessors, used throughout the instruction handlers and the
// exception-entry procedure.

func (f *File) T() bool  { return f.sr&srT != 0 }
func (f *File) S() bool  { return f.sr&srS != 0 }
func (f *File) Q() bool  { return f.sr&srQ != 0 }
func (f *File) M() bool  { return f.sr&srM != 0 }
func (f *File) BL() bool { return f.sr&srBL != 0 }
func (f *File) RB() bool { return f.sr&srRB != 0 }
func (f *File) MD() bool { return f.sr&srMD != 0 }
func (f *File) FD() bool { return f.sr&srFD != 0 }

// IMASK returns the 4-bit interrupt mask field.
func (f *File) IMASK() uint32 { return (f.sr & srIMASK) >> imaskShift }

func (f *File) setBit(mask uint32, v bool) {
	if v {
		f.SetSR(f.sr | mask)
	} else {
		f.SetSR(f.sr &^ mask)
	}
}

func (f *File) SetT(v bool)  { f.setBit(srT, v) }
func (f *File) SetS(v bool)  { f.setBit(srS, v) }
func (f *File) SetQ(v bool)  { f.setBit(srQ, v) }
func (f *File) SetM(v bool)  { f.setBit(srM, v) }
func (f *File) SetBL(v bool) { f.setBit(srBL, v) }
func (f *File) SetMD(v bool) { f.setBit(srMD, v) }
func (f *File) SetFD(v bool) { f.setBit(srFD, v) }

// SetIMASK writes the 4-bit interrupt mask field.
func (f *File) SetIMASK(v uint32) {
	f.SetSR((f.sr &^ uint32(srIMASK)) | ((v & 0xF) << imaskShift))
}

// GPRSnapshot returns all 16 general registers as currently visible,
// matching the layout §6.2 exposes to debuggers and save-states.
func (f *File) GPRSnapshot() [16]uint32 {
	var out [16]uint32
	for i := 0; i < 16; i++ {
		out[i] = f.R(i)
	}
	return out
}

// SetGPRSnapshot restores all 16 general registers through SetR.
func (f *File) SetGPRSnapshot(v [16]uint32) {
	for i := 0; i < 16; i++ {
		f.SetR(i, v[i])
	}
}

// BankSnapshot returns both physical banks of R0..R7 directly, for
// save-states that must restore the register the SR-visibility mapping
// would otherwise hide.
func (f *File) BankSnapshot() [2][8]uint32 { return f.bank }

// SetBankSnapshot restores both physical banks directly.
func (f *File) SetBankSnapshot(v [2][8]uint32) { f.bank = v }
