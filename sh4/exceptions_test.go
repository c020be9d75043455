package sh4_test

import (
	"testing"

	"github.com/retrocore/sh4dc/test"
)

func TestInvalidOpcodeRaisesGeneralIllegal(t *testing.T) {
	c, b := newTestCPU()
	c.Regs.SetVBR(0x4000)
	b.putWord(0x1000, 0x0000) // matches no definition
	test.ExpectSuccess(t, c.Step())
	test.Equate(t, c.Regs.PC(), c.Regs.VBR()+0x100)
	test.ExpectSuccess(t, c.Regs.BL())
	test.ExpectSuccess(t, c.Regs.MD())
}

func TestFPUDisabledTrapsOnFPUOp(t *testing.T) {
	c, b := newTestCPU()
	c.Regs.SetVBR(0x4000)
	c.Regs.SetFD(true)
	// FADD FR1,FR0 -> 1111nnnnmmmm0000, n=0,m=1 -> 0xF010
	b.putWord(0x1000, 0xF010)
	test.ExpectSuccess(t, c.Step())
	test.Equate(t, c.Regs.PC(), c.Regs.VBR()+0x100)
}

func TestPrivilegedInstructionTrapsInUserMode(t *testing.T) {
	c, b := newTestCPU()
	c.Regs.SetVBR(0x4000)
	c.Regs.SetMD(false)
	// LDC R0,SR -> 0100nnnn00001110, n=0 -> 0x400E
	b.putWord(0x1000, 0x400E)
	test.ExpectSuccess(t, c.Step())
	test.Equate(t, c.Regs.PC(), c.Regs.VBR()+0x100)
}

func TestRTERestoresSRBeforeDelaySlot(t *testing.T) {
	c, b := newTestCPU()
	c.Regs.SetSSR(0) // user mode, FD clear
	c.Regs.SetSPC(0x2000)
	// RTE -> 0000000000101011 = 0x002B
	b.putWord(0x1000, 0x002B)
	// delay slot: LDC R0,SR would now be legal since SR was just restored to
	// user mode... instead use a harmless NOP to keep this test focused on
	// the PC/SR transition.
	b.putWord(0x1002, 0x0009)
	test.ExpectSuccess(t, c.Step()) // RTE: SR restored immediately, delay scheduled
	test.ExpectSuccess(t, !c.Regs.MD())
	test.ExpectSuccess(t, c.Step()) // delay slot executes, commits branch
	test.Equate(t, c.Regs.PC(), uint32(0x2000))
}
