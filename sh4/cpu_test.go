package sh4_test

import (
	"testing"

	"github.com/retrocore/sh4dc/sh4"
	"github.com/retrocore/sh4dc/test"
)

func newTestCPU() (*sh4.CPU, *flatBus) {
	b := &flatBus{}
	c := sh4.New(b, nil)
	c.Regs.SetPC(0x1000)
	return c, b
}

func TestResetState(t *testing.T) {
	c, _ := newTestCPU()
	test.Equate(t, c.State(), sh4.StateNormal)
	test.ExpectSuccess(t, !c.DelayPending())
}

func TestMovImmAndAdd(t *testing.T) {
	c, b := newTestCPU()
	// MOV #5,R0 ; ADD #3,R0
	b.putWord(0x1000, 0xE005) // 1110 0000 00000101
	b.putWord(0x1002, 0x7003) // 0111 0000 00000011
	test.ExpectSuccess(t, c.Step())
	test.Equate(t, c.Regs.R(0), uint32(5))
	test.ExpectSuccess(t, c.Step())
	test.Equate(t, c.Regs.R(0), uint32(8))
}

func TestMovLRegisterIndirect(t *testing.T) {
	c, b := newTestCPU()
	c.Regs.SetR(1, 0x2000)
	b.Write32(0x2000, 0xCAFEBABE)
	// MOV.L @R1,R2 -> 0110 0010 0001 0010 (nnnn=2, mmmm=1)
	b.putWord(0x1000, 0x6212)
	test.ExpectSuccess(t, c.Step())
	test.Equate(t, c.Regs.R(2), uint32(0xCAFEBABE))
}

func TestBraDelaySlot(t *testing.T) {
	c, b := newTestCPU()
	// BRA +4 (disp=2, target = pc+4+2*2 = 0x1000+4+4 = 0x1008)
	b.putWord(0x1000, 0xA002)
	b.putWord(0x1002, 0xE02A) // delay slot: MOV #0x2A,R0
	b.putWord(0x1008, 0x0009) // NOP at target
	test.ExpectSuccess(t, c.Step()) // executes BRA, sets delay pending
	test.ExpectSuccess(t, c.DelayPending())
	test.ExpectSuccess(t, c.Step()) // executes delay slot, commits branch
	test.Equate(t, c.Regs.R(0), uint32(0x2A))
	test.Equate(t, c.Regs.PC(), uint32(0x1008))
}

func TestBtNonDelaySlotDoesNotDoublePC(t *testing.T) {
	c, b := newTestCPU()
	c.Regs.SetT(true)
	// BT +2 (disp=1, target = pc+4+1*2 = 0x1000+4+2 = 0x1006)
	b.putWord(0x1000, 0x8901)
	b.putWord(0x1006, 0x0009) // NOP
	test.ExpectSuccess(t, c.Step())
	test.Equate(t, c.Regs.PC(), uint32(0x1006))
}

func TestTrapaRaisesException(t *testing.T) {
	c, b := newTestCPU()
	c.Regs.SetVBR(0x9000)
	b.putWord(0x1000, 0xC301) // TRAPA #1
	test.ExpectSuccess(t, c.Step())
	test.Equate(t, c.Regs.PC(), c.Regs.VBR()+0x100)
	test.ExpectSuccess(t, c.Regs.BL())
}

func TestRunCreditsCycles(t *testing.T) {
	c, b := newTestCPU()
	// Three NOPs: the second co-issues for free with the first, so only two
	// issue slots (NOP1+NOP2, then NOP3) are ever charged against the
	// budget.
	b.putWord(0x1000, 0x0009)
	b.putWord(0x1002, 0x0009)
	b.putWord(0x1004, 0x0009)
	var credited int
	host := hostFunc(func(n int) { credited += n })
	if err := c.Run(host, 2); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, credited, 2)
}

type hostFunc func(n int)

func (h hostFunc) CreditCycles(n int) { h(n) }
