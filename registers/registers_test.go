package registers_test

import (
	"testing"

	"github.com/retrocore/sh4dc/registers"
	"github.com/retrocore/sh4dc/test"
)

func TestResetState(t *testing.T) {
	f := registers.New(nil)
	test.Equate(t, f.SR(), registers.ResetSR)
	test.Equate(t, f.PC(), registers.ResetPC)
	test.ExpectSuccess(t, f.MD())
	test.ExpectSuccess(t, f.RB())
	test.ExpectSuccess(t, f.BL())
	test.ExpectSuccess(t, f.FD())
	test.Equate(t, f.IMASK(), uint32(0xF))
}

func TestGPRRoundTrip(t *testing.T) {
	f := registers.New(nil)
	for i := 0; i < 16; i++ {
		v := uint32(i)*0x01010101 + 1
		f.SetR(i, v)
		test.Equate(t, f.R(i), v)
	}
}

func TestBankSwapOnSRWrite(t *testing.T) {
	f := registers.New(nil)

	// Reset leaves MD=1, RB=1: bank 1 visible.
	f.SetR(0, 0xAAAAAAAA)

	// Clear RB: bank 0 becomes visible, and must read back independently.
	f.SetSR(f.SR() &^ (1 << 29))
	f.SetR(0, 0xBBBBBBBB)
	test.Equate(t, f.R(0), uint32(0xBBBBBBBB))

	// Re-set RB: bank 1 visible again, original value intact.
	f.SetSR(f.SR() | (1 << 29))
	test.Equate(t, f.R(0), uint32(0xAAAAAAAA))
}

func TestRBankAddressesOtherBank(t *testing.T) {
	f := registers.New(nil)
	f.SetR(3, 0x11111111)          // writes currently-visible bank (bank 1)
	f.SetRBank(3, 0x22222222)      // writes the other bank (bank 0)
	test.Equate(t, f.R(3), uint32(0x11111111))
	test.Equate(t, f.RBank(3), uint32(0x22222222))
}

func TestUnbankedRegistersIgnoreSR(t *testing.T) {
	f := registers.New(nil)
	f.SetR(12, 0xCAFEBABE)
	f.SetSR(f.SR() &^ (1 << 29))
	test.Equate(t, f.R(12), uint32(0xCAFEBABE))
}

func TestIMASKRoundTrip(t *testing.T) {
	f := registers.New(nil)
	f.SetIMASK(0x5)
	test.Equate(t, f.IMASK(), uint32(0x5))
}
