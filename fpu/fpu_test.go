package fpu_test

import (
	"testing"

	"github.com/retrocore/sh4dc/fpu"
	"github.com/retrocore/sh4dc/test"
)

func TestResetState(t *testing.T) {
	f := fpu.New(nil)
	test.Equate(t, f.FPSCR(), fpu.ResetFPSCR)
	test.Equate(t, f.FR(0), float32(0))
}

func TestFRRoundTrip(t *testing.T) {
	f := fpu.New(nil)
	f.SetFR(4, 3.5)
	test.Equate(t, f.FR(4), float32(3.5))
}

func TestDRPairing(t *testing.T) {
	f := fpu.New(nil)
	f.SetDR(2, 1.0)
	test.ExpectApproximate(t, float64(f.FR(2)), float64(1.875), 0)
	test.Equate(t, f.FR(3), float32(0))
}

func TestFRXFSwapOnFRToggle(t *testing.T) {
	f := fpu.New(nil)
	f.SetFR(0, 1.0)
	f.ToggleFR()
	test.Equate(t, f.XF(0), float32(1.0))
	test.Equate(t, f.FR(0), float32(0))
	f.ToggleFR()
	test.Equate(t, f.FR(0), float32(1.0))
}

func TestFSCAQuarterTurn(t *testing.T) {
	sin, cos := fpu.FSCA(0x4000)
	test.ExpectApproximate(t, float64(sin), 1.0, 1e-3)
	test.ExpectApproximate(t, float64(cos), 0.0, 1e-3)
}

func TestTruncToInt32RoundsTowardZero(t *testing.T) {
	test.Equate(t, fpu.TruncToInt32(1.9), int32(1))
	test.Equate(t, fpu.TruncToInt32(-1.9), int32(-1))
}

func TestSaturateMACL48(t *testing.T) {
	test.Equate(t, fpu.SaturateMACL48(0x7FFFFFFFFFFF+1), int64(0x7FFFFFFFFFFF))
	test.Equate(t, fpu.SaturateMACL48(-int64(0x800000000000)-1), -int64(0x800000000000))
}
