package opcodes_test

import (
	"testing"

	"github.com/retrocore/sh4dc/opcodes"
	"github.com/retrocore/sh4dc/test"
)

func TestDecodeMatchesDecodeSlow(t *testing.T) {
	tbl := opcodes.Global()
	words := []uint16{0x0000, 0x0009, 0xA003, 0xE703, 0x6133, 0x2008, 0xFFFF, 0x4006, 0xF0ED}
	for _, w := range words {
		test.Equate(t, tbl.Decode(w), tbl.DecodeSlow(w))
	}
}

func TestNOPDecodesToMTGroup(t *testing.T) {
	tbl := opcodes.Global()
	d := tbl.Decode(0x0009)
	test.Equate(t, d.Operator, opcodes.Operator("NOP"))
	test.Equate(t, d.Group, opcodes.GroupMT)
}

func TestBRADecodesPCRelative(t *testing.T) {
	tbl := opcodes.Global()
	d := tbl.Decode(0xA003)
	test.Equate(t, d.Operator, opcodes.Operator("BRA_DISP"))
	test.ExpectSuccess(t, d.PCRelative)
}

func TestUnmatchedWordIsInvalid(t *testing.T) {
	tbl := opcodes.Global()
	// 0xFFFD is not assigned by any pattern in the authored table.
	d := tbl.Decode(0xFFFD)
	test.Equate(t, d.Operator, opcodes.OpInvalid)
}

func TestBuildIsIdempotent(t *testing.T) {
	a, err := opcodes.Build()
	test.ExpectSuccess(t, err == nil)
	b, err := opcodes.Build()
	test.ExpectSuccess(t, err == nil)
	for w := 0; w < 65536; w += 997 {
		test.Equate(t, a.Decode(uint16(w)), b.Decode(uint16(w)))
	}
}
