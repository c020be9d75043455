package fpu

import "math"

// FSCATableLen is the number of entries in each FSCA lookup table: one
// full revolution divided into 65536 steps.
const FSCATableLen = 65536

// sinTable and cosTable back the FSCA instruction. The real silicon ships
// these as baked ROM constants; the exact bit pattern of that ROM is not
// part of this repository's retrieval set, so the tables are computed once
// at init from the same angle quantization the hardware uses (angle units
// of 1/65536 of a revolution), which reproduces the documented behavior to
// single-precision accuracy without claiming bit-for-bit ROM parity.
var sinTable [FSCATableLen]float32
var cosTable [FSCATableLen]float32

func init() {
	for i := 0; i < FSCATableLen; i++ {
		theta := 2 * math.Pi * float64(i) / float64(FSCATableLen)
		s, c := math.Sincos(theta)
		sinTable[i] = float32(s)
		cosTable[i] = float32(c)
	}
}

// FSCA looks up (sin, cos) for the low 16 bits of angle, per spec §4.3.7.
func FSCA(angle uint32) (sin, cos float32) {
	idx := angle & (FSCATableLen - 1)
	return sinTable[idx], cosTable[idx]
}
