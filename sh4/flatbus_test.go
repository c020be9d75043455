package sh4_test

import (
	"encoding/binary"
	"math"

	"github.com/retrocore/sh4dc/bus"
)

// flatBus is a plain byte array implementing bus.CPUBus, sized generously
// enough to hold test programs and scratch data without any address
// translation. It exists only for these package tests; production code
// always supplies its own bus.CPUBus collaborator.
type flatBus struct {
	mem [1 << 20]byte
}

var _ bus.CPUBus = (*flatBus)(nil)

func (b *flatBus) Read8(addr uint32) (uint8, error) { return b.mem[addr], nil }
func (b *flatBus) Write8(addr uint32, v uint8) error {
	b.mem[addr] = v
	return nil
}

func (b *flatBus) Read16(addr uint32) (uint16, error) {
	return binary.LittleEndian.Uint16(b.mem[addr:]), nil
}
func (b *flatBus) Write16(addr uint32, v uint16) error {
	binary.LittleEndian.PutUint16(b.mem[addr:], v)
	return nil
}

func (b *flatBus) Read32(addr uint32) (uint32, error) {
	return binary.LittleEndian.Uint32(b.mem[addr:]), nil
}
func (b *flatBus) Write32(addr uint32, v uint32) error {
	binary.LittleEndian.PutUint32(b.mem[addr:], v)
	return nil
}

func (b *flatBus) ReadFloat32(addr uint32) (float32, error) {
	return math.Float32frombits(binary.LittleEndian.Uint32(b.mem[addr:])), nil
}
func (b *flatBus) WriteFloat32(addr uint32, v float32) error {
	binary.LittleEndian.PutUint32(b.mem[addr:], math.Float32bits(v))
	return nil
}

func (b *flatBus) ReadFloat64(addr uint32) (float64, error) {
	return math.Float64frombits(binary.LittleEndian.Uint64(b.mem[addr:])), nil
}
func (b *flatBus) WriteFloat64(addr uint32, v float64) error {
	binary.LittleEndian.PutUint64(b.mem[addr:], math.Float64bits(v))
	return nil
}

// putWord writes a little-endian instruction word at addr.
func (b *flatBus) putWord(addr uint32, word uint16) {
	binary.LittleEndian.PutUint16(b.mem[addr:], word)
}

type noopHost struct{}

func (noopHost) CreditCycles(n int) {}
