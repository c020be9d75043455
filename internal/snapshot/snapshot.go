// Package snapshot captures the complete architectural state of one SH-4
// core for two purposes: attaching diagnostic context to an internal
// consistency error (spec §3's "diagnostic snapshot"), and save-states.
// It holds plain data only, so it can be imported by package sh4 without
// creating a cycle.
package snapshot

import "github.com/retrocore/sh4dc/xerrors"

// Snapshot is a complete, comparable copy of one core's visible and banked
// state. The sh4 package tests use google/go-cmp to compare two Snapshots
// field by field.
type Snapshot struct {
	GPR      [16]uint32   // the currently visible bank, R0-R15
	GPRBank  [2][8]uint32 // both banks of R0-R7, for exact restore
	SR       uint32
	GBR      uint32
	VBR      uint32
	SSR      uint32
	SPC      uint32
	SGR      uint32
	DBR      uint32
	MACH     uint32
	MACL     uint32
	PR       uint32
	PC       uint32
	FPSCR    uint32
	FPUL     uint32
	FRBank   [2][16]float32
	StoreQ   [2][8]uint32
	DelayPC  bool
	DelayAt  uint32
	CycleAcc int
}

// Validate reports a curated error describing the first structural
// inconsistency found, or nil. It exists because a Snapshot is sometimes
// reconstructed from an untrusted save-state blob rather than captured
// live, so the banked-register invariant is worth checking before restore.
func (s Snapshot) Validate() error {
	for i, v := range s.GPR[:8] {
		bankR := s.GPRBank[0][i]
		bankRB := s.GPRBank[1][i]
		if v != bankR && v != bankRB {
			return xerrors.Errorf("snapshot: R%d=%#x matches neither bank (bank0=%#x bank1=%#x)", i, v, bankR, bankRB)
		}
	}
	return nil
}
