package opcodes

import "github.com/retrocore/sh4dc/xerrors"

// invalidDescriptor is returned by Decode for any word matched by no
// Definition; its handler (sh4/handlers_invalid.go) raises the
// general-illegal or slot-illegal exception depending on delay-slot state.
var invalidDescriptor = Definition{Operator: OpInvalid}

// Table is the built 65536-entry decode lookup. It is immutable after
// Build returns; every SH-4 instruction word maps to exactly one slot.
type Table struct {
	defs []Definition
	lut  [65536]Definition
}

var global *Table

func init() {
	t, err := Build()
	if err != nil {
		panic(err)
	}
	global = t
}

// Build constructs the decode table from the embedded definitions,
// scanning the declarative list once per instruction word, in table order,
// and assigning the first match — ties among overlapping patterns are
// resolved by the order the opcodes were authored in, following spec §4.2.
// Build is idempotent: the CSV ordering is fixed, so re-running it always
// assigns the same word to the same descriptor.
func Build() (*Table, error) {
	defs, err := loadDefinitions()
	if err != nil {
		return nil, err
	}
	t := &Table{defs: defs}
	for word := 0; word < 65536; word++ {
		t.lut[word] = t.decodeSlow(uint16(word))
	}
	return t, nil
}

// decodeSlow scans the definition list linearly; it is also exposed as
// DecodeSlow for the Decode==DecodeSlow conformance test in §8.
func (t *Table) decodeSlow(word uint16) Definition {
	for _, d := range t.defs {
		if word&d.Mask == d.Value {
			return d
		}
	}
	return invalidDescriptor
}

// Decode is the O(1) hot-path lookup used by the execution engine.
func (t *Table) Decode(word uint16) Definition { return t.lut[word] }

// DecodeSlow re-derives the descriptor by linear scan, bypassing the LUT,
// for use only by conformance tests that assert Decode == DecodeSlow.
func (t *Table) DecodeSlow(word uint16) Definition { return t.decodeSlow(word) }

// Global returns the process-wide decode table, built once in init() and
// treated as a read-only static thereafter (spec §9, "global mutable
// state").
func Global() *Table {
	if global == nil {
		panic(xerrors.Errorf("opcodes: Global() called before init"))
	}
	return global
}
