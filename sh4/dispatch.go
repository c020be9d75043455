package sh4

import (
	"github.com/retrocore/sh4dc/opcodes"
	"github.com/retrocore/sh4dc/xerrors"
)

// Handler implements one opcode's bit-exact semantics. fault reports that
// an architectural exception was raised (raiseException already rewrote
// PC/SR); the engine must not advance PC itself nor commit a pending
// delayed branch when fault is true. err is reserved for internal
// consistency failures, not architectural events.
type Handler func(c *CPU, word uint16) (fault bool, err error)

// handlers maps every Operator the decode table can produce to its
// implementation. Built once in init() from the per-family registration
// functions in handlers_*.go, mirroring the read-only-static treatment
// spec §9 asks for the decode LUT and FSCA tables.
var handlers map[opcodes.Operator]Handler

func registerHandlers(reg map[opcodes.Operator]Handler) {
	for op, h := range reg {
		handlers[op] = h
	}
}

func init() {
	handlers = make(map[opcodes.Operator]Handler, 256)
	registerHandlers(moveHandlers())
	registerHandlers(arithHandlers())
	registerHandlers(logicHandlers())
	registerHandlers(shiftHandlers())
	registerHandlers(compareHandlers())
	registerHandlers(divideHandlers())
	registerHandlers(macHandlers())
	registerHandlers(branchHandlers())
	registerHandlers(systemHandlers())
	registerHandlers(cacheHandlers())
	registerHandlers(fpuHandlers())
	registerHandlers(invalidHandlers())
}

// dispatch looks up and invokes the handler for the decoded descriptor.
// A decode result of OpInvalid is the architectural "this bit pattern
// defines nothing" case and is routed to invalidOpcode. Any other operator
// missing from the handlers map is a build-time bug (a CSV entry with no
// registered Go handler, or a corrupted table), never reachable on a
// correctly constructed binary, and is reported as an internal error with
// an attached diagnostic Snapshot per spec §3.
func (c *CPU) dispatch(d opcodes.Definition, word uint16) (bool, error) {
	if d.Operator == opcodes.OpInvalid {
		return invalidOpcode(c, word)
	}
	h, ok := handlers[d.Operator]
	if !ok {
		return false, c.internalError(xerrors.Errorf("sh4: no handler registered for operator %q", d.Operator))
	}
	return h(c, word)
}
