// Package xerrors provides the plain-Go-error conventions used across the
// sh4 core. Architectural events (illegal instruction, FPU disable, bus
// faults) are not modelled as Go errors at all — they are data handled by
// the exception-entry procedure in package sh4. Go errors here are reserved
// for things that indicate a bug in the core itself: a malformed decode
// table, a snapshot that cannot be restored, a bus collaborator that
// returned an error type it never promised to return.
//
// Curated errors de-duplicate adjacent repetitions of the same message when
// a lower layer and its caller both wrap the same failure, so callers don't
// have to reason about how many times to wrap.
package xerrors

import (
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a curated error. Unlike fmt.Errorf the first argument is
// named pattern, not format, because Is/Has compare against it directly.
func Errorf(pattern string, values ...interface{}) error {
	return curated{pattern: pattern, values: values}
}

// Error implements the error interface, normalising the message by
// collapsing immediately-repeated adjacent parts.
func (e curated) Error() string {
	s := fmt.Errorf(e.pattern, e.values...).Error()
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}
	return strings.Join(p, ": ")
}

// IsAny reports whether err was created by Errorf.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is reports whether err's own pattern equals head.
func Is(err error, head string) bool {
	if err == nil {
		return false
	}
	e, ok := err.(curated)
	return ok && e.pattern == head
}

// Has reports whether msg appears anywhere in err's wrap chain.
func Has(err error, msg string) bool {
	if err == nil || !IsAny(err) {
		return false
	}
	if Is(err, msg) {
		return true
	}
	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok && Has(e, msg) {
			return true
		}
	}
	return false
}
