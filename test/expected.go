// Package test provides small assertion helpers shared by the sh4 core's
// package-level tests. It intentionally avoids pulling in an assertion
// framework; these are thin wrappers around t.Helper()/t.Errorf() in the
// style the rest of the corpus uses for its own hand-rolled test packages.
package test

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func isSuccess(result interface{}) bool {
	switch v := result.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		return false
	}
}

// ExpectSuccess fails the test unless result is true, a nil error, or nil.
func ExpectSuccess(t *testing.T, result interface{}) {
	t.Helper()
	if !isSuccess(result) {
		t.Errorf("expected success, got %v", result)
	}
}

// ExpectFailure fails the test unless result is false or a non-nil error.
func ExpectFailure(t *testing.T, result interface{}) {
	t.Helper()
	if isSuccess(result) {
		t.Errorf("expected failure, got %v", result)
	}
}

// Equate is an alias for ExpectEquality, kept for the tests in this package
// that were written against the older entry point.
func Equate(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	ExpectEquality(t, a, b)
}

// ExpectEquality fails the test unless a and b are equal.
func ExpectEquality(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %s != %s", fmt.Sprint(a), fmt.Sprint(b))
	}
}

// ExpectInequality fails the test if a and b are equal.
func ExpectInequality(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality: %s == %s", fmt.Sprint(a), fmt.Sprint(b))
	}
}

// ExpectApproximate fails the test unless a and b are within tolerance of
// one another.
func ExpectApproximate(t *testing.T, a float64, b float64, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Errorf("expected %f to be within %f of %f", a, tolerance, b)
	}
}
