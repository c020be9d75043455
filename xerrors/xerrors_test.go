package xerrors_test

import (
	"fmt"
	"testing"

	"github.com/retrocore/sh4dc/test"
	"github.com/retrocore/sh4dc/xerrors"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := xerrors.Errorf(testError, "foo")
	test.Equate(t, e.Error(), "test error: foo")

	f := xerrors.Errorf(testError, e)
	test.Equate(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := xerrors.Errorf(testError, "foo")
	test.ExpectSuccess(t, xerrors.Is(e, testError))
	test.ExpectFailure(t, xerrors.Has(e, testErrorB))

	f := xerrors.Errorf(testErrorB, e)
	test.ExpectFailure(t, xerrors.Is(f, testError))
	test.ExpectSuccess(t, xerrors.Is(f, testErrorB))
	test.ExpectSuccess(t, xerrors.Has(f, testError))
	test.ExpectSuccess(t, xerrors.Has(f, testErrorB))

	test.ExpectSuccess(t, xerrors.IsAny(e))
	test.ExpectSuccess(t, xerrors.IsAny(f))
}

func TestPlainErrors(t *testing.T) {
	e := fmt.Errorf("plain test error")
	test.ExpectFailure(t, xerrors.IsAny(e))
	test.ExpectFailure(t, xerrors.Has(e, testError))
}

func TestWrapping(t *testing.T) {
	a := 10
	e := xerrors.Errorf("error: value = %d", a)
	f := xerrors.Errorf("fatal: %v", e)

	test.ExpectSuccess(t, xerrors.Has(f, "error: value = %d"))
	test.ExpectFailure(t, xerrors.Is(f, "error: value = %d"))
	test.ExpectSuccess(t, xerrors.Has(f, "fatal: %v"))
	test.ExpectSuccess(t, xerrors.Is(f, "fatal: %v"))

	test.Equate(t, f.Error(), "fatal: error: value = 10")
}
