package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Rendering(t *testing.T) {
	err := New(PhaseCall, KindTypeMismatch).
		Export("add_one").
		ValType("i32").
		Detail("argument 0 tagged i64").
		Build()

	msg := err.Error()
	for _, want := range []string{"[call]", "type_mismatch", "add_one", "i32", "argument 0 tagged i64"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestError_CauseChain(t *testing.T) {
	cause := InvalidLimits("minimum 8 exceeds maximum 4")
	err := New(PhaseRegister, KindAllocation).
		Export("mem").
		Cause(cause).
		Detail("memory allocation failed").
		Build()

	if !strings.Contains(err.Error(), "caused by") {
		t.Errorf("message %q missing cause", err.Error())
	}
	if !stderrors.Is(err, &Error{Phase: PhaseAlloc, Kind: KindInvalidLimits}) {
		t.Error("Is should match the wrapped cause by phase and kind")
	}
	if stderrors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := DuplicateExport("counter")
	if !stderrors.Is(err, &Error{Phase: PhaseBuild, Kind: KindDuplicateExport}) {
		t.Error("Is should match phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseCall, Kind: KindDuplicateExport}) {
		t.Error("Is should not match a different phase")
	}
	if stderrors.Is(err, fmt.Errorf("other")) {
		t.Error("Is should not match a foreign error")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	cases := []struct {
		err   *Error
		phase Phase
		kind  Kind
	}{
		{TypeMismatch(PhaseCall, "i32", "i64"), PhaseCall, KindTypeMismatch},
		{StateMismatch("*host.Counter", "*host.Clock"), PhaseCall, KindStateMismatch},
		{ArityMismatch("f", 2, 3), PhaseCall, KindArityMismatch},
		{DuplicateExport("g"), PhaseBuild, KindDuplicateExport},
		{InvalidLimits("bad"), PhaseAlloc, KindInvalidLimits},
		{NotFound(PhaseCall, "nope"), PhaseCall, KindNotFound},
		{InvalidInput(PhaseBuild, "bad"), PhaseBuild, KindInvalidInput},
		{Sealed(PhaseBuild, "done"), PhaseBuild, KindSealed},
		{Immutable("const"), PhaseCall, KindImmutable},
	}
	for _, c := range cases {
		if c.err.Phase != c.phase || c.err.Kind != c.kind {
			t.Errorf("%v: phase/kind = %s/%s, want %s/%s",
				c.err, c.err.Phase, c.err.Kind, c.phase, c.kind)
		}
		if c.err.Error() == "" {
			t.Errorf("%s/%s renders empty", c.phase, c.kind)
		}
	}
}

func TestArityMismatch_Detail(t *testing.T) {
	err := ArityMismatch("add", 1, 3)
	if !strings.Contains(err.Error(), "takes 1 arguments, got 3") {
		t.Errorf("message %q missing arity detail", err.Error())
	}
}
