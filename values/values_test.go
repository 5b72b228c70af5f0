package values

import (
	"math"
	"testing"
)

func TestValue_RoundTrips(t *testing.T) {
	if got := I32(-42).I32(); got != -42 {
		t.Errorf("I32 round trip: got %d", got)
	}
	if got := I64(math.MinInt64).I64(); got != math.MinInt64 {
		t.Errorf("I64 round trip: got %d", got)
	}
	if got := F32(1.5).F32(); got != 1.5 {
		t.Errorf("F32 round trip: got %g", got)
	}
	if got := F64(math.Pi).F64(); got != math.Pi {
		t.Errorf("F64 round trip: got %g", got)
	}
	if got := U32(math.MaxUint32).U32(); got != math.MaxUint32 {
		t.Errorf("U32 round trip: got %d", got)
	}
	if got := U64(math.MaxUint64).U64(); got != math.MaxUint64 {
		t.Errorf("U64 round trip: got %d", got)
	}
}

func TestValue_Types(t *testing.T) {
	cases := []struct {
		v    Value
		want Type
	}{
		{I32(1), TypeI32},
		{U32(1), TypeI32},
		{I64(1), TypeI64},
		{U64(1), TypeI64},
		{F32(1), TypeF32},
		{F64(1), TypeF64},
	}
	for _, c := range cases {
		if c.v.Type() != c.want {
			t.Errorf("%v: type = %s, want %s", c.v, TypeName(c.v.Type()), TypeName(c.want))
		}
	}
}

func TestValue_None(t *testing.T) {
	var zero Value
	if !zero.IsNone() {
		t.Error("zero Value should be None")
	}
	if !None.IsNone() {
		t.Error("None should report IsNone")
	}
	if None.Type() != TypeNone {
		t.Errorf("None type = %v", None.Type())
	}
	if I32(0).IsNone() {
		t.Error("i32(0) should not be None")
	}
}

func TestValue_NegativeFloat(t *testing.T) {
	// Sign bit must survive the uint64 encoding.
	if got := F32(-0.5).F32(); got != -0.5 {
		t.Errorf("F32(-0.5) round trip: got %g", got)
	}
	if got := F64(-2.25).F64(); got != -2.25 {
		t.Errorf("F64(-2.25) round trip: got %g", got)
	}
}

func TestValue_String(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{I32(42), "i32(42)"},
		{I64(-7), "i64(-7)"},
		{F32(0.5), "f32(0.5)"},
		{F64(2.5), "f64(2.5)"},
		{None, "none"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		t    Type
		want string
	}{
		{TypeI32, "i32"},
		{TypeI64, "i64"},
		{TypeF32, "f32"},
		{TypeF64, "f64"},
		{TypeNone, "none"},
	}
	for _, c := range cases {
		if got := TypeName(c.t); got != c.want {
			t.Errorf("TypeName(0x%x) = %q, want %q", byte(c.t), got, c.want)
		}
	}
}
