package wasm

import (
	"testing"

	"github.com/wasmkit/interp/values"
)

func TestFunctionType_Equal(t *testing.T) {
	a := NewFunctionType([]values.Type{values.TypeI32}, values.TypeI32)
	b := NewFunctionType([]values.Type{values.TypeI32}, values.TypeI32)
	if !a.Equal(b) {
		t.Error("identical signatures should be equal")
	}

	c := NewFunctionType([]values.Type{values.TypeI64}, values.TypeI32)
	if a.Equal(c) {
		t.Error("signatures with different params should differ")
	}

	d := NewFunctionType([]values.Type{values.TypeI32}, values.TypeNone)
	if a.Equal(d) {
		t.Error("valued and void signatures should differ")
	}

	e := NewFunctionType(nil, values.TypeNone)
	f := NewFunctionType(nil, values.TypeNone)
	if !e.Equal(f) {
		t.Error("empty signatures should be equal")
	}
}

func TestFunctionType_NewFunctionType_VoidResult(t *testing.T) {
	ft := NewFunctionType([]values.Type{values.TypeF64}, values.TypeNone)
	if len(ft.Results) != 0 {
		t.Errorf("void signature has %d results", len(ft.Results))
	}
}

func TestFunctionType_String(t *testing.T) {
	cases := []struct {
		ft   FunctionType
		want string
	}{
		{NewFunctionType(nil, values.TypeNone), "() -> ()"},
		{NewFunctionType([]values.Type{values.TypeI32}, values.TypeI32), "(i32) -> i32"},
		{NewFunctionType([]values.Type{values.TypeI64, values.TypeF64}, values.TypeNone), "(i64, f64) -> ()"},
	}
	for _, c := range cases {
		if got := c.ft.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestFunctionType_Key(t *testing.T) {
	a := NewFunctionType([]values.Type{values.TypeI32, values.TypeI64}, values.TypeNone)
	b := NewFunctionType(nil, values.TypeNone)
	c := NewFunctionType([]values.Type{values.TypeI32}, values.TypeI64)
	d := NewFunctionType([]values.Type{values.TypeI32, values.TypeI64}, values.TypeNone)

	if a.Key() == b.Key() || a.Key() == c.Key() || b.Key() == c.Key() {
		t.Error("distinct signatures should have distinct keys")
	}
	if a.Key() != d.Key() {
		t.Error("equal signatures should share a key")
	}
}

func TestFunctionType_KeyParamResultBoundary(t *testing.T) {
	// A value type byte must never read as the param/result boundary.
	// f64 encodes as 0x7C, the ASCII '|'.
	cases := [][2]FunctionType{
		{
			NewFunctionType([]values.Type{values.TypeF64}, values.TypeNone),
			NewFunctionType(nil, values.TypeF64),
		},
		{
			NewFunctionType([]values.Type{values.TypeF64, values.TypeF64}, values.TypeNone),
			NewFunctionType([]values.Type{values.TypeF64}, values.TypeF64),
		},
		{
			NewFunctionType([]values.Type{values.TypeI32}, values.TypeNone),
			NewFunctionType(nil, values.TypeI32),
		},
	}
	for _, c := range cases {
		if c[0].Equal(c[1]) {
			t.Fatalf("fixture broken: %s equals %s", c[0], c[1])
		}
		if c[0].Key() == c[1].Key() {
			t.Errorf("unequal signatures %s and %s share key %q", c[0], c[1], c[0].Key())
		}
	}
}

func TestGlobalType_String(t *testing.T) {
	gt := GlobalType{ValType: values.TypeI32, Mutable: true}
	if got := gt.String(); got != "var i32" {
		t.Errorf("String() = %q", got)
	}
	gt = GlobalType{ValType: values.TypeF64}
	if got := gt.String(); got != "const f64" {
		t.Errorf("String() = %q", got)
	}
}

func TestLimits_Validate(t *testing.T) {
	if err := Bounded(1, 4).Validate(16); err != nil {
		t.Errorf("valid limits rejected: %v", err)
	}
	if err := Unbounded(3).Validate(16); err != nil {
		t.Errorf("unbounded limits rejected: %v", err)
	}
	if err := Bounded(8, 4).Validate(16); err == nil {
		t.Error("min > max should fail")
	}
	if err := Bounded(1, 32).Validate(16); err == nil {
		t.Error("max > ceiling should fail")
	}
	if err := Unbounded(32).Validate(16); err == nil {
		t.Error("min > ceiling should fail")
	}
}

func TestMemoryType_Validate(t *testing.T) {
	if err := (MemoryType{Limits: Bounded(1, 2)}).Validate(); err != nil {
		t.Errorf("valid memory rejected: %v", err)
	}
	if err := (MemoryType{Limits: Bounded(2, 1)}).Validate(); err == nil {
		t.Error("inverted memory limits should fail")
	}
	if err := (MemoryType{Limits: Unbounded(MaxMemoryPages + 1)}).Validate(); err == nil {
		t.Error("memory above page ceiling should fail")
	}
}

func TestTableType_Validate(t *testing.T) {
	tt := TableType{Elem: RefFunc, Limits: Bounded(4, 8)}
	if err := tt.Validate(); err != nil {
		t.Errorf("valid table rejected: %v", err)
	}
	tt = TableType{Elem: RefFunc, Limits: Bounded(8, 4)}
	if err := tt.Validate(); err == nil {
		t.Error("inverted table limits should fail")
	}
}

func TestRefType_String(t *testing.T) {
	if RefFunc.String() != "funcref" || RefExtern.String() != "externref" {
		t.Errorf("ref type names: %s, %s", RefFunc, RefExtern)
	}
}
