package wasm

import (
	"strings"

	"github.com/wasmkit/interp/values"
)

// FunctionType is a function's WebAssembly-visible signature: parameter
// types in declaration order plus at most one result type.
type FunctionType struct {
	Params  []values.Type
	Results []values.Type
}

// NewFunctionType builds a signature from parameter types and an optional
// result. A result of values.TypeNone means the function returns nothing.
func NewFunctionType(params []values.Type, result values.Type) FunctionType {
	ft := FunctionType{Params: params}
	if result != values.TypeNone {
		ft.Results = []values.Type{result}
	}
	return ft
}

// Equal reports structural equality of two signatures.
func (ft FunctionType) Equal(other FunctionType) bool {
	if len(ft.Params) != len(other.Params) || len(ft.Results) != len(other.Results) {
		return false
	}
	for i, p := range ft.Params {
		if p != other.Params[i] {
			return false
		}
	}
	for i, r := range ft.Results {
		if r != other.Results[i] {
			return false
		}
	}
	return true
}

// String renders the signature as "(i32, i64) -> i32" or "() -> ()".
func (ft FunctionType) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range ft.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(values.TypeName(p))
	}
	b.WriteString(") -> ")
	if len(ft.Results) == 0 {
		b.WriteString("()")
	} else {
		b.WriteString(values.TypeName(ft.Results[0]))
	}
	return b.String()
}

// Key returns a canonical string form usable as an interning key. Two
// signatures have the same key iff Equal reports true. The parameter
// count is length-prefixed; a separator byte could collide with a value
// type encoding (0x7C is f64).
func (ft FunctionType) Key() string {
	var b strings.Builder
	b.WriteByte(byte(len(ft.Params)))
	for _, p := range ft.Params {
		b.WriteByte(byte(p))
	}
	for _, r := range ft.Results {
		b.WriteByte(byte(r))
	}
	return b.String()
}

// GlobalType describes a global variable: its value type and whether the
// global may be mutated after initialization.
type GlobalType struct {
	ValType values.Type
	Mutable bool
}

func (gt GlobalType) String() string {
	if gt.Mutable {
		return "var " + values.TypeName(gt.ValType)
	}
	return "const " + values.TypeName(gt.ValType)
}
