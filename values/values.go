package values

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// Type tags the shape of a runtime value at the WebAssembly boundary.
// It reuses wazero's value type encoding so signatures interoperate with
// tooling that speaks the same tags.
type Type = api.ValueType

const (
	TypeI32 Type = api.ValueTypeI32
	TypeI64 Type = api.ValueTypeI64
	TypeF32 Type = api.ValueTypeF32
	TypeF64 Type = api.ValueTypeF64

	// TypeNone marks the absence of a value. The zero byte is not a valid
	// wasm value type encoding, so the zero Value is None.
	TypeNone Type = 0
)

// Value is a tagged runtime value: one concrete scalar carried alongside
// its Type. Values travel between the interpreter's stack and host
// functions; the bits field holds the canonical uint64 stack encoding.
type Value struct {
	bits uint64
	typ  Type
}

// None is the absent value, returned by functions with no result.
var None = Value{}

func I32(v int32) Value { return Value{typ: TypeI32, bits: api.EncodeI32(v)} }
func I64(v int64) Value { return Value{typ: TypeI64, bits: api.EncodeI64(v)} }

func F32(v float32) Value { return Value{typ: TypeF32, bits: api.EncodeF32(v)} }
func F64(v float64) Value { return Value{typ: TypeF64, bits: api.EncodeF64(v)} }

// U32 builds an i32-tagged value from unsigned bits. Core wasm has no
// unsigned value types; hosts reinterpret the i32 payload.
func U32(v uint32) Value { return Value{typ: TypeI32, bits: api.EncodeU32(v)} }

// U64 builds an i64-tagged value from unsigned bits.
func U64(v uint64) Value { return Value{typ: TypeI64, bits: v} }

// Type returns the value's tag, TypeNone for the absent value.
func (v Value) Type() Type { return v.typ }

// IsNone reports whether v is the absent value.
func (v Value) IsNone() bool { return v.typ == TypeNone }

// Bits returns the raw uint64 stack encoding of the payload.
func (v Value) Bits() uint64 { return v.bits }

// I32 decodes the payload as a 32-bit signed integer. The caller is
// expected to have checked the tag; decoding does not.
func (v Value) I32() int32 { return api.DecodeI32(v.bits) }

// I64 decodes the payload as a 64-bit signed integer.
func (v Value) I64() int64 { return int64(v.bits) }

// U32 decodes the payload as a 32-bit unsigned integer.
func (v Value) U32() uint32 { return api.DecodeU32(v.bits) }

// U64 decodes the payload as a 64-bit unsigned integer.
func (v Value) U64() uint64 { return v.bits }

// F32 decodes the payload as a 32-bit float.
func (v Value) F32() float32 { return api.DecodeF32(v.bits) }

// F64 decodes the payload as a 64-bit float.
func (v Value) F64() float64 { return api.DecodeF64(v.bits) }

// String renders the value as tag(payload), e.g. "i32(42)".
func (v Value) String() string {
	switch v.typ {
	case TypeI32:
		return fmt.Sprintf("i32(%d)", v.I32())
	case TypeI64:
		return fmt.Sprintf("i64(%d)", v.I64())
	case TypeF32:
		return fmt.Sprintf("f32(%g)", v.F32())
	case TypeF64:
		return fmt.Sprintf("f64(%g)", v.F64())
	case TypeNone:
		return "none"
	default:
		return fmt.Sprintf("unknown(0x%x)", byte(v.typ))
	}
}

// TypeName returns the textual name of a type tag ("i32", "none", ...).
func TypeName(t Type) string {
	if t == TypeNone {
		return "none"
	}
	return api.ValueTypeName(t)
}
