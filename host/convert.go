package host

import (
	"github.com/wasmkit/interp/errors"
	"github.com/wasmkit/interp/values"
)

// Param is the set of native scalar types usable as host function
// parameters. Adding a scalar means extending this union and the two
// switches below; nothing else in the layer changes.
type Param interface {
	int32 | uint32 | int64 | uint64 | float32 | float64
}

// None is the unit return type for host functions that produce no value.
type None struct{}

// Ret is the set of native types usable as a host function return.
type Ret interface {
	Param | None
}

// paramType maps a native parameter type to its semantic value type.
func paramType[P Param]() values.Type {
	var zero P
	switch any(zero).(type) {
	case int32, uint32:
		return values.TypeI32
	case int64, uint64:
		return values.TypeI64
	case float32:
		return values.TypeF32
	default:
		return values.TypeF64
	}
}

// fromArg converts a tagged runtime value into a native parameter. A tag
// that does not match the expected semantic value type is a registered
// signature / call site mismatch, reported as a typed error.
func fromArg[P Param](arg values.Value) (P, error) {
	var zero P
	if want := paramType[P](); arg.Type() != want {
		return zero, errors.TypeMismatch(errors.PhaseCall,
			values.TypeName(want), values.TypeName(arg.Type()))
	}
	switch any(zero).(type) {
	case int32:
		return any(arg.I32()).(P), nil
	case uint32:
		return any(arg.U32()).(P), nil
	case int64:
		return any(arg.I64()).(P), nil
	case uint64:
		return any(arg.U64()).(P), nil
	case float32:
		return any(arg.F32()).(P), nil
	default:
		return any(arg.F64()).(P), nil
	}
}

// retType maps a native return type to the semantic value type it
// occupies in a signature, values.TypeNone for the unit return.
func retType[R Ret]() values.Type {
	var zero R
	switch any(zero).(type) {
	case None:
		return values.TypeNone
	case int32, uint32:
		return values.TypeI32
	case int64, uint64:
		return values.TypeI64
	case float32:
		return values.TypeF32
	default:
		return values.TypeF64
	}
}

// asReturnVal converts a native return value into a tagged runtime value,
// values.None for the unit return.
func asReturnVal[R Ret](r R) values.Value {
	switch v := any(r).(type) {
	case None:
		return values.None
	case int32:
		return values.I32(v)
	case uint32:
		return values.U32(v)
	case int64:
		return values.I64(v)
	case uint64:
		return values.U64(v)
	case float32:
		return values.F32(v)
	case float64:
		return values.F64(v)
	default:
		return values.None
	}
}
