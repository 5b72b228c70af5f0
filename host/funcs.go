package host

import (
	"fmt"

	"github.com/wasmkit/interp/errors"
	"github.com/wasmkit/interp/values"
	"github.com/wasmkit/interp/wasm"
)

// hostState recovers the concrete host state behind the type-erased
// reference. A wrong concrete type is a host/module pairing error and
// yields a typed failure rather than a panic.
func hostState[St any](state any) (*St, error) {
	st, ok := state.(*St)
	if !ok {
		return nil, errors.StateMismatch(
			fmt.Sprintf("%T", (*St)(nil)), fmt.Sprintf("%T", state))
	}
	return st, nil
}

// The fnN family wraps native closures of each supported parameter count
// behind the uniform store.HostFunc calling convention. Argument
// conversion and signature derivation are generated per arity from the
// wrapper's type parameters, so a wrapper's signature can never drift
// from its conversion rules.

type fn0[St any, R Ret] struct {
	fn func(*St) (R, error)
}

func (f fn0[St, R]) Call(state any, args []values.Value) (values.Value, error) {
	st, err := hostState[St](state)
	if err != nil {
		return values.None, err
	}
	if len(args) != 0 {
		return values.None, errors.ArityMismatch("", 0, len(args))
	}
	r, err := f.fn(st)
	if err != nil {
		return values.None, err
	}
	return asReturnVal(r), nil
}

func (fn0[St, R]) signature() wasm.FunctionType {
	return wasm.NewFunctionType(nil, retType[R]())
}

type fn1[St any, P1 Param, R Ret] struct {
	fn func(*St, P1) (R, error)
}

func (f fn1[St, P1, R]) Call(state any, args []values.Value) (values.Value, error) {
	st, err := hostState[St](state)
	if err != nil {
		return values.None, err
	}
	if len(args) != 1 {
		return values.None, errors.ArityMismatch("", 1, len(args))
	}
	p1, err := fromArg[P1](args[0])
	if err != nil {
		return values.None, err
	}
	r, err := f.fn(st, p1)
	if err != nil {
		return values.None, err
	}
	return asReturnVal(r), nil
}

func (fn1[St, P1, R]) signature() wasm.FunctionType {
	return wasm.NewFunctionType([]values.Type{paramType[P1]()}, retType[R]())
}

type fn2[St any, P1, P2 Param, R Ret] struct {
	fn func(*St, P1, P2) (R, error)
}

func (f fn2[St, P1, P2, R]) Call(state any, args []values.Value) (values.Value, error) {
	st, err := hostState[St](state)
	if err != nil {
		return values.None, err
	}
	if len(args) != 2 {
		return values.None, errors.ArityMismatch("", 2, len(args))
	}
	p1, err := fromArg[P1](args[0])
	if err != nil {
		return values.None, err
	}
	p2, err := fromArg[P2](args[1])
	if err != nil {
		return values.None, err
	}
	r, err := f.fn(st, p1, p2)
	if err != nil {
		return values.None, err
	}
	return asReturnVal(r), nil
}

func (fn2[St, P1, P2, R]) signature() wasm.FunctionType {
	return wasm.NewFunctionType(
		[]values.Type{paramType[P1](), paramType[P2]()}, retType[R]())
}

type fn3[St any, P1, P2, P3 Param, R Ret] struct {
	fn func(*St, P1, P2, P3) (R, error)
}

func (f fn3[St, P1, P2, P3, R]) Call(state any, args []values.Value) (values.Value, error) {
	st, err := hostState[St](state)
	if err != nil {
		return values.None, err
	}
	if len(args) != 3 {
		return values.None, errors.ArityMismatch("", 3, len(args))
	}
	p1, err := fromArg[P1](args[0])
	if err != nil {
		return values.None, err
	}
	p2, err := fromArg[P2](args[1])
	if err != nil {
		return values.None, err
	}
	p3, err := fromArg[P3](args[2])
	if err != nil {
		return values.None, err
	}
	r, err := f.fn(st, p1, p2, p3)
	if err != nil {
		return values.None, err
	}
	return asReturnVal(r), nil
}

func (fn3[St, P1, P2, P3, R]) signature() wasm.FunctionType {
	return wasm.NewFunctionType(
		[]values.Type{paramType[P1](), paramType[P2](), paramType[P3]()}, retType[R]())
}

type fn4[St any, P1, P2, P3, P4 Param, R Ret] struct {
	fn func(*St, P1, P2, P3, P4) (R, error)
}

func (f fn4[St, P1, P2, P3, P4, R]) Call(state any, args []values.Value) (values.Value, error) {
	st, err := hostState[St](state)
	if err != nil {
		return values.None, err
	}
	if len(args) != 4 {
		return values.None, errors.ArityMismatch("", 4, len(args))
	}
	p1, err := fromArg[P1](args[0])
	if err != nil {
		return values.None, err
	}
	p2, err := fromArg[P2](args[1])
	if err != nil {
		return values.None, err
	}
	p3, err := fromArg[P3](args[2])
	if err != nil {
		return values.None, err
	}
	p4, err := fromArg[P4](args[3])
	if err != nil {
		return values.None, err
	}
	r, err := f.fn(st, p1, p2, p3, p4)
	if err != nil {
		return values.None, err
	}
	return asReturnVal(r), nil
}

func (fn4[St, P1, P2, P3, P4, R]) signature() wasm.FunctionType {
	return wasm.NewFunctionType(
		[]values.Type{paramType[P1](), paramType[P2](), paramType[P3](), paramType[P4]()},
		retType[R]())
}
