package store

import (
	stderrors "errors"
	"testing"

	"github.com/wasmkit/interp/errors"
	"github.com/wasmkit/interp/values"
	"github.com/wasmkit/interp/wasm"
)

// addOneFunc is a hand-rolled callable matching (i32) -> i32; the host
// package provides the typed wrappers that normally produce these.
type addOneFunc struct{}

func (addOneFunc) Call(state any, args []values.Value) (values.Value, error) {
	return values.I32(args[0].I32() + 1), nil
}

func buildInvokeFixture(t *testing.T) (*Store, ModuleID) {
	t.Helper()
	s := New()
	typ := s.AllocFuncType(wasm.NewFunctionType([]values.Type{values.TypeI32}, values.TypeI32))
	fid := s.AllocHostFunc(typ, addOneFunc{})
	gid := s.AllocGlobal(wasm.GlobalType{ValType: values.TypeI32}, values.I32(0))
	mod := s.AddModule(NewModuleInstance(map[string]ExternVal{
		"add_one": FuncVal(fid),
		"counter": GlobalVal(gid),
	}))
	return s, mod
}

func TestInvoke(t *testing.T) {
	s, mod := buildInvokeFixture(t)

	ret, err := s.Invoke(mod, "add_one", nil, values.I32(41))
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if ret.Type() != values.TypeI32 || ret.I32() != 42 {
		t.Errorf("Invoke = %v, want i32(42)", ret)
	}
}

func TestInvoke_MissingExport(t *testing.T) {
	s, mod := buildInvokeFixture(t)

	_, err := s.Invoke(mod, "missing", nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindNotFound}) {
		t.Errorf("missing export: %v", err)
	}
}

func TestInvoke_MissingModule(t *testing.T) {
	s, _ := buildInvokeFixture(t)

	_, err := s.Invoke(ModuleID(99), "add_one", nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindNotFound}) {
		t.Errorf("missing module: %v", err)
	}
}

func TestInvoke_NonFunctionExport(t *testing.T) {
	s, mod := buildInvokeFixture(t)

	_, err := s.Invoke(mod, "counter", nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindInvalidInput}) {
		t.Errorf("non-function export: %v", err)
	}
}

func TestInvoke_ArityChecked(t *testing.T) {
	s, mod := buildInvokeFixture(t)

	_, err := s.Invoke(mod, "add_one", nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindArityMismatch}) {
		t.Errorf("no args: %v", err)
	}

	_, err = s.Invoke(mod, "add_one", nil, values.I32(1), values.I32(2))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindArityMismatch}) {
		t.Errorf("extra args: %v", err)
	}
}

func TestInvoke_TagChecked(t *testing.T) {
	s, mod := buildInvokeFixture(t)

	_, err := s.Invoke(mod, "add_one", nil, values.I64(41))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindTypeMismatch}) {
		t.Errorf("wrong tag: %v", err)
	}
}
