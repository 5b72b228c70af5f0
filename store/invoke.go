package store

import (
	"github.com/wasmkit/interp/errors"
	"github.com/wasmkit/interp/values"
)

// Invoke calls an exported host function by module and export name. The
// argument list is checked against the registered signature before the
// callable runs, so an ABI mismatch between a call site and a registered
// function surfaces as a typed error instead of undefined behavior.
//
// The state value is handed to the callable unchanged; it must be the
// same concrete type the host module was built for.
func (s *Store) Invoke(mod ModuleID, name string, state any, args ...values.Value) (values.Value, error) {
	inst, ok := s.Module(mod)
	if !ok {
		return values.None, errors.NotFound(errors.PhaseCall, "module identifier out of range")
	}

	ext, ok := inst.Export(name)
	if !ok {
		return values.None, errors.New(errors.PhaseCall, errors.KindNotFound).
			Export(name).
			Detail("no such export").
			Build()
	}

	fid, ok := ext.Func()
	if !ok {
		return values.None, errors.New(errors.PhaseCall, errors.KindInvalidInput).
			Export(name).
			Detail("export is a %s, not a function", ext.Kind()).
			Build()
	}

	if int(fid) >= len(s.funcs) {
		return values.None, errors.NotFound(errors.PhaseCall, "function identifier out of range")
	}

	ft := s.funcTypes[s.funcs[fid].typ]
	if len(args) != len(ft.Params) {
		return values.None, errors.ArityMismatch(name, len(ft.Params), len(args))
	}
	for i, want := range ft.Params {
		if got := args[i].Type(); got != want {
			return values.None, errors.New(errors.PhaseCall, errors.KindTypeMismatch).
				Export(name).
				ValType(values.TypeName(want)).
				Detail("argument %d tagged %s", i, values.TypeName(got)).
				Build()
		}
	}

	return s.funcs[fid].fn.Call(state, args)
}
