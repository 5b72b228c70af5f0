package host

import (
	"github.com/wasmkit/interp/errors"
	"github.com/wasmkit/interp/store"
	"github.com/wasmkit/interp/values"
	"github.com/wasmkit/interp/wasm"
)

type itemKind byte

const (
	itemFunc itemKind = iota
	itemGlobal
	itemMemory
	itemTable
)

// exportItem is one pending export declaration. Items are immutable once
// appended; only the fields for their kind are populated.
type exportItem struct {
	fn         store.HostFunc
	name       string
	funcType   wasm.FunctionType
	globalType wasm.GlobalType
	initVal    values.Value
	memType    wasm.MemoryType
	tableType  wasm.TableType
	kind       itemKind
}

// Builder accumulates export declarations for a host module whose
// functions close over host state of type St. Declaration calls never
// fail; problems (empty or duplicate export names, use after Build) are
// recorded and surfaced by Build. A builder is single-use and not safe
// for concurrent use.
type Builder[St any] struct {
	names map[string]struct{}
	items []exportItem
	errs  []error
	built bool
}

// NewBuilder creates an empty builder for host state type St.
func NewBuilder[St any]() *Builder[St] {
	return &Builder[St]{
		names: make(map[string]struct{}),
	}
}

func (b *Builder[St]) add(it exportItem) {
	if b.built {
		b.errs = append(b.errs, errors.Sealed(errors.PhaseBuild,
			"builder already consumed by Build"))
		return
	}
	if it.name == "" {
		b.errs = append(b.errs, errors.InvalidInput(errors.PhaseBuild,
			"export name cannot be empty"))
		return
	}
	if _, dup := b.names[it.name]; dup {
		b.errs = append(b.errs, errors.DuplicateExport(it.name))
		return
	}
	b.names[it.name] = struct{}{}
	b.items = append(b.items, it)
}

// WithGlobal declares a global export with its initial value. The initial
// value's tag is expected to match the descriptor's value type; the store
// trusts it at allocation.
func (b *Builder[St]) WithGlobal(name string, typ wasm.GlobalType, init values.Value) *Builder[St] {
	b.add(exportItem{kind: itemGlobal, name: name, globalType: typ, initVal: init})
	return b
}

// WithMemory declares a memory export. Descriptor validity is checked by
// the store at allocation, not here.
func (b *Builder[St]) WithMemory(name string, typ wasm.MemoryType) *Builder[St] {
	b.add(exportItem{kind: itemMemory, name: name, memType: typ})
	return b
}

// WithTable declares a table export. Descriptor validity is checked by
// the store at allocation, not here.
func (b *Builder[St]) WithTable(name string, typ wasm.TableType) *Builder[St] {
	b.add(exportItem{kind: itemTable, name: name, tableType: typ})
	return b
}

// Build seals the builder and returns the immutable host module. Any
// declaration problem recorded since NewBuilder fails the build; the
// builder cannot be used again afterward.
func (b *Builder[St]) Build() (*Module, error) {
	if b.built {
		return nil, errors.Sealed(errors.PhaseBuild, "builder already consumed by Build")
	}
	b.built = true
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	items := b.items
	b.items = nil
	return &Module{items: items}, nil
}

// Function registration is package-level because Go methods cannot
// introduce type parameters. Each FuncN derives the wasm-visible
// signature from the closure's native types at declaration time and
// wraps the closure behind the store's type-erased calling convention.

// Func0 declares an export backed by a parameterless closure.
func Func0[St any, R Ret](b *Builder[St], name string, fn func(*St) (R, error)) {
	w := fn0[St, R]{fn: fn}
	b.add(exportItem{kind: itemFunc, name: name, funcType: w.signature(), fn: w})
}

// Func1 declares an export backed by a one-parameter closure.
func Func1[St any, P1 Param, R Ret](b *Builder[St], name string, fn func(*St, P1) (R, error)) {
	w := fn1[St, P1, R]{fn: fn}
	b.add(exportItem{kind: itemFunc, name: name, funcType: w.signature(), fn: w})
}

// Func2 declares an export backed by a two-parameter closure.
func Func2[St any, P1, P2 Param, R Ret](b *Builder[St], name string, fn func(*St, P1, P2) (R, error)) {
	w := fn2[St, P1, P2, R]{fn: fn}
	b.add(exportItem{kind: itemFunc, name: name, funcType: w.signature(), fn: w})
}

// Func3 declares an export backed by a three-parameter closure.
func Func3[St any, P1, P2, P3 Param, R Ret](b *Builder[St], name string, fn func(*St, P1, P2, P3) (R, error)) {
	w := fn3[St, P1, P2, P3, R]{fn: fn}
	b.add(exportItem{kind: itemFunc, name: name, funcType: w.signature(), fn: w})
}

// Func4 declares an export backed by a four-parameter closure.
func Func4[St any, P1, P2, P3, P4 Param, R Ret](b *Builder[St], name string, fn func(*St, P1, P2, P3, P4) (R, error)) {
	w := fn4[St, P1, P2, P3, P4, R]{fn: fn}
	b.add(exportItem{kind: itemFunc, name: name, funcType: w.signature(), fn: w})
}
