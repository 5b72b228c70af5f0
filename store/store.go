package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wasmkit/interp/errors"
	"github.com/wasmkit/interp/values"
	"github.com/wasmkit/interp/wasm"
)

// Identifiers are opaque handles to store-resident items. They are only
// meaningful against the store that issued them.
type (
	TypeID   uint32
	FuncID   uint32
	GlobalID uint32
	MemoryID uint32
	TableID  uint32
	ModuleID uint32
)

// HostFunc is the type-erased calling convention for host functions. The
// state argument is the host's own state value, passed through the
// interpreter unchanged; args carry the tagged arguments in signature
// order. A values.None result means the function returns nothing.
//
// Implementations hold no mutable state of their own and are shared
// across call sites; the caller serializes calls against a given state.
type HostFunc interface {
	Call(state any, args []values.Value) (values.Value, error)
}

type funcInst struct {
	fn  HostFunc
	typ TypeID
}

type globalInst struct {
	val values.Value
	typ wasm.GlobalType
}

type memoryInst struct {
	data []byte
	typ  wasm.MemoryType
}

type tableInst struct {
	elems []*FuncID
	typ   wasm.TableType
}

// Store is the interpreter's allocation authority: it owns every
// function, global, memory, table, and module instance, and issues the
// opaque identifiers used to refer to them.
//
// A Store performs no internal locking. The embedding application drives
// it from a single goroutine, or synchronizes externally.
type Store struct {
	typeIndex map[string]TypeID
	funcTypes []wasm.FunctionType
	funcs     []funcInst
	globals   []globalInst
	memories  []memoryInst
	tables    []tableInst
	modules   []*ModuleInstance
}

// New creates an empty store.
func New() *Store {
	return &Store{
		typeIndex: make(map[string]TypeID),
	}
}

// AllocFuncType registers a function signature and returns its type
// identifier. Structurally equal signatures intern to the same identifier.
func (s *Store) AllocFuncType(ft wasm.FunctionType) TypeID {
	key := ft.Key()
	if id, ok := s.typeIndex[key]; ok {
		return id
	}
	id := TypeID(len(s.funcTypes))
	s.funcTypes = append(s.funcTypes, ft)
	s.typeIndex[key] = id
	Logger().Debug("allocated func type",
		zap.Uint32("type_id", uint32(id)),
		zap.Stringer("type", ft))
	return id
}

// AllocHostFunc registers a host-backed function under an existing type
// identifier and returns its function identifier. The callable is shared,
// not copied; it must not be mutated after allocation.
func (s *Store) AllocHostFunc(typ TypeID, fn HostFunc) FuncID {
	id := FuncID(len(s.funcs))
	s.funcs = append(s.funcs, funcInst{typ: typ, fn: fn})
	Logger().Debug("allocated host func",
		zap.Uint32("func_id", uint32(id)),
		zap.Uint32("type_id", uint32(typ)))
	return id
}

// AllocGlobal registers a global with its initial value and returns its
// identifier. The initial value's tag is trusted to match the descriptor;
// the builder layer documents that contract.
func (s *Store) AllocGlobal(typ wasm.GlobalType, init values.Value) GlobalID {
	id := GlobalID(len(s.globals))
	s.globals = append(s.globals, globalInst{typ: typ, val: init})
	Logger().Debug("allocated global",
		zap.Uint32("global_id", uint32(id)),
		zap.Stringer("type", typ),
		zap.Stringer("init", init))
	return id
}

// memoryByteSize converts a page count to bytes. The product is computed
// in 64 bits first: the full page ceiling is 2^32 bytes, which overflows
// int on 32-bit platforms.
func memoryByteSize(pages uint32) (int, error) {
	size := int64(pages) * wasm.PageSize
	if size > int64(^uint(0)>>1) {
		return 0, errors.InvalidLimits(
			fmt.Sprintf("minimum %d pages exceeds addressable memory", pages))
	}
	return int(size), nil
}

// AllocMemory validates a memory descriptor, allocates its minimum number
// of zeroed pages, and returns the memory identifier.
func (s *Store) AllocMemory(typ wasm.MemoryType) (MemoryID, error) {
	if err := typ.Validate(); err != nil {
		return 0, err
	}
	size, err := memoryByteSize(typ.Limits.Min)
	if err != nil {
		return 0, err
	}
	id := MemoryID(len(s.memories))
	s.memories = append(s.memories, memoryInst{
		typ:  typ,
		data: make([]byte, size),
	})
	Logger().Debug("allocated memory",
		zap.Uint32("memory_id", uint32(id)),
		zap.Stringer("type", typ))
	return id, nil
}

// AllocTable validates a table descriptor, allocates its minimum number
// of null-reference slots, and returns the table identifier.
func (s *Store) AllocTable(typ wasm.TableType) (TableID, error) {
	if err := typ.Validate(); err != nil {
		return 0, err
	}
	id := TableID(len(s.tables))
	s.tables = append(s.tables, tableInst{
		typ:   typ,
		elems: make([]*FuncID, typ.Limits.Min),
	})
	Logger().Debug("allocated table",
		zap.Uint32("table_id", uint32(id)),
		zap.Stringer("type", typ))
	return id, nil
}

// AddModule registers a module instance and returns its identifier.
func (s *Store) AddModule(mi *ModuleInstance) ModuleID {
	id := ModuleID(len(s.modules))
	s.modules = append(s.modules, mi)
	Logger().Debug("registered module instance",
		zap.Uint32("module_id", uint32(id)),
		zap.Strings("exports", mi.ExportNames()))
	return id
}

// Type looks up a function signature by type identifier.
func (s *Store) Type(id TypeID) (wasm.FunctionType, bool) {
	if int(id) >= len(s.funcTypes) {
		return wasm.FunctionType{}, false
	}
	return s.funcTypes[id], true
}

// FuncType looks up the signature registered for a function.
func (s *Store) FuncType(id FuncID) (wasm.FunctionType, bool) {
	if int(id) >= len(s.funcs) {
		return wasm.FunctionType{}, false
	}
	return s.funcTypes[s.funcs[id].typ], true
}

// Func returns the shared callable registered for a function.
func (s *Store) Func(id FuncID) (HostFunc, bool) {
	if int(id) >= len(s.funcs) {
		return nil, false
	}
	return s.funcs[id].fn, true
}

// Module looks up a module instance by identifier.
func (s *Store) Module(id ModuleID) (*ModuleInstance, bool) {
	if int(id) >= len(s.modules) {
		return nil, false
	}
	return s.modules[id], true
}

// GlobalType looks up a global's descriptor.
func (s *Store) GlobalType(id GlobalID) (wasm.GlobalType, bool) {
	if int(id) >= len(s.globals) {
		return wasm.GlobalType{}, false
	}
	return s.globals[id].typ, true
}

// GlobalValue reads a global's current value.
func (s *Store) GlobalValue(id GlobalID) (values.Value, bool) {
	if int(id) >= len(s.globals) {
		return values.None, false
	}
	return s.globals[id].val, true
}

// SetGlobal writes a mutable global. Writing an immutable global or a
// value with the wrong tag is an error.
func (s *Store) SetGlobal(id GlobalID, v values.Value) error {
	if int(id) >= len(s.globals) {
		return errors.NotFound(errors.PhaseCall, "global identifier out of range")
	}
	g := &s.globals[id]
	if !g.typ.Mutable {
		return errors.Immutable("global is declared const")
	}
	if v.Type() != g.typ.ValType {
		return errors.TypeMismatch(errors.PhaseCall,
			values.TypeName(g.typ.ValType), values.TypeName(v.Type()))
	}
	g.val = v
	return nil
}

// MemorySize returns a memory's current size in pages.
func (s *Store) MemorySize(id MemoryID) (uint32, bool) {
	if int(id) >= len(s.memories) {
		return 0, false
	}
	return uint32(len(s.memories[id].data) / wasm.PageSize), true
}

// TableSize returns a table's current number of entries.
func (s *Store) TableSize(id TableID) (uint32, bool) {
	if int(id) >= len(s.tables) {
		return 0, false
	}
	return uint32(len(s.tables[id].elems)), true
}

// FuncCount reports how many functions the store has allocated.
func (s *Store) FuncCount() int { return len(s.funcs) }

// GlobalCount reports how many globals the store has allocated.
func (s *Store) GlobalCount() int { return len(s.globals) }

// MemoryCount reports how many memories the store has allocated.
func (s *Store) MemoryCount() int { return len(s.memories) }

// TableCount reports how many tables the store has allocated.
func (s *Store) TableCount() int { return len(s.tables) }
