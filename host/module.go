package host

import (
	"go.uber.org/zap"

	"github.com/wasmkit/interp/errors"
	"github.com/wasmkit/interp/store"
	"github.com/wasmkit/interp/values"
	"github.com/wasmkit/interp/wasm"
)

// Allocator is the slice of the store this layer consumes: one allocation
// operation per export kind plus module instance registration.
// *store.Store satisfies it.
type Allocator interface {
	AllocFuncType(wasm.FunctionType) store.TypeID
	AllocHostFunc(store.TypeID, store.HostFunc) store.FuncID
	AllocGlobal(wasm.GlobalType, values.Value) store.GlobalID
	AllocMemory(wasm.MemoryType) (store.MemoryID, error)
	AllocTable(wasm.TableType) (store.TableID, error)
	AddModule(*store.ModuleInstance) store.ModuleID
}

// Module is a frozen set of host export declarations, produced by
// Builder.Build. It is immutable and registers into a store exactly once.
type Module struct {
	items      []exportItem
	registered bool
}

// ExportNames returns the declared export names in declaration order.
func (m *Module) ExportNames() []string {
	names := make([]string, len(m.items))
	for i, it := range m.items {
		names[i] = it.name
	}
	return names
}

// Register allocates every declared item into the store and registers the
// resulting export mapping as a module instance, returning the store's
// module identifier.
//
// Items are allocated in declaration order. The first memory or table
// allocation failure aborts registration; items allocated before the
// failure stay allocated. There is no rollback: the store is the
// allocation authority, and a failed instantiation attempt is expected to
// be discarded wholesale by the layer above.
func (m *Module) Register(a Allocator) (store.ModuleID, error) {
	if m.registered {
		return 0, errors.Sealed(errors.PhaseRegister, "host module already registered")
	}
	m.registered = true

	exports := make(map[string]store.ExternVal, len(m.items))

	for _, it := range m.items {
		switch it.kind {
		case itemFunc:
			typeID := a.AllocFuncType(it.funcType)
			funcID := a.AllocHostFunc(typeID, it.fn)
			exports[it.name] = store.FuncVal(funcID)

		case itemGlobal:
			globalID := a.AllocGlobal(it.globalType, it.initVal)
			exports[it.name] = store.GlobalVal(globalID)

		case itemMemory:
			memoryID, err := a.AllocMemory(it.memType)
			if err != nil {
				return 0, errors.New(errors.PhaseRegister, errors.KindAllocation).
					Export(it.name).
					Cause(err).
					Detail("memory allocation failed").
					Build()
			}
			exports[it.name] = store.MemoryVal(memoryID)

		case itemTable:
			tableID, err := a.AllocTable(it.tableType)
			if err != nil {
				return 0, errors.New(errors.PhaseRegister, errors.KindAllocation).
					Export(it.name).
					Cause(err).
					Detail("table allocation failed").
					Build()
			}
			exports[it.name] = store.TableVal(tableID)
		}
	}

	moduleID := a.AddModule(store.NewModuleInstance(exports))
	Logger().Debug("registered host module",
		zap.Uint32("module_id", uint32(moduleID)),
		zap.Int("exports", len(exports)))
	return moduleID, nil
}
