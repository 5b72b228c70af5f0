package store

import (
	"fmt"
	"sort"
)

// ExternKind identifies the kind of item an ExternVal refers to.
type ExternKind byte

const (
	ExternFunc ExternKind = iota
	ExternGlobal
	ExternMemory
	ExternTable
)

func (k ExternKind) String() string {
	switch k {
	case ExternFunc:
		return "func"
	case ExternGlobal:
		return "global"
	case ExternMemory:
		return "memory"
	case ExternTable:
		return "table"
	default:
		return fmt.Sprintf("extern(%d)", byte(k))
	}
}

// ExternVal is a tagged reference to a store-resident item. The store owns
// the item; an ExternVal only names it.
type ExternVal struct {
	kind ExternKind
	id   uint32
}

func FuncVal(id FuncID) ExternVal     { return ExternVal{kind: ExternFunc, id: uint32(id)} }
func GlobalVal(id GlobalID) ExternVal { return ExternVal{kind: ExternGlobal, id: uint32(id)} }
func MemoryVal(id MemoryID) ExternVal { return ExternVal{kind: ExternMemory, id: uint32(id)} }
func TableVal(id TableID) ExternVal   { return ExternVal{kind: ExternTable, id: uint32(id)} }

// Kind returns the kind of item this value refers to.
func (e ExternVal) Kind() ExternKind { return e.kind }

// Func returns the function identifier, if this value refers to a function.
func (e ExternVal) Func() (FuncID, bool) {
	return FuncID(e.id), e.kind == ExternFunc
}

// Global returns the global identifier, if this value refers to a global.
func (e ExternVal) Global() (GlobalID, bool) {
	return GlobalID(e.id), e.kind == ExternGlobal
}

// Memory returns the memory identifier, if this value refers to a memory.
func (e ExternVal) Memory() (MemoryID, bool) {
	return MemoryID(e.id), e.kind == ExternMemory
}

// Table returns the table identifier, if this value refers to a table.
func (e ExternVal) Table() (TableID, bool) {
	return TableID(e.id), e.kind == ExternTable
}

func (e ExternVal) String() string {
	return fmt.Sprintf("%s[%d]", e.kind, e.id)
}

// ModuleInstance is a resolved set of named exports. Instances are
// immutable once constructed; the interpreter's import resolution reads
// them but never writes.
type ModuleInstance struct {
	exports map[string]ExternVal
}

// NewModuleInstance builds an instance from an export mapping. The map is
// copied; the caller keeps ownership of its argument.
func NewModuleInstance(exports map[string]ExternVal) *ModuleInstance {
	m := make(map[string]ExternVal, len(exports))
	for name, ext := range exports {
		m[name] = ext
	}
	return &ModuleInstance{exports: m}
}

// Export resolves an export by name.
func (mi *ModuleInstance) Export(name string) (ExternVal, bool) {
	ext, ok := mi.exports[name]
	return ext, ok
}

// ExportNames returns all export names in sorted order.
func (mi *ModuleInstance) ExportNames() []string {
	names := make([]string, 0, len(mi.exports))
	for name := range mi.exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
