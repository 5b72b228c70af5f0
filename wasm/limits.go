package wasm

import (
	"fmt"

	"github.com/wasmkit/interp/errors"
)

const (
	// PageSize is the WebAssembly linear memory page size in bytes.
	PageSize = 65536

	// MaxMemoryPages is the spec ceiling for 32-bit linear memories.
	MaxMemoryPages uint32 = 65536

	// MaxTableEntries caps table sizes allocated by this interpreter.
	MaxTableEntries uint32 = 1 << 24
)

// Limits bound the size of a memory or table. Min is the initial size;
// a nil Max means unbounded up to the implementation ceiling.
type Limits struct {
	Max *uint32
	Min uint32
}

// Validate checks the limits against an implementation ceiling.
func (l Limits) Validate(ceiling uint32) error {
	if l.Min > ceiling {
		return errors.InvalidLimits(fmt.Sprintf("minimum %d exceeds ceiling %d", l.Min, ceiling))
	}
	if l.Max != nil {
		if *l.Max > ceiling {
			return errors.InvalidLimits(fmt.Sprintf("maximum %d exceeds ceiling %d", *l.Max, ceiling))
		}
		if l.Min > *l.Max {
			return errors.InvalidLimits(fmt.Sprintf("minimum %d exceeds maximum %d", l.Min, *l.Max))
		}
	}
	return nil
}

func (l Limits) String() string {
	if l.Max == nil {
		return fmt.Sprintf("{min: %d}", l.Min)
	}
	return fmt.Sprintf("{min: %d, max: %d}", l.Min, *l.Max)
}

// Bounded is a convenience constructor for limits with both bounds set.
func Bounded(min, max uint32) Limits {
	return Limits{Min: min, Max: &max}
}

// Unbounded is a convenience constructor for limits with no maximum.
func Unbounded(min uint32) Limits {
	return Limits{Min: min}
}

// MemoryType describes a linear memory: its limits in 64KiB pages.
type MemoryType struct {
	Limits Limits
}

// Validate checks the page limits against the 32-bit memory ceiling.
func (mt MemoryType) Validate() error {
	return mt.Limits.Validate(MaxMemoryPages)
}

func (mt MemoryType) String() string {
	return "memory " + mt.Limits.String()
}

// RefType is a table element type.
type RefType byte

const (
	RefFunc   RefType = 0x70
	RefExtern RefType = 0x6F
)

func (rt RefType) String() string {
	switch rt {
	case RefFunc:
		return "funcref"
	case RefExtern:
		return "externref"
	default:
		return fmt.Sprintf("ref(0x%x)", byte(rt))
	}
}

// TableType describes a table: its element type and entry limits.
type TableType struct {
	Elem   RefType
	Limits Limits
}

// Validate checks the entry limits against the table ceiling.
func (tt TableType) Validate() error {
	return tt.Limits.Validate(MaxTableEntries)
}

func (tt TableType) String() string {
	return "table " + tt.Elem.String() + " " + tt.Limits.String()
}
