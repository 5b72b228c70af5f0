package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the host-binding lifecycle the error occurred
type Phase string

const (
	PhaseBuild    Phase = "build"    // host module construction
	PhaseRegister Phase = "register" // module registration into the store
	PhaseAlloc    Phase = "alloc"    // store allocation
	PhaseCall     Phase = "call"     // host function dispatch
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch    Kind = "type_mismatch"
	KindStateMismatch   Kind = "state_mismatch"
	KindArityMismatch   Kind = "arity_mismatch"
	KindDuplicateExport Kind = "duplicate_export"
	KindInvalidLimits   Kind = "invalid_limits"
	KindAllocation      Kind = "allocation"
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindSealed          Kind = "sealed"
	KindImmutable       Kind = "immutable"
)

// Error is the structured error type used throughout the interpreter's
// host-binding layer.
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Export  string
	GoType  string
	ValType string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Export != "" {
		b.WriteString(" at ")
		b.WriteString(e.Export)
	}

	if e.GoType != "" || e.ValType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.ValType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", value type ")
			b.WriteString(e.ValType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("value type ")
			b.WriteString(e.ValType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.ValType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Export sets the export name the error refers to
func (b *Builder) Export(name string) *Builder {
	b.err.Export = name
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// ValType sets the wasm value type name
func (b *Builder) ValType(t string) *Builder {
	b.err.ValType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a value type mismatch error at the call boundary
func TypeMismatch(phase Phase, want, got string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		ValType: want,
		Detail:  fmt.Sprintf("got %s", got),
	}
}

// StateMismatch reports a host-state reference of the wrong concrete type
func StateMismatch(want, got string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindStateMismatch,
		GoType: want,
		Detail: fmt.Sprintf("host state has type %s", got),
	}
}

// ArityMismatch reports a call with the wrong number of arguments
func ArityMismatch(export string, want, got int) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindArityMismatch,
		Export: export,
		Detail: fmt.Sprintf("function takes %d arguments, got %d", want, got),
		Value:  got,
	}
}

// DuplicateExport reports two items declared under one export name
func DuplicateExport(name string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindDuplicateExport,
		Export: name,
		Detail: "export name already registered",
	}
}

// InvalidLimits reports an out-of-range memory or table descriptor
func InvalidLimits(detail string) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindInvalidLimits,
		Detail: detail,
	}
}

// NotFound reports a missing export or identifier
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Sealed reports use of a builder or module after it was consumed
func Sealed(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSealed,
		Detail: detail,
	}
}

// Immutable reports a write to a non-mutable global
func Immutable(detail string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindImmutable,
		Detail: detail,
	}
}
