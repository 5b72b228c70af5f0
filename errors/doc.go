// Package errors provides structured error types for the interpreter's
// host-binding layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes rich context: export name,
// Go/wasm type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCall, errors.KindTypeMismatch).
//		Export("add_one").
//		ValType("i32").
//		Detail("argument 0 tagged i64").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseCall, "i32", "i64")
//	err := errors.DuplicateExport("counter")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
