// Package store implements the interpreter's allocation authority.
//
// The store owns every function, global, memory, table, and module
// instance, and issues opaque typed identifiers for them. Host modules
// register their exports through the allocation operations; call dispatch
// resolves exports back to shared callables and checks argument tags
// against the registered signature before invoking.
//
// The store performs no internal synchronization: the interpreter drives
// it from one goroutine at a time.
package store
