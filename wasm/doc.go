// Package wasm defines the type descriptors used at the host boundary:
// function signatures, global types, and memory/table descriptors with
// their limits. Descriptors are plain immutable values; validity checks
// that can fail (limit bounds) are explicit methods invoked by the store
// at allocation time.
package wasm
