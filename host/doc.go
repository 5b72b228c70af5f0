// Package host bridges statically-typed Go callables into the
// interpreter's dynamically tagged calling convention.
//
// A Builder accumulates named functions, globals, memories, and tables
// for one host state type, then freezes into an immutable Module:
//
//	b := host.NewBuilder[Counter]()
//	host.Func1(b, "add_one", func(c *Counter, x int32) (int32, error) {
//		return x + 1, nil
//	})
//	b.WithGlobal("counter", wasm.GlobalType{ValType: values.TypeI32, Mutable: true}, values.I32(0))
//	mod, err := b.Build()
//
// Registering the module allocates every item into the store and yields a
// module identifier usable for import resolution:
//
//	id, err := mod.Register(st)
//	ret, err := st.Invoke(id, "add_one", &counter, values.I32(41))
//
// Each FuncN wrapper derives the wasm-visible signature from the
// closure's native parameter and return types, so the registered
// signature and the argument conversion rules cannot drift apart. Calls
// with a mismatched argument tag or a host state of the wrong concrete
// type fail with typed errors; closure errors propagate unchanged.
package host
