// Package interp is the host-binding layer of a WebAssembly interpreter:
// the machinery by which native Go code exposes functions, globals,
// memories, and tables to modules executing inside the interpreter.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	interp/          Root package documentation
//	├── values/      Semantic value types and tagged runtime values
//	├── wasm/        Type descriptors: signatures, globals, memory/table limits
//	├── errors/      Structured error types (phase + kind)
//	├── store/       Allocation authority: typed IDs, module instances, dispatch
//	├── host/        Host module builder and typed callable wrappers
//	└── cmd/         Demo binaries
//
// # Quick Start
//
// Declare host exports on a builder, freeze them, and register the
// result into a store:
//
//	type Counter struct{ N int64 }
//
//	b := host.NewBuilder[Counter]()
//	host.Func1(b, "add_one", func(c *Counter, x int32) (int32, error) {
//		return x + 1, nil
//	})
//	mod, err := b.Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	st := store.New()
//	id, err := mod.Register(st)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var c Counter
//	ret, err := st.Invoke(id, "add_one", &c, values.I32(41))
//	fmt.Println(ret) // i32(42)
//
// # Type Safety
//
// The wasm-visible signature of every host function is derived from its
// Go closure type when it is declared, and argument tags are checked
// against that signature at every call. A call that violates the
// registered ABI (wrong arity, wrong tag, wrong host state type) fails
// with a typed error; it never corrupts state or aborts the process.
//
// # Thread Safety
//
// Builders are single-use and single-goroutine. Registered callables are
// immutable and shared; the interpreter serializes calls against a given
// host state, and the store performs no locking of its own.
package interp
