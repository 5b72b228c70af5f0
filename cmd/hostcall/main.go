package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wasmkit/interp/host"
	"github.com/wasmkit/interp/store"
	"github.com/wasmkit/interp/values"
	"github.com/wasmkit/interp/wasm"
)

// demoState is the host state the demo module's functions close over.
type demoState struct {
	start   time.Time
	counter int64
	lastLog int32
}

// buildDemoModule declares the sample host module: a few typed functions
// over demoState plus a global, a memory, and a table export.
func buildDemoModule() (*host.Module, error) {
	b := host.NewBuilder[demoState]()

	host.Func1(b, "add_one", func(s *demoState, x int32) (int32, error) {
		return x + 1, nil
	})
	host.Func2(b, "mul", func(s *demoState, x, y int32) (int32, error) {
		return x * y, nil
	})
	host.Func2(b, "div", func(s *demoState, x, y int32) (int32, error) {
		if y == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return x / y, nil
	})
	host.Func1(b, "counter_add", func(s *demoState, d int64) (int64, error) {
		s.counter += d
		return s.counter, nil
	})
	host.Func0(b, "uptime_ms", func(s *demoState) (int64, error) {
		return time.Since(s.start).Milliseconds(), nil
	})
	host.Func1(b, "log_i32", func(s *demoState, x int32) (host.None, error) {
		s.lastLog = x
		return host.None{}, nil
	})
	host.Func2(b, "hypot", func(s *demoState, x, y float64) (float64, error) {
		return math.Hypot(x, y), nil
	})

	b.WithGlobal("counter_seed",
		wasm.GlobalType{ValType: values.TypeI64, Mutable: true}, values.I64(0))
	b.WithMemory("scratch", wasm.MemoryType{Limits: wasm.Bounded(1, 4)})
	b.WithTable("callbacks", wasm.TableType{Elem: wasm.RefFunc, Limits: wasm.Unbounded(4)})

	return b.Build()
}

func main() {
	var (
		funcName    = flag.String("func", "", "Function to call")
		argList     = flag.String("args", "", "Comma-separated scalar arguments")
		list        = flag.Bool("list", false, "List exports and exit")
		verbose     = flag.Bool("v", false, "Log allocations")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		store.SetLogger(logger)
		host.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*funcName, *argList, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(funcName, argList string, listOnly bool) error {
	mod, err := buildDemoModule()
	if err != nil {
		return fmt.Errorf("build host module: %w", err)
	}

	s := store.New()
	id, err := mod.Register(s)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	inst, _ := s.Module(id)
	printExports(s, inst)

	if listOnly {
		return nil
	}
	if funcName == "" {
		fmt.Println("\nUse -func to call an export, or -i for interactive mode.")
		return nil
	}

	ext, ok := inst.Export(funcName)
	if !ok {
		return fmt.Errorf("no export %q", funcName)
	}
	fid, ok := ext.Func()
	if !ok {
		return fmt.Errorf("export %q is a %s, not a function", funcName, ext.Kind())
	}
	ft, _ := s.FuncType(fid)

	args, err := parseArgs(argList, ft.Params)
	if err != nil {
		return err
	}

	state := demoState{start: time.Now()}
	fmt.Printf("\nCalling %s%s...\n", funcName, ft)
	ret, err := s.Invoke(id, funcName, &state, args...)
	if err != nil {
		return fmt.Errorf("call %s: %w", funcName, err)
	}
	fmt.Printf("Result: %s\n", ret)
	return nil
}

// parseArgs converts comma-separated text into tagged values matching the
// signature's parameter types.
func parseArgs(argList string, params []values.Type) ([]values.Value, error) {
	var fields []string
	if argList != "" {
		fields = strings.Split(argList, ",")
	}
	if len(fields) != len(params) {
		return nil, fmt.Errorf("function takes %d arguments, got %d", len(params), len(fields))
	}

	args := make([]values.Value, len(fields))
	for i, f := range fields {
		v, err := parseScalar(strings.TrimSpace(f), params[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args[i] = v
	}
	return args, nil
}

func parseScalar(text string, typ values.Type) (values.Value, error) {
	switch typ {
	case values.TypeI32:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return values.None, err
		}
		return values.I32(int32(n)), nil
	case values.TypeI64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return values.None, err
		}
		return values.I64(n), nil
	case values.TypeF32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return values.None, err
		}
		return values.F32(float32(f)), nil
	case values.TypeF64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return values.None, err
		}
		return values.F64(f), nil
	default:
		return values.None, fmt.Errorf("unsupported parameter type %s", values.TypeName(typ))
	}
}
