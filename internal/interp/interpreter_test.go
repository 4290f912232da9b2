package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tmclane/pixie/internal/interp"
	"github.com/tmclane/pixie/internal/interp/builtins"
	"github.com/tmclane/pixie/pkg/ast"
	"github.com/tmclane/pixie/pkg/value"
)

func TestEvaluateEndToEndArithmetic(t *testing.T) {
	in := interp.New(&bytes.Buffer{})
	g := in.GlobalEnv()

	call := func(name string, args ...ast.Node) ast.Node {
		nodes := append([]ast.Node{ast.NewLookup(in.Interner.Intern(name), nil)}, args...)
		return ast.NewInvoke(nodes, nil)
	}
	num := func(n int64) ast.Node { return ast.NewConst(value.Int64(n), nil) }

	// (+ 1 (* 2 3))
	root := call("+", num(1), call("*", num(2), num(3)))

	got := interp.Evaluate(root, g).(*value.NumberValue)
	if got.Int != 7 {
		t.Errorf("(+ 1 (* 2 3)) = %d, want 7", got.Int)
	}
}

func TestEvaluateIsDeterministicAcrossRepeatedRuns(t *testing.T) {
	in := interp.New(&bytes.Buffer{})
	g := in.GlobalEnv()

	call := func(name string, args ...ast.Node) ast.Node {
		nodes := append([]ast.Node{ast.NewLookup(in.Interner.Intern(name), nil)}, args...)
		return ast.NewInvoke(nodes, nil)
	}
	num := func(n int64) ast.Node { return ast.NewConst(value.Int64(n), nil) }

	root := call("*", call("+", num(1), num(2)), num(10))

	first := interp.Evaluate(root, g).(*value.NumberValue)
	second := interp.Evaluate(root, g).(*value.NumberValue)
	if first.Int != second.Int {
		t.Errorf("evaluating the same root twice gave %d then %d", first.Int, second.Int)
	}
	if first.Int != 30 {
		t.Errorf("result = %d, want 30", first.Int)
	}
}

func TestPrintlnWritesToInjectedOutput(t *testing.T) {
	var buf bytes.Buffer
	in := interp.New(&buf)
	g := in.GlobalEnv()

	root := ast.NewInvoke([]ast.Node{
		ast.NewLookup(in.Interner.Intern("println"), nil),
		ast.NewConst(&value.StringValue{Val: "hello"}, nil),
	}, nil)

	interp.Evaluate(root, g)

	if buf.String() != "hello\n" {
		t.Errorf("println output = %q, want %q", buf.String(), "hello\n")
	}
}

func TestMaxStackDepthWarnsOnceOnDiagnostics(t *testing.T) {
	in := interp.New(&bytes.Buffer{})
	var diagnostics bytes.Buffer
	in.Diagnostics = &diagnostics
	in.MaxStackDepth = 5

	call := func(name string, args ...ast.Node) ast.Node {
		nodes := append([]ast.Node{ast.NewLookup(in.Interner.Intern(name), nil)}, args...)
		return ast.NewInvoke(nodes, nil)
	}
	num := func(n int64) ast.Node { return ast.NewConst(value.Int64(n), nil) }

	// (+ 1 (+ 1 (+ 1 (+ 1 (+ 1 (+ 1 0))))))) — deeply nested, non-tail
	// arithmetic, so the continuation stack actually grows with nesting
	// (unlike the self-tail-recursion case, which runs flat).
	root := num(0)
	for i := 0; i < 20; i++ {
		root = call("+", num(1), root)
	}

	got := in.Evaluate(root)
	if got.(*value.NumberValue).Int != 20 {
		t.Fatalf("result = %v, want 20", got)
	}
	if !strings.Contains(diagnostics.String(), "maxStackDepth") {
		t.Errorf("Diagnostics = %q, want a maxStackDepth warning", diagnostics.String())
	}
}

func TestMaxStackDepthZeroNeverWarns(t *testing.T) {
	in := interp.New(&bytes.Buffer{})
	var diagnostics bytes.Buffer
	in.Diagnostics = &diagnostics

	root := ast.NewConst(value.Int64(1), nil)
	in.Evaluate(root)

	if diagnostics.String() != "" {
		t.Errorf("Diagnostics = %q, want empty with MaxStackDepth disabled", diagnostics.String())
	}
}

func TestGlobalEnvExposesOnlyRegisteredCategories(t *testing.T) {
	registry := builtins.NewFilteredRegistry(&bytes.Buffer{}, func(c builtins.Category) bool {
		return c == builtins.CategoryArithmetic
	})
	in := interp.NewWithRegistry(&bytes.Buffer{}, registry)
	g := in.GlobalEnv()

	root := ast.NewInvoke([]ast.Node{
		ast.NewLookup(in.Interner.Intern("zero?"), nil),
		ast.NewConst(value.Int64(0), nil),
	}, nil)

	got := interp.Evaluate(root, g)
	exc, ok := got.(*value.ExceptionValue)
	if !ok {
		t.Fatalf("calling an excluded builtin = %v, want a NotCallable exception", got)
	}
	if exc.Kind != value.NotCallable {
		t.Errorf("exception kind = %v, want NotCallable", exc.Kind)
	}
}
