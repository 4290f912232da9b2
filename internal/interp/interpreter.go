// Package interp assembles the interpreter core (pkg/ast, pkg/env,
// pkg/value) into a single entry point, and is where the driver loop of
// spec.md §4.1 lives: pop the top continuation frame, resume it, repeat
// until the stack is empty. Nothing in this package recurses into user
// AST — the stack in pkg/env is what makes arbitrarily deep evaluation
// (including self-tail-recursion) run in O(1) Go stack frames.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/tmclane/pixie/internal/interp/builtins"
	"github.com/tmclane/pixie/pkg/ast"
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/sym"
	"github.com/tmclane/pixie/pkg/value"
)

// Interpreter holds everything Evaluate needs across calls: the native
// function registry and the output sink those natives write to
// (spec.md §4.6). It carries no per-evaluation state — the continuation
// stack and environment chain are entirely local to a single Evaluate
// call, mirroring the teacher's runner.New(output) -> *Interpreter shape
// while dropping the class/type-system machinery that shape used to
// wire (internal/interp/runner/runner.go).
type Interpreter struct {
	Output   io.Writer
	Registry *builtins.Registry
	Interner *sym.Interner

	// MaxStackDepth is internal/config.Config's soft guard, carried
	// through runner.NewWithOptions. Zero disables it. Exceeding it never
	// stops or fails evaluation (spec.md's core has no depth limit) — it
	// only emits one line to Diagnostics the first time the continuation
	// stack grows past it.
	MaxStackDepth int

	// Diagnostics receives the MaxStackDepth warning above. Defaults to
	// os.Stderr so it never mixes into a program's own print/println
	// output on Output.
	Diagnostics io.Writer
}

// New builds an Interpreter with the default native function set,
// writing print/println output to output.
func New(output io.Writer) *Interpreter {
	return &Interpreter{
		Output:      output,
		Registry:    builtins.NewDefaultRegistry(output),
		Interner:    sym.NewInterner(),
		Diagnostics: os.Stderr,
	}
}

// NewWithRegistry builds an Interpreter around a caller-supplied
// registry, e.g. one built via builtins.NewFilteredRegistry from a
// loaded internal/config.Config (SPEC_FULL.md §4). This is the
// injection seam internal/interp/runner.NewWithOptions uses.
func NewWithRegistry(output io.Writer, registry *builtins.Registry) *Interpreter {
	return &Interpreter{
		Output:      output,
		Registry:    registry,
		Interner:    sym.NewInterner(),
		Diagnostics: os.Stderr,
	}
}

// GlobalEnv builds the environment frame chain exposing every registered
// native function, the environment a top-level Evaluate call starts
// from.
func (in *Interpreter) GlobalEnv() *env.Environment {
	var e *env.Environment
	for _, info := range in.Registry.All() {
		e = env.Extend(e, in.Interner.Intern(info.Name), info.Value)
	}
	return e
}

// Evaluate drives root to completion against the interpreter's global
// environment and returns the final value (spec.md §4.1). A result of
// *value.ExceptionValue means the program raised or triggered an
// exception that unwound all the way to the empty stack, since this
// core has no catch facility (spec.md §7).
func (in *Interpreter) Evaluate(root ast.Node) value.Value {
	diagnostics := in.Diagnostics
	if diagnostics == nil {
		diagnostics = os.Stderr
	}
	return evaluate(root, in.GlobalEnv(), in.MaxStackDepth, diagnostics)
}

// Evaluate is the free-standing driver loop: push an InterpretK for
// root over the empty stack, then pop and resume frames until none
// remain. This is the one place in the whole interpreter that has a Go
// `for` loop instead of Go recursion — every other construct (If, Let,
// Do, Invoke...) only ever pushes frames for this loop to run later.
// It carries no stack-depth guard of its own; that's a diagnostic-only
// concern layered on by the Interpreter method above.
func Evaluate(root ast.Node, globalEnv *env.Environment) value.Value {
	return evaluate(root, globalEnv, 0, io.Discard)
}

func evaluate(root ast.Node, globalEnv *env.Environment, maxStackDepth int, diagnostics io.Writer) value.Value {
	current := value.Nil
	stack := env.Push(nil, &ast.InterpretK{Node: root, Env: globalEnv})
	warnedStackDepth := false

	for !env.Empty(stack) {
		if _, isException := current.(*value.ExceptionValue); isException {
			break
		}
		if maxStackDepth > 0 && !warnedStackDepth && env.Depth(stack) > maxStackDepth {
			fmt.Fprintf(diagnostics, "pixie: continuation stack depth exceeded maxStackDepth (%d)\n", maxStackDepth)
			warnedStackDepth = true
		}
		var frame env.Frame
		frame, stack = env.Pop(stack)
		current, stack = frame.Resume(current, stack)
	}
	return current
}
