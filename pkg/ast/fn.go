package ast

import (
	interperrors "github.com/tmclane/pixie/internal/interp/errors"
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/sym"
	"github.com/tmclane/pixie/pkg/value"
)

// Fn builds a closure over exactly the subset of the defining
// environment reachable through ClosedOverNames, in the order those
// names were written (spec.md §4.2). Restricting capture to named free
// variables — rather than capturing the whole defining environment — is
// what keeps closure chains shallow (spec.md §4.4, §9).
type Fn struct {
	base
	Name            *sym.Symbol // nil for an anonymous function
	ArgNames        []*sym.Symbol
	Body            Node
	ClosedOverNames []*sym.Symbol
}

// NewFn builds an Fn node.
func NewFn(name *sym.Symbol, argNames []*sym.Symbol, body Node, closedOver []*sym.Symbol, meta *Meta) *Fn {
	return &Fn{base: base{meta: meta}, Name: name, ArgNames: argNames, Body: body, ClosedOverNames: closedOver}
}

func (f *Fn) Step(_ value.Value, e *env.Environment, st *env.Stack) (value.Value, *env.Stack) {
	var prefix *env.Environment
	for _, n := range f.ClosedOverNames {
		prefix = env.Extend(prefix, n, env.Lookup(e, n))
	}
	return &InterpretedFn{
		name:       f.Name,
		argNames:   f.ArgNames,
		closureEnv: prefix,
		body:       f.Body,
	}, st
}

// InterpretedFn is the closure record produced by Fn.Step (spec.md §3,
// §4.5): a name, its parameter names, the environment captured at
// definition time, and the body to interpret on application.
//
// Per spec.md §9's design note, the self-reference binding (f.Name ->
// f) is NOT linked into closureEnv here at build time — doing so would
// create a reference cycle between the closure value and the frame that
// owns it. Instead it is spliced in lazily, once, at application time
// (see applyFunction), exactly where the source's InterpretedFn.invoke_k
// does it.
type InterpretedFn struct {
	name       *sym.Symbol
	argNames   []*sym.Symbol
	closureEnv *env.Environment
	body       Node
}

func (*InterpretedFn) Type() string   { return "FN" }
func (f *InterpretedFn) String() string {
	if f.name != nil {
		return "#<fn:" + f.name.String() + ">"
	}
	return "#<fn>"
}

// Arity returns the number of positional parameters this closure takes.
func (f *InterpretedFn) Arity() int { return len(f.argNames) }

// applyFunction implements the closure/application protocol of
// spec.md §4.5: build a new environment frame chain for an
// InterpretedFn and push an InterpretK over its body, or invoke a
// NativeFnValue synchronously, or produce a NotCallable exception.
func applyFunction(fn value.Value, args []value.Value, st *env.Stack, caller Node) (value.Value, *env.Stack) {
	switch f := fn.(type) {
	case *InterpretedFn:
		if len(args) != f.Arity() {
			return interperrors.ArityMismatch(f.Arity(), len(args), locationOf(caller)), st
		}
		frame := f.closureEnv
		if f.name != nil {
			frame = env.Extend(frame, f.name, f)
		}
		for i, argName := range f.argNames {
			frame = env.Extend(frame, argName, args[i])
		}
		return value.Nil, env.Push(st, &InterpretK{Node: f.body, Env: frame})

	case *value.NativeFnValue:
		if f.Arity >= 0 && len(args) != f.Arity {
			return interperrors.ArityMismatch(f.Arity, len(args), locationOf(caller)), st
		}
		result, err := f.Fn(args)
		if err != nil {
			return interperrors.NativeError(err, locationOf(caller)), st
		}
		return result, st

	default:
		return interperrors.NotCallable(fn, locationOf(caller)), st
	}
}

func locationOf(n Node) string {
	if n == nil {
		return (*Meta)(nil).ShortLocation()
	}
	return n.Meta().ShortLocation()
}
