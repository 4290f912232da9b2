// Package ast defines the interpreter's abstract syntax tree: the node
// set of spec.md §4.2, each reducing in a single step, plus the
// InterpretedFn closure record that Fn.Step builds (see SPEC_FULL.md §2
// on why the closure record is co-located with the AST here).
//
// Every node is immutable once built, carries an optional *Meta for
// diagnostics only, and exposes exactly one operation: Step. Nodes never
// recurse into each other directly — "what runs next" is always expressed
// by pushing a continuation frame onto the stack, which is what makes the
// core stack-safe by construction (spec.md §1, §9).
package ast

import (
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/value"
)

// Node is the common interface of every AST node. Step ignores
// incomingValue except where documented otherwise (spec.md §3): Const,
// Lookup, VarDeref, Fn always ignore it, since nothing ever resumes them
// with a value — they're entered directly via InterpretK.
type Node interface {
	// Step performs this node's one reduction, returning the next value
	// and the (possibly extended) continuation stack.
	Step(incomingValue value.Value, e *env.Environment, st *env.Stack) (value.Value, *env.Stack)

	// Meta returns this node's optional source-location metadata, or nil.
	Meta() *Meta
}

// base is embedded by every concrete node to provide Meta() without
// repeating the same three lines everywhere.
type base struct {
	meta *Meta
}

func (b base) Meta() *Meta { return b.meta }
