// Package env implements the interpreter's environment chain: an
// immutable, singly-linked list of (name, value) frames, looked up by
// identity comparison of interned name tokens (spec.md §3, §4.4).
package env

import (
	"github.com/tmclane/pixie/pkg/sym"
	"github.com/tmclane/pixie/pkg/value"
)

// Environment is either nil (the empty environment) or a single frame
// binding one name, pointing at the rest of the chain. Frames are never
// mutated after construction; extending an environment always allocates a
// new frame on top of the existing tail, so multiple closures may safely
// share the same tail (spec.md §3).
type Environment struct {
	name  *sym.Symbol
	value value.Value
	next  *Environment
}

// Extend returns a new environment with name bound to val, enclosing e.
// e may be nil (extending the empty environment).
func Extend(e *Environment, name *sym.Symbol, val value.Value) *Environment {
	return &Environment{name: name, value: val, next: e}
}

// Lookup walks the chain head-to-tail comparing names by pointer identity
// and returns the first match. A miss returns value.Nil rather than an
// error: spec.md §3 makes this a deliberate last-resort fallback, since a
// well-formed program (per the compiler's guarantees, spec.md §6) never
// reaches a Lookup whose name failed to resolve lexically.
func Lookup(e *Environment, name *sym.Symbol) value.Value {
	for c := e; c != nil; c = c.next {
		if c.name == name {
			return c.value
		}
	}
	return value.Nil
}

// Name returns the name bound by this frame, or nil for the empty
// environment. Exposed mainly for debugging/diagnostic dumps.
func (e *Environment) Name() *sym.Symbol {
	if e == nil {
		return nil
	}
	return e.name
}

// Next returns the enclosing environment (the tail of the chain).
func (e *Environment) Next() *Environment {
	if e == nil {
		return nil
	}
	return e.next
}

// Depth returns the number of frames between e and the empty environment.
// O(depth); exposed for diagnostics and tests, never consulted by Lookup.
func (e *Environment) Depth() int {
	n := 0
	for c := e; c != nil; c = c.next {
		n++
	}
	return n
}
