package ast

import (
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/sym"
	"github.com/tmclane/pixie/pkg/value"
)

// Lookup resolves an identifier against the current environment by
// identity comparison, returning value.Nil when the name is unbound
// (spec.md §4.2, §4.4, §9 — the compiler is expected to have rejected
// the program before a Lookup ever misses; this is a last-resort
// fallback, not a contract callers should rely on).
type Lookup struct {
	base
	Name *sym.Symbol
}

// NewLookup builds a Lookup node for name.
func NewLookup(name *sym.Symbol, meta *Meta) *Lookup {
	return &Lookup{base: base{meta: meta}, Name: name}
}

func (l *Lookup) Step(_ value.Value, e *env.Environment, st *env.Stack) (value.Value, *env.Stack) {
	return env.Lookup(e, l.Name), st
}
