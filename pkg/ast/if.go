package ast

import (
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/value"
)

// If evaluates Test, then resumes with Then or Else depending on
// truthiness — every value is truthy except Nil and False (spec.md §4.2,
// §8).
type If struct {
	base
	Test, Then, Else Node
}

// NewIf builds an If node.
func NewIf(test, then, els Node, meta *Meta) *If {
	return &If{base: base{meta: meta}, Test: test, Then: then, Else: els}
}

func (n *If) Step(_ value.Value, e *env.Environment, st *env.Stack) (value.Value, *env.Stack) {
	st = env.Push(st, &IfK{node: n, env: e})
	st = env.Push(st, &InterpretK{Node: n.Test, Env: e})
	return value.Nil, st
}

// IfK resumes once Test has produced a value, pushing an InterpretK over
// whichever branch truthiness selects.
type IfK struct {
	node *If
	env  *env.Environment
}

func (k *IfK) Resume(incoming value.Value, st *env.Stack) (value.Value, *env.Stack) {
	branch := k.node.Else
	if value.Truthy(incoming) {
		branch = k.node.Then
	}
	return value.Nil, env.Push(st, &InterpretK{Node: branch, Env: k.env})
}
