package ast

import (
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/sym"
	"github.com/tmclane/pixie/pkg/value"
)

// Let binds Names to the values of Bindings, one at a time and strictly
// in order — each binding's expression sees the previous bindings
// already in scope, never the parallel/simultaneous semantics of a
// single combined frame (spec.md §4.2, §8). Body then runs with every
// name bound.
type Let struct {
	base
	Names    []*sym.Symbol
	Bindings []Node
	Body     Node
}

// NewLet builds a Let node. Names and Bindings must be the same length
// and non-empty.
func NewLet(names []*sym.Symbol, bindings []Node, body Node, meta *Meta) *Let {
	return &Let{base: base{meta: meta}, Names: names, Bindings: bindings, Body: body}
}

func (n *Let) Step(_ value.Value, e *env.Environment, st *env.Stack) (value.Value, *env.Stack) {
	st = env.Push(st, &LetK{node: n, idx: 0, env: e})
	st = env.Push(st, &InterpretK{Node: n.Bindings[0], Env: e})
	return value.Nil, st
}

// LetK binds the value just produced, then either moves on to the next
// binding or, once all names are bound, enters Body.
type LetK struct {
	node *Let
	idx  int
	env  *env.Environment
}

func (k *LetK) Resume(incoming value.Value, st *env.Stack) (value.Value, *env.Stack) {
	newEnv := env.Extend(k.env, k.node.Names[k.idx], incoming)
	if k.idx+1 < len(k.node.Names) {
		st = env.Push(st, &LetK{node: k.node, idx: k.idx + 1, env: newEnv})
		st = env.Push(st, &InterpretK{Node: k.node.Bindings[k.idx+1], Env: newEnv})
	} else {
		st = env.Push(st, &InterpretK{Node: k.node.Body, Env: newEnv})
	}
	return value.Nil, st
}
