package ast

import (
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/value"
)

// TailCall is identical in shape to Invoke; the distinct node and
// continuation types exist purely so that a driver or tooling layer can
// tell a tail application apart from a non-tail one (spec.md §4.2, §9).
// It carries no behavioral difference at this layer: both paths reuse
// the caller's stack frame exactly as written, which is what makes deep
// recursion stack-safe regardless of which node produced the call.
type TailCall struct {
	base
	Args []Node
}

// NewTailCall builds a TailCall node. args must have at least one element.
func NewTailCall(args []Node, meta *Meta) *TailCall {
	return &TailCall{base: base{meta: meta}, Args: args}
}

func (n *TailCall) Step(_ value.Value, e *env.Environment, st *env.Stack) (value.Value, *env.Stack) {
	st = env.Push(st, &TailCallK{Node: n})
	st = env.Push(st, &ResolveAllK{Args: n.Args, Env: e})
	st = env.Push(st, &InterpretK{Node: n.Args[0], Env: e})
	return value.Nil, st
}
