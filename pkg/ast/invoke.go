package ast

import (
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/value"
)

// Invoke applies Args[0] (the callable) to Args[1:] (the positional
// arguments), in a non-tail position: the frame that entered Invoke is
// still live on the stack beneath InvokeK (spec.md §4.2).
type Invoke struct {
	base
	Args []Node // Args[0] is the callable expression
}

// NewInvoke builds an Invoke node. args must have at least one element.
func NewInvoke(args []Node, meta *Meta) *Invoke {
	return &Invoke{base: base{meta: meta}, Args: args}
}

func (n *Invoke) Step(_ value.Value, e *env.Environment, st *env.Stack) (value.Value, *env.Stack) {
	st = env.Push(st, &InvokeK{Node: n})
	st = env.Push(st, &ResolveAllK{Args: n.Args, Env: e})
	st = env.Push(st, &InterpretK{Node: n.Args[0], Env: e})
	return value.Nil, st
}
