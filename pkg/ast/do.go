package ast

import (
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/value"
)

// Do evaluates Bodies in order and yields the value of the last one
// (spec.md §4.2). Bodies must be non-empty; a Do with no bodies is a
// construction-time error, not something Step needs to guard against.
type Do struct {
	base
	Bodies []Node
}

// NewDo builds a Do node. bodies must have at least one element.
func NewDo(bodies []Node, meta *Meta) *Do {
	return &Do{base: base{meta: meta}, Bodies: bodies}
}

func (n *Do) Step(_ value.Value, e *env.Environment, st *env.Stack) (value.Value, *env.Stack) {
	return value.Nil, env.Push(st, &DoK{Bodies: n.Bodies, Env: e, Idx: 0})
}

// DoK steps through Bodies one at a time; each resume's incoming value is
// discarded except the last, whose value supersedes everything before it.
type DoK struct {
	Bodies []Node
	Env    *env.Environment
	Idx    int
}

func (k *DoK) Resume(_ value.Value, st *env.Stack) (value.Value, *env.Stack) {
	if k.Idx+1 < len(k.Bodies) {
		st = env.Push(st, &DoK{Bodies: k.Bodies, Env: k.Env, Idx: k.Idx + 1})
	}
	st = env.Push(st, &InterpretK{Node: k.Bodies[k.Idx], Env: k.Env})
	return value.Nil, st
}
