package ast

import (
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/value"
)

// Const is a precomputed literal. Step ignores env and the incoming
// value and simply returns the literal (spec.md §4.2).
type Const struct {
	base
	Val value.Value
}

// NewConst builds a Const node wrapping val.
func NewConst(val value.Value, meta *Meta) *Const {
	return &Const{base: base{meta: meta}, Val: val}
}

func (c *Const) Step(_ value.Value, _ *env.Environment, st *env.Stack) (value.Value, *env.Stack) {
	return c.Val, st
}
