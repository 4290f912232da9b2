package ast

import (
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/value"
)

// VarDeref fetches a global var's current root value. The var cell
// itself is filled in and owned by the compiler/runtime; this node only
// ever reads it (spec.md §4.2, §9 — "Var roots").
type VarDeref struct {
	base
	V *value.Var
}

// NewVarDeref builds a VarDeref node over v.
func NewVarDeref(v *value.Var, meta *Meta) *VarDeref {
	return &VarDeref{base: base{meta: meta}, V: v}
}

func (d *VarDeref) Step(_ value.Value, _ *env.Environment, st *env.Stack) (value.Value, *env.Stack) {
	return d.V.Get(), st
}
