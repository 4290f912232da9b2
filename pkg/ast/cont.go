package ast

import (
	interperrors "github.com/tmclane/pixie/internal/interp/errors"
	"github.com/tmclane/pixie/pkg/env"
	"github.com/tmclane/pixie/pkg/value"
)

// InterpretK is the workhorse continuation: resuming it just means
// running one more node's Step. Every node is entered through an
// InterpretK — pushing `InterpretK{Node: n, Env: e}` is how every other
// node says "evaluate n next" without recursing into n.Step directly
// (spec.md §4.1, §4.3).
type InterpretK struct {
	Node Node
	Env  *env.Environment
}

func (k *InterpretK) Resume(_ value.Value, st *env.Stack) (value.Value, *env.Stack) {
	return k.Node.Step(value.Nil, k.Env, st)
}

// ResolveAllK evaluates the elements of args left to right, accumulating
// results in acc, and once all are in hand produces a value.ArrayValue
// consumed by the InvokeK/TailCallK pushed below it (spec.md §4.3). No
// element's evaluation begins until the previous one's value has been
// reified into acc — the left-to-right, no-interleaving rule that also
// governs Invoke/TailCall's argument order (spec.md §8).
type ResolveAllK struct {
	Args []Node
	Env  *env.Environment
	Acc  []value.Value
}

func (k *ResolveAllK) Resume(incoming value.Value, st *env.Stack) (value.Value, *env.Stack) {
	acc := append(append([]value.Value{}, k.Acc...), incoming)
	if len(acc) < len(k.Args) {
		next := &ResolveAllK{Args: k.Args, Env: k.Env, Acc: acc}
		st = env.Push(st, next)
		st = env.Push(st, &InterpretK{Node: k.Args[len(acc)], Env: k.Env})
		return value.Nil, st
	}
	return value.NewArray(acc), st
}

// invokeCommon is shared by InvokeK and TailCallK: both expect the
// incoming value to be a value.ArrayValue of length >= 1, element 0 the
// callable and the rest the positional arguments (spec.md §4.3, §4.5).
func invokeCommon(incoming value.Value, st *env.Stack, caller Node) (value.Value, *env.Stack) {
	arr, ok := incoming.(*value.ArrayValue)
	if !ok || arr.Len() < 1 {
		return interperrors.NotCallable(incoming, locationOf(caller)), st
	}
	fn := arr.Items[0]
	args := arr.Items[1:]
	return applyFunction(fn, args, st, caller)
}

// InvokeK applies the resolved callable to the resolved arguments. It is
// pushed by Invoke below a ResolveAllK and an InterpretK over args[0]
// (spec.md §4.2).
type InvokeK struct {
	Node Node // the Invoke AST node, kept for exception location only
}

func (k *InvokeK) Resume(incoming value.Value, st *env.Stack) (value.Value, *env.Stack) {
	return invokeCommon(incoming, st, k.Node)
}

// TailCallK is identical in effect to InvokeK; it exists purely as a
// type-level marker that this application site is a tail position
// (spec.md §4.2, §9 — the source's should_enter_jit hint, dropped here
// since it is RPython/JIT-specific).
type TailCallK struct {
	Node Node
}

func (k *TailCallK) Resume(incoming value.Value, st *env.Stack) (value.Value, *env.Stack) {
	return invokeCommon(incoming, st, k.Node)
}
