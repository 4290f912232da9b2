package env

import "github.com/tmclane/pixie/pkg/value"

// Frame is anything the driver loop can resume: given the value produced
// by whatever ran before and the remaining stack, it produces the next
// value and the next stack (spec.md §3, §4.3). Continuation frame types
// (InterpretK, IfK, LetK, DoK, InvokeK, TailCallK, ResolveAllK) live in
// pkg/ast alongside the node set they resume; Frame is declared here,
// structurally, so pkg/env never needs to import pkg/ast back.
type Frame interface {
	// Resume consumes the incoming value and the stack below this frame
	// (this frame has already been popped) and returns the next value and
	// stack to hand the driver loop.
	Resume(incoming value.Value, rest *Stack) (value.Value, *Stack)
}

// Stack is an immutable cons-list of continuation Frames. Push is O(1)
// and non-destructive; multiple live stacks may share tails, which is
// what makes capturing a first-class continuation an O(1) snapshot at a
// higher layer (spec.md §3, §5) even though this core only ever drives
// one stack at a time.
type Stack struct {
	top   Frame
	rest  *Stack
	depth int
}

// Push returns a new stack with f on top of s. s may be nil (the empty
// stack).
func Push(s *Stack, f Frame) *Stack {
	d := 1
	if s != nil {
		d = s.depth + 1
	}
	return &Stack{top: f, rest: s, depth: d}
}

// Empty reports whether s has no frames left.
func Empty(s *Stack) bool {
	return s == nil
}

// Depth returns the number of frames on s, O(1) since each Push stamps
// its depth at construction. Exposed for internal/config's soft
// maxStackDepth diagnostic; never consulted by Push/Pop/Empty
// themselves.
func Depth(s *Stack) int {
	if s == nil {
		return 0
	}
	return s.depth
}

// Pop returns the top frame and the remaining stack. Calling Pop on an
// empty stack is a programmer error in the driver loop, not a condition
// callers need to handle — Empty must be checked first.
func Pop(s *Stack) (Frame, *Stack) {
	return s.top, s.rest
}
