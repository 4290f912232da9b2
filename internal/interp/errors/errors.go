// Package errors builds the Exception values propagated by the
// interpreter core (spec.md §7). Unlike a Go error type, these
// constructors produce a *value.ExceptionValue — an ordinary first-class
// Value that unwinds the continuation stack rather than a Go-level
// panic/return path. The constructor-pair shape (one plain, one
// formatted, per kind) follows the teacher's internal/interp/errors
// package (NewTypeError/NewTypeErrorf and friends); the four kinds
// themselves are spec.md §7's closed set, not the teacher's five
// categories.
package errors

import (
	"fmt"

	"github.com/tmclane/pixie/pkg/value"
)

// NotCallable reports that the head position of an application reduced
// to a non-callable value (spec.md §4.2 step 6, §7).
func NotCallable(what value.Value, location string) *value.ExceptionValue {
	return &value.ExceptionValue{
		Kind:     value.NotCallable,
		Message:  fmt.Sprintf("%s is not callable", renderValue(what)),
		Payload:  what,
		Location: location,
	}
}

// ArityMismatch reports that an application's argument count did not
// match the callable's declared arity (spec.md §4.2, §9).
func ArityMismatch(want, got int, location string) *value.ExceptionValue {
	return &value.ExceptionValue{
		Kind: value.ArityMismatch,
		Message: fmt.Sprintf("wrong number of arguments: expected %d %s, got %d",
			want, pluralArgument(want), got),
		Location: location,
	}
}

// NativeError wraps a failure returned by a native (Go-implemented)
// function (spec.md §4.6, §7).
func NativeError(cause error, location string) *value.ExceptionValue {
	return &value.ExceptionValue{
		Kind:     value.NativeError,
		Message:  cause.Error(),
		Location: location,
	}
}

// NativeErrorf is NativeError with a formatted message in place of an
// existing error value.
func NativeErrorf(location, format string, args ...interface{}) *value.ExceptionValue {
	return &value.ExceptionValue{
		Kind:     value.NativeError,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	}
}

// UserException wraps an arbitrary payload raised by user code itself
// (spec.md §7) — indistinguishable in propagation from the above, but
// carrying whatever value the program raised.
func UserException(payload value.Value, location string) *value.ExceptionValue {
	return &value.ExceptionValue{
		Kind:     value.UserException,
		Message:  renderValue(payload),
		Payload:  payload,
		Location: location,
	}
}

func pluralArgument(n int) string {
	if n == 1 {
		return "argument"
	}
	return "arguments"
}

func renderValue(v value.Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}
