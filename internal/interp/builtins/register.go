package builtins

import (
	"fmt"
	"io"

	"github.com/tmclane/pixie/pkg/value"
)

// NewDefaultRegistry builds the minimal native function set spec.md §4.6
// requires: arithmetic, comparison, truthiness predicates, and printing.
// output is where print/println write — the teacher's equivalent is
// internal/interp/builtins/io.go's Print/PrintLn, which also write
// against an injected io.Writer rather than os.Stdout directly.
func NewDefaultRegistry(output io.Writer) *Registry {
	return NewFilteredRegistry(output, func(Category) bool { return true })
}

// NewFilteredRegistry builds a registry containing only the categories
// for which include returns true — the wiring internal/config's
// nativeGroups setting drives (SPEC_FULL.md §4).
func NewFilteredRegistry(output io.Writer, include func(category Category) bool) *Registry {
	r := NewRegistry()
	if include(CategoryArithmetic) {
		registerArithmetic(r)
	}
	if include(CategoryComparison) {
		registerComparison(r)
	}
	if include(CategoryPredicate) {
		registerPredicates(r)
	}
	if include(CategoryIO) {
		registerIO(r, output)
	}
	return r
}

func registerArithmetic(r *Registry) {
	r.Register("+", arithFold(0, func(a, b float64) float64 { return a + b }, func(a, b int64) int64 { return a + b }), -1, CategoryArithmetic, "sums its arguments, left to right")
	r.Register("*", arithFold(1, func(a, b float64) float64 { return a * b }, func(a, b int64) int64 { return a * b }), -1, CategoryArithmetic, "multiplies its arguments, left to right")
	r.Register("-", subtract, -1, CategoryArithmetic, "subtracts subsequent arguments from the first, or negates a single argument")
	r.Register("/", divide, -1, CategoryArithmetic, "divides the first argument by each subsequent one, left to right")
	r.Register("rem", remainder, 2, CategoryArithmetic, "integer remainder of two numbers")
}

func registerComparison(r *Registry) {
	r.Register("=", numericChain(func(a, b float64) bool { return a == b }), -1, CategoryComparison, "reports whether its arguments are equal, chained pairwise")
	r.Register("<", numericChain(func(a, b float64) bool { return a < b }), -1, CategoryComparison, "reports whether its arguments are strictly increasing")
	r.Register(">", numericChain(func(a, b float64) bool { return a > b }), -1, CategoryComparison, "reports whether its arguments are strictly decreasing")
	r.Register("<=", numericChain(func(a, b float64) bool { return a <= b }), -1, CategoryComparison, "reports whether its arguments are non-decreasing")
	r.Register(">=", numericChain(func(a, b float64) bool { return a >= b }), -1, CategoryComparison, "reports whether its arguments are non-increasing")
}

func registerPredicates(r *Registry) {
	r.Register("zero?", unaryPredicate(func(args []value.Value) (bool, error) {
		n, err := asNumber(args[0])
		if err != nil {
			return false, err
		}
		return n.AsFloat() == 0, nil
	}), 1, CategoryPredicate, "reports whether its argument is numerically zero")

	r.Register("nil?", unaryPredicate(func(args []value.Value) (bool, error) {
		_, ok := args[0].(*value.NilValue)
		return ok, nil
	}), 1, CategoryPredicate, "reports whether its argument is Nil")

	r.Register("empty?", unaryPredicate(isEmpty), 1, CategoryPredicate, "reports whether a string or array has no elements")
}

func registerIO(r *Registry, output io.Writer) {
	r.Register("print", func(args []value.Value) (value.Value, error) {
		printArgs(output, args, "")
		return value.Nil, nil
	}, -1, CategoryIO, "writes its arguments, space-separated, with no trailing newline")

	r.Register("println", func(args []value.Value) (value.Value, error) {
		printArgs(output, args, "\n")
		return value.Nil, nil
	}, -1, CategoryIO, "writes its arguments, space-separated, followed by a newline")
}

func printArgs(output io.Writer, args []value.Value, suffix string) {
	for i, a := range args {
		if i > 0 {
			fmt.Fprint(output, " ")
		}
		fmt.Fprint(output, a.String())
	}
	fmt.Fprint(output, suffix)
}

func unaryPredicate(f func(args []value.Value) (bool, error)) value.NativeFunc {
	return func(args []value.Value) (value.Value, error) {
		ok, err := f(args)
		if err != nil {
			return nil, err
		}
		return value.Bool(ok), nil
	}
}

func isEmpty(args []value.Value) (bool, error) {
	switch v := args[0].(type) {
	case *value.StringValue:
		return v.Val == "", nil
	case *value.ArrayValue:
		return v.Len() == 0, nil
	default:
		return false, fmt.Errorf("empty?: expected string or array, got %s", v.Type())
	}
}

func asNumber(v value.Value) (*value.NumberValue, error) {
	n, ok := v.(*value.NumberValue)
	if !ok {
		return nil, fmt.Errorf("expected a number, got %s", v.Type())
	}
	return n, nil
}

func arithFold(identity int64, foldFloat func(a, b float64) float64, foldInt func(a, b int64) int64) value.NativeFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return value.Int64(identity), nil
		}
		acc, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		isFloat := acc.IsFloat
		floatAcc := acc.AsFloat()
		intAcc := acc.Int

		for _, next := range args[1:] {
			n, err := asNumber(next)
			if err != nil {
				return nil, err
			}
			if !isFloat && n.IsFloat {
				floatAcc = float64(intAcc)
				isFloat = true
			}
			if isFloat {
				floatAcc = foldFloat(floatAcc, n.AsFloat())
			} else {
				intAcc = foldInt(intAcc, n.Int)
			}
		}
		if isFloat {
			return value.Float64(floatAcc), nil
		}
		return value.Int64(intAcc), nil
	}
}

func subtract(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("-: expected at least 1 argument, got 0")
	}
	first, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if first.IsFloat {
			return value.Float64(-first.AsFloat()), nil
		}
		return value.Int64(-first.Int), nil
	}
	isFloat := first.IsFloat
	floatAcc := first.AsFloat()
	intAcc := first.Int
	for _, next := range args[1:] {
		n, err := asNumber(next)
		if err != nil {
			return nil, err
		}
		if !isFloat && n.IsFloat {
			floatAcc = float64(intAcc)
			isFloat = true
		}
		if isFloat {
			floatAcc -= n.AsFloat()
		} else {
			intAcc -= n.Int
		}
	}
	if isFloat {
		return value.Float64(floatAcc), nil
	}
	return value.Int64(intAcc), nil
}

func divide(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("/: expected at least 1 argument, got 0")
	}
	first, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	acc := first.AsFloat()
	if len(args) == 1 {
		if acc == 0 {
			return nil, fmt.Errorf("/: division by zero")
		}
		return value.Float64(1 / acc), nil
	}
	for _, next := range args[1:] {
		n, err := asNumber(next)
		if err != nil {
			return nil, err
		}
		d := n.AsFloat()
		if d == 0 {
			return nil, fmt.Errorf("/: division by zero")
		}
		acc /= d
	}
	return value.Float64(acc), nil
}

func remainder(args []value.Value) (value.Value, error) {
	a, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	if b.Int == 0 {
		return nil, fmt.Errorf("rem: division by zero")
	}
	return value.Int64(a.Int % b.Int), nil
}

func numericChain(cmp func(a, b float64) bool) value.NativeFunc {
	return func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return value.True, nil
		}
		prev, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		for _, next := range args[1:] {
			n, err := asNumber(next)
			if err != nil {
				return nil, err
			}
			if !cmp(prev.AsFloat(), n.AsFloat()) {
				return value.False, nil
			}
			prev = n
		}
		return value.True, nil
	}
}
