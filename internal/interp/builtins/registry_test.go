package builtins_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/tmclane/pixie/internal/interp/builtins"
	"github.com/tmclane/pixie/pkg/value"
)

func TestRegisterAndLookup(t *testing.T) {
	r := builtins.NewRegistry()
	r.Register("double", func(args []value.Value) (value.Value, error) {
		n := args[0].(*value.NumberValue)
		return value.Int64(n.Int * 2), nil
	}, 1, builtins.CategoryArithmetic, "doubles its argument")

	fn, ok := r.Lookup("double")
	if !ok {
		t.Fatalf("Lookup(%q) missed after Register", "double")
	}
	got, err := fn.Fn([]value.Value{value.Int64(21)})
	if err != nil {
		t.Fatalf("calling registered function: %v", err)
	}
	if got.(*value.NumberValue).Int != 42 {
		t.Errorf("double(21) = %v, want 42", got)
	}
}

func TestLookupMissReturnsFalse(t *testing.T) {
	r := builtins.NewRegistry()
	if _, ok := r.Lookup("nope"); ok {
		t.Errorf("Lookup of unregistered name returned ok=true")
	}
}

func TestAllIsNaturallySorted(t *testing.T) {
	r := builtins.NewRegistry()
	for _, name := range []string{"fn10", "fn2", "fn1"} {
		r.Register(name, func(args []value.Value) (value.Value, error) { return value.Nil, nil }, 0, builtins.CategoryIO, "")
	}

	names := r.Names()
	want := []string{"fn1", "fn2", "fn10"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q (natural sort, not lexicographic)", i, names[i], want[i])
		}
	}
}

func TestCountReflectsRegistrations(t *testing.T) {
	r := builtins.NewRegistry()
	if r.Count() != 0 {
		t.Fatalf("Count() on empty registry = %d, want 0", r.Count())
	}
	r.Register("a", func(args []value.Value) (value.Value, error) { return value.Nil, nil }, 0, builtins.CategoryIO, "")
	r.Register("b", func(args []value.Value) (value.Value, error) { return value.Nil, nil }, 0, builtins.CategoryIO, "")
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestArithmeticFoldsLeftToRightAndPromotesToFloat(t *testing.T) {
	r := builtins.NewDefaultRegistry(&bytes.Buffer{})
	plus, _ := r.Lookup("+")

	got, err := plus.Fn([]value.Value{value.Int64(1), value.Int64(2), value.Float64(0.5)})
	if err != nil {
		t.Fatalf("+(1 2 0.5): %v", err)
	}
	num := got.(*value.NumberValue)
	if !num.IsFloat || num.Float != 3.5 {
		t.Errorf("+(1 2 0.5) = %v, want float 3.5", got)
	}
}

func TestSubtractUnaryNegates(t *testing.T) {
	r := builtins.NewDefaultRegistry(&bytes.Buffer{})
	minus, _ := r.Lookup("-")

	got, err := minus.Fn([]value.Value{value.Int64(5)})
	if err != nil {
		t.Fatalf("-(5): %v", err)
	}
	if got.(*value.NumberValue).Int != -5 {
		t.Errorf("-(5) = %v, want -5", got)
	}
}

func TestDivideByZeroIsAnError(t *testing.T) {
	r := builtins.NewDefaultRegistry(&bytes.Buffer{})
	div, _ := r.Lookup("/")

	if _, err := div.Fn([]value.Value{value.Int64(1), value.Int64(0)}); err == nil {
		t.Errorf("/(1 0) returned no error, want division-by-zero error")
	}
}

func TestNumericChainComparisonRequiresStrictOrder(t *testing.T) {
	r := builtins.NewDefaultRegistry(&bytes.Buffer{})
	lt, _ := r.Lookup("<")

	got, err := lt.Fn([]value.Value{value.Int64(1), value.Int64(2), value.Int64(2)})
	if err != nil {
		t.Fatalf("<(1 2 2): %v", err)
	}
	if got != value.False {
		t.Errorf("<(1 2 2) = %v, want false (2 is not strictly less than 2)", got)
	}
}

func TestEmptyPredicateOnStringsAndArrays(t *testing.T) {
	r := builtins.NewDefaultRegistry(&bytes.Buffer{})
	empty, _ := r.Lookup("empty?")

	got, _ := empty.Fn([]value.Value{&value.StringValue{Val: ""}})
	if got != value.True {
		t.Errorf("empty?(\"\") = %v, want true", got)
	}

	got, _ = empty.Fn([]value.Value{value.NewArray([]value.Value{value.Int64(1)})})
	if got != value.False {
		t.Errorf("empty?([1]) = %v, want false", got)
	}
}

// TestDefaultRegistryListing snapshots the full `pixie functions` output
// shape (name, category, description, naturally sorted) the way
// internal/interp's teacher fixtures snapshot interpreter output.
func TestDefaultRegistryListing(t *testing.T) {
	r := builtins.NewDefaultRegistry(&bytes.Buffer{})

	var sb strings.Builder
	for _, info := range r.All() {
		fmt.Fprintf(&sb, "%-10s %-12s %s\n", info.Name, info.Category, info.Description)
	}

	snaps.MatchSnapshot(t, "default_registry_listing", sb.String())
}

func TestNewFilteredRegistryOmitsExcludedCategories(t *testing.T) {
	r := builtins.NewFilteredRegistry(&bytes.Buffer{}, func(c builtins.Category) bool {
		return c != builtins.CategoryIO
	})
	if _, ok := r.Lookup("print"); ok {
		t.Errorf("print was registered despite CategoryIO being excluded")
	}
	if _, ok := r.Lookup("+"); !ok {
		t.Errorf("+ was not registered despite CategoryArithmetic being included")
	}
}
