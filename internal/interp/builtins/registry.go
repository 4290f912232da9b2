// Package builtins holds the native (Go-implemented) function registry.
// This is deliberately not a port of a full standard library — that
// entire surface (string, date, JSON, FFI, RTTI helpers) sits outside
// this interpreter core's scope (spec.md §1). What survives is the
// registration *pattern*: a name-to-callable map, organized by
// category, with a natural-sorted listing for introspection (spec.md
// §4.6, §8).
package builtins

import (
	"sort"
	"sync"

	"github.com/maruel/natural"
	"github.com/tmclane/pixie/pkg/value"
)

// Category groups related native functions for the `pixie functions`
// listing.
type Category string

const (
	// CategoryArithmetic covers + - * / rem.
	CategoryArithmetic Category = "arithmetic"
	// CategoryComparison covers = < > <= >=.
	CategoryComparison Category = "comparison"
	// CategoryPredicate covers zero?, nil?, empty?.
	CategoryPredicate Category = "predicate"
	// CategoryIO covers print and println.
	CategoryIO Category = "io"
)

// FunctionInfo describes one registered native function.
type FunctionInfo struct {
	Name        string
	Category    Category
	Description string
	Value       *value.NativeFnValue
}

// Registry is a name-to-native-function table. Lookup is case-sensitive
// — this language has no case-insensitivity requirement (spec.md is
// silent, and nothing in original_source/ folds case either).
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]*FunctionInfo
	categories map[Category][]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		functions:  make(map[string]*FunctionInfo),
		categories: make(map[Category][]string),
	}
}

// Register adds a native function under name. Arity -1 marks a function
// that checks its own argument count (spec.md §4.5).
func (r *Registry) Register(name string, fn value.NativeFunc, arity int, category Category, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info := &FunctionInfo{
		Name:        name,
		Category:    category,
		Description: description,
		Value:       &value.NativeFnValue{Name: name, Fn: fn, Arity: arity},
	}
	if _, exists := r.functions[name]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.functions[name] = info
}

// Lookup returns the native function registered under name, if any.
func (r *Registry) Lookup(name string) (*value.NativeFnValue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.functions[name]
	if !ok {
		return nil, false
	}
	return info.Value, true
}

// All returns every registered FunctionInfo, naturally sorted by name
// (spec.md §8's `pixie functions` listing: "fn2" must sort before
// "fn10" the way a human reading the list would expect, rather than
// lexicographically after it).
func (r *Registry) All() []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })

	out := make([]*FunctionInfo, 0, len(names))
	for _, name := range names {
		out = append(out, r.functions[name])
	}
	return out
}

// Names returns just the registered names, naturally sorted.
func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, info := range all {
		names[i] = info.Name
	}
	return names
}

// Count returns the total number of registered functions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.functions)
}
