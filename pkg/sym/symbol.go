// Package sym provides interned name tokens for identity-based lookup.
//
// The interpreter core compares binding names by pointer identity, not by
// string equality (spec.md §4.4). A reader/compiler is expected to route
// every identifier it produces through an Interner so that two lexically
// identical names always resolve to the same *Symbol, and therefore to the
// same environment frame during lookup.
package sym

import "sync"

// Symbol is an interned name token. Two Symbols are the same binding name
// if and only if they are the same pointer; Symbol carries no comparable
// value semantics beyond that.
type Symbol struct {
	name string
}

// String returns the original spelling of the symbol.
func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

// Interner hands out a single canonical *Symbol per distinct name.
type Interner struct {
	mu    sync.Mutex
	table map[string]*Symbol
}

// NewInterner returns an empty, ready-to-use Interner.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]*Symbol)}
}

// Intern returns the canonical Symbol for name, creating it on first sight.
func (in *Interner) Intern(name string) *Symbol {
	in.mu.Lock()
	defer in.mu.Unlock()
	if s, ok := in.table[name]; ok {
		return s
	}
	s := &Symbol{name: name}
	in.table[name] = s
	return s
}

// global is the package-level interner used by callers (typically a
// compiler or test helper) that don't need a private namespace.
var global = NewInterner()

// Intern interns name in the package-global interner.
func Intern(name string) *Symbol {
	return global.Intern(name)
}
