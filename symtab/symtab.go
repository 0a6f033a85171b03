// Package symtab implements the scope tree built by the symbol-table
// builder pass and consulted by the semantic analyzer.
//
// Grounded on BelkacemYerfa-blk/semantics/symbol_table.go and
// BelkacemYerfa-blk/compiler/symbol_table.go: a SymbolKind closed string
// set, a scope struct holding a parent link and a local store, and a
// Resolve walking that parent chain. The spec requires declaration-order
// preservation for duplicate-name detection, so the local store here is
// an append-ordered slice rather than the teacher's bare map.
package symtab

import "decaf/dtype"

// Kind is the closed set of symbol kinds.
type Kind string

const (
	Scalar   Kind = "scalar"
	Array    Kind = "array"
	Function Kind = "function"
)

// Symbol is one entry in a scope.
type Symbol struct {
	Name string
	Kind Kind
	// Type is the value type for scalars/arrays, the return type for
	// functions.
	Type DecafTypeAlias
	// ArrayLength is 1 for scalars and functions.
	ArrayLength int
	// Params is ordered and only meaningful for Kind == Function.
	Params []Param
}

// DecafTypeAlias avoids a second import alias at every call site while
// keeping the dependency explicit in godoc.
type DecafTypeAlias = dtype.DecafType

// Param is one formal parameter: a name and its declared type.
type Param struct {
	Name string
	Type dtype.DecafType
}

// Table is one lexical scope: an ordered list of local symbols plus an
// optional parent link, forming a tree that mirrors the program's
// static nesting.
type Table struct {
	Parent *Table
	locals []Symbol
}

// New creates a scope whose parent is parent (nil for the program's
// root scope).
func New(parent *Table) *Table {
	return &Table{Parent: parent}
}

// Insert appends sym to the scope's local list, preserving declaration
// order. It performs no duplicate check — callers (the builder pass)
// decide whether to insert on a name that already exists; the analyzer's
// duplicate check (Duplicates) inspects the local list afterward.
func (t *Table) Insert(sym Symbol) {
	t.locals = append(t.locals, sym)
}

// Locals returns the scope's symbols in declaration order. The returned
// slice must not be mutated by callers.
func (t *Table) Locals() []Symbol {
	return t.locals
}

// Lookup walks from t up through parent scopes and returns the first
// symbol named name, preserving lexical shadowing (the innermost
// declaration wins).
func (t *Table) Lookup(name string) (Symbol, bool) {
	for scope := t; scope != nil; scope = scope.Parent {
		for i := range scope.locals {
			if scope.locals[i].Name == name {
				return scope.locals[i], true
			}
		}
	}
	return Symbol{}, false
}

// LookupLocal looks up name only in t's own local list, ignoring
// ancestors.
func (t *Table) LookupLocal(name string) (Symbol, bool) {
	for i := range t.locals {
		if t.locals[i].Name == name {
			return t.locals[i], true
		}
	}
	return Symbol{}, false
}

// Duplicates returns, in first-occurrence order, every name that appears
// more than once in t's local list.
func (t *Table) Duplicates() []string {
	seen := make(map[string]int, len(t.locals))
	var order []string
	var dups []string
	reported := make(map[string]bool)
	for _, sym := range t.locals {
		seen[sym.Name]++
		if seen[sym.Name] == 1 {
			order = append(order, sym.Name)
		}
	}
	for _, name := range order {
		if seen[name] > 1 && !reported[name] {
			dups = append(dups, name)
			reported[name] = true
		}
	}
	return dups
}
