package ast

import "decaf/symtab"

// ScopeHolder is implemented by Program, FuncDecl, and Block — the
// three node kinds that own a scope. Resolution (§4.6) walks ancestors
// looking for one satisfying this interface.
type ScopeHolder interface {
	Scope() *symtab.Table
	HasScope() bool
}

// scopeHolder is embedded by the three node kinds that own a scope
// (Program, FuncDecl, Block), backing the `symbolTable` attribute from
// §3. It is a separate embed from base because only these three kinds
// carry it.
type scopeHolder struct {
	scope    *symtab.Table
	hasScope bool
}

func (s *scopeHolder) Scope() *symtab.Table { return s.scope }

func (s *scopeHolder) SetScope(t *symtab.Table) {
	s.scope = t
	s.hasScope = true
}

func (s *scopeHolder) HasScope() bool { return s.hasScope }
