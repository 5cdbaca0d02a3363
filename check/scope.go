package check

import "github.com/aster-lang/aster/source"

// ScopeType discriminates the kind of lexical scope a Scope represents.
type ScopeType string

const (
	ScopeModule   ScopeType = "module"
	ScopeFunction ScopeType = "function"
	ScopeBlock    ScopeType = "block"
	ScopeLambda   ScopeType = "lambda"
)

// SymbolKind discriminates what a SymbolInfo names.
type SymbolKind string

const (
	SymbolVar        SymbolKind = "var"
	SymbolFunc       SymbolKind = "func"
	SymbolData       SymbolKind = "data"
	SymbolEnum       SymbolKind = "enum"
	SymbolTypeAlias  SymbolKind = "type_alias"
	SymbolParam      SymbolKind = "param"
)

// SymbolInfo is one scope entry.
type SymbolInfo struct {
	Name         string
	Kind         SymbolKind
	Mutable      bool
	Span         source.Span
	Captured     bool
	ShadowedFrom *Scope
}

// Scope is a single level of the hierarchical symbol table. Parent is
// nil for the module scope.
type Scope struct {
	Type    ScopeType
	Parent  *Scope
	symbols map[string]*SymbolInfo
}

// NewScope creates a scope of the given type nested under parent.
func NewScope(typ ScopeType, parent *Scope) *Scope {
	return &Scope{Type: typ, Parent: parent, symbols: map[string]*SymbolInfo{}}
}

// Declare adds name to this scope. If name is already declared in this
// same scope, it is a duplicate-definition error (the caller reports
// it); Declare itself just reports whether the declaration succeeded.
// Shadowing a symbol from an enclosing scope is allowed and recorded on
// the returned SymbolInfo's ShadowedFrom field.
func (s *Scope) Declare(info *SymbolInfo) (ok bool) {
	if _, exists := s.symbols[info.Name]; exists {
		return false
	}
	if outer, outerScope := s.lookupEnclosing(info.Name); outer != nil {
		info.ShadowedFrom = outerScope
	}
	s.symbols[info.Name] = info
	return true
}

// Lookup resolves name in this scope or any enclosing scope.
func (s *Scope) Lookup(name string) (*SymbolInfo, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if info, ok := cur.symbols[name]; ok {
			return info, true
		}
	}
	return nil, false
}

func (s *Scope) lookupEnclosing(name string) (*SymbolInfo, *Scope) {
	if s.Parent == nil {
		return nil, nil
	}
	for cur := s.Parent; cur != nil; cur = cur.Parent {
		if info, ok := cur.symbols[name]; ok {
			return info, cur
		}
	}
	return nil, nil
}

// MarkCaptured marks name as captured by a lambda, walking up from the
// lambda scope to find and flag the symbol in whichever enclosing scope
// actually owns it.
func (s *Scope) MarkCaptured(name string) {
	for cur := s; cur != nil; cur = cur.Parent {
		if info, ok := cur.symbols[name]; ok {
			info.Captured = true
			return
		}
	}
}
