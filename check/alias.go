package check

import (
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

// AliasTable is the recursive type-alias expander with a resolved cache.
// Cycle detection uses a stack-based visited set rather than owning
// back-pointers between type nodes.
type AliasTable struct {
	defs  map[string]ir.Type
	cache map[string]ir.Type
}

// NewAliasTable builds an alias table from every DeclAlias in a lowered
// module.
func NewAliasTable(mod *ir.Module) *AliasTable {
	t := &AliasTable{defs: map[string]ir.Type{}, cache: map[string]ir.Type{}}
	for _, d := range mod.Decls {
		if d.Kind == ir.DeclAlias && d.Aliased != nil {
			t.defs[d.Name] = *d.Aliased
		}
	}
	return t
}

// Expand resolves a TypeName through zero or more alias indirections
// down to its underlying type. A cycle returns the original TypeName
// unexpanded and reports diag.CodeTypeAliasCycle.
func (t *AliasTable) Expand(typ ir.Type, bag *diag.Bag) ir.Type {
	if typ.Kind != ir.TypeName {
		return typ
	}
	if resolved, ok := t.cache[typ.Name]; ok {
		return resolved
	}
	resolved := t.expand(typ, map[string]bool{}, bag)
	t.cache[typ.Name] = resolved
	return resolved
}

func (t *AliasTable) expand(typ ir.Type, visited map[string]bool, bag *diag.Bag) ir.Type {
	if typ.Kind != ir.TypeName {
		return typ
	}
	aliased, isAlias := t.defs[typ.Name]
	if !isAlias {
		return typ
	}
	if visited[typ.Name] {
		bag.Report(diag.New(diag.CodeTypeAliasCycle, typ.Span.ToSpan(), map[string]any{"name": typ.Name}))
		return typ
	}
	visited[typ.Name] = true
	return t.expand(aliased, visited, bag)
}
