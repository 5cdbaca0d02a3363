package check

import (
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
	"github.com/aster-lang/aster/source"
)

// Subst is a structural unifier's binding set: type-variable name ↦
// concrete (or partially bound) Core IR type. Unify implements structural
// unification: scalars equal by name, TypeApp equal when base and arity
// match and args unify pointwise, and a TypeVar binds unless already
// bound to a different concrete type, in which case it reports
// TYPEVAR_INCONSISTENT. Every binding passes an occurs-check first.
type Subst struct {
	bindings map[string]ir.Type
}

// NewSubst returns an empty substitution.
func NewSubst() *Subst { return &Subst{bindings: map[string]ir.Type{}} }

// Unify attempts to unify a and b under s, reporting a diagnostic at
// span on the first inconsistency it finds. It returns false on any
// structural mismatch (arity, kind, or scalar name), not just
// TYPEVAR_INCONSISTENT — callers that need a specific mismatch
// diagnostic for non-typevar mismatches report it themselves.
func (s *Subst) Unify(a, b ir.Type, span source.Span, bag *diag.Bag) bool {
	ra, rb := s.resolve(a), s.resolve(b)
	if ra.Kind != ir.TypeVar && rb.Kind != ir.TypeVar && !typesEqual(ra, rb) {
		name, previous, actual := a.Name, ra, rb
		if a.Kind != ir.TypeVar {
			name, previous, actual = b.Name, rb, ra
		}
		if a.Kind == ir.TypeVar || b.Kind == ir.TypeVar {
			bag.Report(diag.New(diag.CodeTypeVarInconsistent, span, map[string]any{
				"name": name, "previous": describeType(previous), "actual": describeType(actual),
			}))
			return false
		}
	}
	a, b = ra, rb

	if a.Kind == ir.TypeVar {
		return s.bindVar(a.Name, b, span, bag)
	}
	if b.Kind == ir.TypeVar {
		return s.bindVar(b.Name, a, span, bag)
	}
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case ir.TypeName, ir.TypeEffect:
		return a.Name == b.Name
	case ir.TypeApp:
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !s.Unify(a.Args[i], b.Args[i], span, bag) {
				return false
			}
		}
		return true
	case ir.TypeList, ir.TypeOption, ir.TypeMaybe, ir.TypePii:
		return a.Elem != nil && b.Elem != nil && s.Unify(*a.Elem, *b.Elem, span, bag)
	case ir.TypeMap:
		return a.Key != nil && b.Key != nil && a.Elem != nil && b.Elem != nil &&
			s.Unify(*a.Key, *b.Key, span, bag) && s.Unify(*a.Elem, *b.Elem, span, bag)
	case ir.TypeResult:
		return a.Ok != nil && b.Ok != nil && a.Err != nil && b.Err != nil &&
			s.Unify(*a.Ok, *b.Ok, span, bag) && s.Unify(*a.Err, *b.Err, span, bag)
	case ir.TypeFunc:
		if len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !s.Unify(a.Params[i], b.Params[i], span, bag) {
				return false
			}
		}
		return a.Ret != nil && b.Ret != nil && s.Unify(*a.Ret, *b.Ret, span, bag)
	}
	return false
}

func (s *Subst) resolve(t ir.Type) ir.Type {
	for t.Kind == ir.TypeVar {
		bound, ok := s.bindings[t.Name]
		if !ok {
			return t
		}
		t = bound
	}
	return t
}

func (s *Subst) bindVar(name string, t ir.Type, span source.Span, bag *diag.Bag) bool {
	if occurs(name, t, s) {
		return false
	}
	if existing, ok := s.bindings[name]; ok {
		if !typesEqual(existing, t) {
			bag.Report(diag.New(diag.CodeTypeVarInconsistent, span, map[string]any{
				"name": name, "previous": describeType(existing), "actual": describeType(t),
			}))
			return false
		}
		return true
	}
	s.bindings[name] = t
	return true
}

func occurs(name string, t ir.Type, s *Subst) bool {
	t = s.resolve(t)
	switch t.Kind {
	case ir.TypeVar:
		return t.Name == name
	case ir.TypeApp:
		for _, a := range t.Args {
			if occurs(name, a, s) {
				return true
			}
		}
		return false
	case ir.TypeList, ir.TypeOption, ir.TypeMaybe, ir.TypePii:
		return t.Elem != nil && occurs(name, *t.Elem, s)
	case ir.TypeMap:
		return (t.Key != nil && occurs(name, *t.Key, s)) || (t.Elem != nil && occurs(name, *t.Elem, s))
	case ir.TypeResult:
		return (t.Ok != nil && occurs(name, *t.Ok, s)) || (t.Err != nil && occurs(name, *t.Err, s))
	case ir.TypeFunc:
		for _, p := range t.Params {
			if occurs(name, p, s) {
				return true
			}
		}
		return t.Ret != nil && occurs(name, *t.Ret, s)
	}
	return false
}

func typesEqual(a, b ir.Type) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ir.TypeName, ir.TypeVar, ir.TypeEffect:
		return a.Name == b.Name
	case ir.TypeApp:
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !typesEqual(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case ir.TypeList, ir.TypeOption, ir.TypeMaybe, ir.TypePii:
		return a.Elem != nil && b.Elem != nil && typesEqual(*a.Elem, *b.Elem)
	case ir.TypeMap:
		return a.Key != nil && b.Key != nil && a.Elem != nil && b.Elem != nil &&
			typesEqual(*a.Key, *b.Key) && typesEqual(*a.Elem, *b.Elem)
	case ir.TypeResult:
		return a.Ok != nil && b.Ok != nil && a.Err != nil && b.Err != nil &&
			typesEqual(*a.Ok, *b.Ok) && typesEqual(*a.Err, *b.Err)
	case ir.TypeFunc:
		if len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !typesEqual(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return a.Ret != nil && b.Ret != nil && typesEqual(*a.Ret, *b.Ret)
	}
	return false
}

// describeType renders a Core IR type back into its CNL surface
// spelling, for embedding in diagnostic messages.
func describeType(t ir.Type) string {
	switch t.Kind {
	case ir.TypeName, ir.TypeVar, ir.TypeEffect:
		return t.Name
	case ir.TypeApp:
		s := t.Name + " of "
		for i, a := range t.Args {
			if i > 0 {
				s += ", "
			}
			s += describeType(a)
		}
		return s
	case ir.TypeList:
		return "List of " + describeType(*t.Elem)
	case ir.TypeOption:
		return "Option of " + describeType(*t.Elem)
	case ir.TypeMaybe:
		return "Maybe of " + describeType(*t.Elem)
	case ir.TypePii:
		return "Pii of " + describeType(*t.Elem)
	case ir.TypeMap:
		return "Map of " + describeType(*t.Key) + " to " + describeType(*t.Elem)
	case ir.TypeResult:
		return "Result of " + describeType(*t.Ok) + " or " + describeType(*t.Err)
	case ir.TypeFunc:
		return "Function"
	default:
		return "?"
	}
}
