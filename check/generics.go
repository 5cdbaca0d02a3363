package check

import (
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

// checkGenerics enforces generics discipline for one function: declared
// type-vars/effect-vars vs. the set actually used in its parameters and
// return type. The parser already folds any unrecognized uppercase
// identifier into a TypeVar node (parser/type.go), so the single
// TYPE_VAR_UNDECLARED check below also covers what would otherwise be a
// separate TYPEVAR_LIKE_UNDECLARED case: both describe a TypeVar use
// with no matching declaration, and by the time Core IR exists they are
// the same shape.
func checkGenerics(fn ir.Decl, bag *diag.Bag) {
	declaredT := toSet(fn.TypeParams)
	declaredE := toSet(fn.EffectParams)

	usedT := map[string]ir.Type{}
	usedE := map[string]ir.Type{}
	for _, p := range fn.Params {
		collectVars(p.Type, usedT, usedE)
	}
	if fn.Ret != nil {
		collectVars(*fn.Ret, usedT, usedE)
	}

	for name, t := range usedT {
		if !declaredT[name] {
			bag.Report(diag.New(diag.CodeTypeVarUndeclared, t.Span.ToSpan(), map[string]any{"name": name}))
		}
	}
	for _, name := range fn.TypeParams {
		if _, ok := usedT[name]; !ok {
			bag.Report(diag.New(diag.CodeTypeParamUnused, fn.Span.ToSpan(), map[string]any{"name": name}))
		}
	}

	for name, t := range usedE {
		if !declaredE[name] {
			bag.Report(diag.New(diag.CodeEffectVarUndeclared, t.Span.ToSpan(), map[string]any{"name": name}))
		}
	}
	for _, name := range fn.EffectParams {
		if _, ok := usedE[name]; !ok {
			bag.Report(diag.New(diag.CodeEffectParamUnused, fn.Span.ToSpan(), map[string]any{"name": name}))
		}
	}
}

func toSet(names []string) map[string]bool {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	return set
}

// collectVars walks a type, recording every TypeVar and EffectVar it
// references by name.
func collectVars(t ir.Type, typeVars, effectVars map[string]ir.Type) {
	switch t.Kind {
	case ir.TypeVar:
		typeVars[t.Name] = t
	case ir.TypeEffect:
		effectVars[t.Name] = t
	case ir.TypeApp:
		for _, a := range t.Args {
			collectVars(a, typeVars, effectVars)
		}
	case ir.TypeFunc:
		for _, p := range t.Params {
			collectVars(p, typeVars, effectVars)
		}
		if t.Ret != nil {
			collectVars(*t.Ret, typeVars, effectVars)
		}
		for _, e := range t.Effects {
			effectVars[e] = t
		}
	case ir.TypeList, ir.TypeOption, ir.TypeMaybe, ir.TypePii:
		if t.Elem != nil {
			collectVars(*t.Elem, typeVars, effectVars)
		}
	case ir.TypeMap:
		if t.Key != nil {
			collectVars(*t.Key, typeVars, effectVars)
		}
		if t.Elem != nil {
			collectVars(*t.Elem, typeVars, effectVars)
		}
	case ir.TypeResult:
		if t.Ok != nil {
			collectVars(*t.Ok, typeVars, effectVars)
		}
		if t.Err != nil {
			collectVars(*t.Err, typeVars, effectVars)
		}
	}
}
