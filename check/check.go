// Package check implements the typecheck, effect-inference, capability,
// and async-scheduling passes over a lowered Core IR module. Every pass
// threads a shared diag.Bag rather than returning an error; a
// well-formed Core IR module never makes Check panic.
package check

import (
	"github.com/aster-lang/aster/config"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

// Check runs the full pass pipeline over mod and returns the accumulated
// diagnostics. effects and caps may be nil: a nil effects config falls
// back to config.DefaultEffectConfig, and a nil caps means no capability
// manifest was supplied, so capability enforcement is skipped entirely
// (the same convention config.LoadCapabilityManifest uses for an empty
// path).
func Check(mod *ir.Module, env config.Env, effects *config.EffectConfig, caps *config.CapabilityManifest) *diag.Bag {
	bag := diag.NewBag()
	if effects == nil {
		effects = config.DefaultEffectConfig()
	}

	expandAliases(mod, bag)

	for i := range mod.Decls {
		d := &mod.Decls[i]
		if d.Kind != ir.DeclFunc {
			continue
		}
		checkGenerics(*d, bag)
		buildFuncScope(*d)
	}

	enforcedCaps := caps
	if !env.CapEffectsEnforce {
		enforcedCaps = nil
	}
	checkEffects(mod, effects, enforcedCaps, bag)
	checkAsync(mod, bag)
	checkPII(mod, effects, bag)

	return bag
}

// expandAliases resolves every function's parameter and return types
// through the module's alias table in place, so every later pass sees
// fully-expanded types rather than having to re-expand aliases itself.
func expandAliases(mod *ir.Module, bag *diag.Bag) {
	aliases := NewAliasTable(mod)
	for i := range mod.Decls {
		d := &mod.Decls[i]
		if d.Kind != ir.DeclFunc {
			continue
		}
		for j := range d.Params {
			d.Params[j].Type = aliases.Expand(d.Params[j].Type, bag)
		}
		if d.Ret != nil {
			expanded := aliases.Expand(*d.Ret, bag)
			d.Ret = &expanded
		}
	}
}

// buildFuncScope builds the scope tree for one function body, declaring
// its parameters and every Let binding, and marking captured symbols
// where a lambda body references a name from an enclosing scope.
func buildFuncScope(fn ir.Decl) {
	root := NewScope(ScopeFunction, nil)
	for _, p := range fn.Params {
		root.Declare(&SymbolInfo{Name: p.Name, Kind: SymbolParam, Span: p.Span.ToSpan()})
	}
	if fn.Body != nil {
		walkScopeBlock(root, fn.Body, false)
	}
}

func walkScopeBlock(scope *Scope, b *ir.Block, inLambda bool) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		walkScopeStmt(scope, s, inLambda)
	}
}

func walkScopeStmt(scope *Scope, s ir.Stmt, inLambda bool) {
	switch s.Kind {
	case ir.StmtLet:
		walkScopeExpr(scope, s.Value, inLambda)
		scope.Declare(&SymbolInfo{Name: s.Name, Kind: SymbolVar, Span: s.Span.ToSpan()})
	case ir.StmtReturn, ir.StmtExpr:
		walkScopeExpr(scope, s.Value, inLambda)
	case ir.StmtMatch:
		walkScopeExpr(scope, s.Subject, inLambda)
		for _, c := range s.Cases {
			arm := NewScope(ScopeBlock, scope)
			if c.Body != nil {
				walkScopeBlock(arm, c.Body, inLambda)
			}
			if c.Value != nil {
				walkScopeExpr(arm, c.Value, inLambda)
			}
		}
	case ir.StmtStart:
		walkScopeExpr(scope, s.Call, inLambda)
	case ir.StmtTry:
		if s.Body != nil {
			walkScopeBlock(NewScope(ScopeBlock, scope), s.Body, inLambda)
		}
		if s.Handler != nil {
			handler := NewScope(ScopeBlock, scope)
			handler.Declare(&SymbolInfo{Name: s.CatchName, Kind: SymbolVar, Span: s.Span.ToSpan()})
			walkScopeBlock(handler, s.Handler, inLambda)
		}
	}
}

// walkScopeExpr resolves every name reference and, once inside a lambda
// body (inLambda), marks names that resolve outside the lambda's own
// declarations as captured.
func walkScopeExpr(scope *Scope, e *ir.Expr, inLambda bool) {
	if e == nil {
		return
	}
	switch e.Kind {
	case ir.ExprName:
		if inLambda {
			if _, declaredInLambda := scope.symbols[e.Name]; !declaredInLambda {
				if _, ok := scope.Lookup(e.Name); ok {
					scope.MarkCaptured(e.Name)
				}
			}
		}
	case ir.ExprCall:
		walkScopeExpr(scope, e.Callee, inLambda)
		for i := range e.Args {
			walkScopeExpr(scope, &e.Args[i], inLambda)
		}
	case ir.ExprBinary:
		walkScopeExpr(scope, e.Left, inLambda)
		walkScopeExpr(scope, e.Right, inLambda)
	case ir.ExprUnary:
		walkScopeExpr(scope, e.Operand, inLambda)
	case ir.ExprConstruct:
		for i := range e.Fields {
			walkScopeExpr(scope, &e.Fields[i].Value, inLambda)
		}
	case ir.ExprMatch:
		walkScopeExpr(scope, e.Subject, inLambda)
		for _, c := range e.Cases {
			arm := NewScope(ScopeBlock, scope)
			if c.Body != nil {
				walkScopeBlock(arm, c.Body, inLambda)
			}
			if c.Value != nil {
				walkScopeExpr(arm, c.Value, inLambda)
			}
		}
	case ir.ExprLambda:
		lambda := NewScope(ScopeLambda, scope)
		for _, p := range e.Params {
			lambda.Declare(&SymbolInfo{Name: p.Name, Kind: SymbolParam, Span: p.Span.ToSpan()})
		}
		walkScopeExpr(lambda, e.Body, true)
	}
}
