package check

import (
	"github.com/aster-lang/aster/config"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

// ioClassEffects names the effect buckets treated as legitimate channels
// for a Pii-wrapped value (the ones config.EffectConfig groups under
// Io), as opposed to Cpu/Ai, which never are.
var ioClassEffects = map[string]bool{
	"Io": true, "Http": true, "Sql": true, "Time": true, "Files": true, "Secrets": true,
}

// checkPII walks every function body looking for a Pii-wrapped value
// passed as a call argument where the call performs an effect but none of
// the matched effects are Io-class — e.g. a redacted field reaching an Ai
// call. A call that performs no effect at all, or one whose effects are
// Io-class, is not a leak: Core IR has no redaction-tracking of its own,
// so this is a coarse boundary check, not full information-flow tracking.
func checkPII(mod *ir.Module, cfg *config.EffectConfig, bag *diag.Bag) {
	funcs := map[string]ir.Decl{}
	for _, d := range mod.Decls {
		if d.Kind == ir.DeclFunc {
			funcs[d.Name] = d
		}
	}
	for _, d := range mod.Decls {
		if d.Kind == ir.DeclFunc && d.Body != nil {
			env := map[string]ir.Type{}
			for _, p := range d.Params {
				env[p.Name] = p.Type
			}
			walkPIIBlock(d.Body, env, funcs, cfg, bag)
		}
	}
}

func walkPIIBlock(b *ir.Block, env map[string]ir.Type, funcs map[string]ir.Decl, cfg *config.EffectConfig, bag *diag.Bag) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		walkPIIStmt(s, env, funcs, cfg, bag)
	}
}

func walkPIIStmt(s ir.Stmt, env map[string]ir.Type, funcs map[string]ir.Decl, cfg *config.EffectConfig, bag *diag.Bag) {
	switch s.Kind {
	case ir.StmtLet:
		checkPIIExpr(s.Value, env, funcs, cfg, bag)
		if s.Value != nil {
			t := s.Type
			if t == nil {
				inferred := inferExprType(*s.Value, env, funcs)
				t = &inferred
			}
			env[s.Name] = *t
		}
	case ir.StmtReturn, ir.StmtExpr:
		checkPIIExpr(s.Value, env, funcs, cfg, bag)
	case ir.StmtMatch:
		checkPIIExpr(s.Subject, env, funcs, cfg, bag)
		for _, c := range s.Cases {
			if c.Body != nil {
				armEnv := cloneTypeEnv(env)
				walkPIIBlock(c.Body, armEnv, funcs, cfg, bag)
			}
			if c.Value != nil {
				checkPIIExpr(c.Value, env, funcs, cfg, bag)
			}
		}
	case ir.StmtStart:
		checkPIIExpr(s.Call, env, funcs, cfg, bag)
	case ir.StmtTry:
		if s.Body != nil {
			walkPIIBlock(s.Body, cloneTypeEnv(env), funcs, cfg, bag)
		}
		if s.Handler != nil {
			walkPIIBlock(s.Handler, cloneTypeEnv(env), funcs, cfg, bag)
		}
	}
}

func cloneTypeEnv(env map[string]ir.Type) map[string]ir.Type {
	out := make(map[string]ir.Type, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}

func checkPIIExpr(e *ir.Expr, env map[string]ir.Type, funcs map[string]ir.Decl, cfg *config.EffectConfig, bag *diag.Bag) {
	if e == nil {
		return
	}
	switch e.Kind {
	case ir.ExprCall:
		if e.Callee != nil && e.Callee.Kind == ir.ExprName {
			labels := cfg.Match(e.Callee.Name)
			if len(labels) > 0 && !anyIoClass(labels) {
				for i := range e.Args {
					argType := inferExprType(e.Args[i], env, funcs)
					if argType.Kind == ir.TypePii {
						bag.Report(diag.New(diag.CodePIILeak, e.Args[i].Span.ToSpan(), map[string]any{
							"name": piiArgLabel(e.Args[i]),
						}))
					}
				}
			}
		}
		checkPIIExpr(e.Callee, env, funcs, cfg, bag)
		for i := range e.Args {
			checkPIIExpr(&e.Args[i], env, funcs, cfg, bag)
		}
	case ir.ExprBinary:
		checkPIIExpr(e.Left, env, funcs, cfg, bag)
		checkPIIExpr(e.Right, env, funcs, cfg, bag)
	case ir.ExprUnary:
		checkPIIExpr(e.Operand, env, funcs, cfg, bag)
	case ir.ExprConstruct:
		for i := range e.Fields {
			checkPIIExpr(&e.Fields[i].Value, env, funcs, cfg, bag)
		}
	case ir.ExprMatch:
		checkPIIExpr(e.Subject, env, funcs, cfg, bag)
		for _, c := range e.Cases {
			if c.Body != nil {
				walkPIIBlock(c.Body, cloneTypeEnv(env), funcs, cfg, bag)
			}
			if c.Value != nil {
				checkPIIExpr(c.Value, env, funcs, cfg, bag)
			}
		}
	case ir.ExprLambda:
		checkPIIExpr(e.Body, env, funcs, cfg, bag)
	}
}

// piiArgLabel names a Pii-flagged argument for its leak diagnostic: the
// bound name when the argument is itself a name reference, else a
// generic fallback for literal/constructed values.
func piiArgLabel(e ir.Expr) string {
	if e.Kind == ir.ExprName {
		return e.Name
	}
	return "value"
}

func anyIoClass(labels []string) bool {
	for _, l := range labels {
		if ioClassEffects[l] {
			return true
		}
	}
	return false
}

// inferExprType does just enough type inference to track Pii wrappers
// through names, literals, and constructor expressions — the shapes a Pii
// value can actually arrive in. It is not a substitute for check/unify.go;
// anything it cannot determine returns the zero Type, which is never Pii.
func inferExprType(e ir.Expr, env map[string]ir.Type, funcs map[string]ir.Decl) ir.Type {
	switch e.Kind {
	case ir.ExprName:
		if t, ok := env[e.Name]; ok {
			return t
		}
	case ir.ExprConstruct:
		if e.Type != nil {
			return *e.Type
		}
	case ir.ExprCall:
		if e.Callee != nil && e.Callee.Kind == ir.ExprName {
			if fn, ok := funcs[e.Callee.Name]; ok && fn.Ret != nil {
				return *fn.Ret
			}
		}
	case ir.ExprString:
		return ir.Type{Kind: ir.TypeName, Name: "Text"}
	case ir.ExprInt:
		return ir.Type{Kind: ir.TypeName, Name: "Int"}
	case ir.ExprDouble:
		return ir.Type{Kind: ir.TypeName, Name: "Double"}
	case ir.ExprBool:
		return ir.Type{Kind: ir.TypeName, Name: "Bool"}
	}
	return ir.Type{}
}
