package check

import (
	"sort"
	"strings"

	"github.com/aster-lang/aster/config"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/internal/intern"
	"github.com/aster-lang/aster/ir"
)

// callSite is one call expression found while walking a function body,
// together with the span it should be blamed on for diagnostics. name is
// interned: module- and function-qualified names get interned to speed
// up the call graph's adjacency and inferred-effect-set lookups, which
// is exactly the typechecker's hot loop this builds.
type callSite struct {
	name intern.ID
	span ir.IRSpan
}

// checkEffects implements effect inference: a function's required effect
// set is declared ∪ inferred, where inferred effects come
// from direct calls matched against cfg's glob patterns and from
// transitive calls into other user-defined functions that themselves
// require effects. EFFECT_NOT_DECLARED fires when inferred carries an
// effect the signature omits; EFFECT_OVER_DECLARED (a warning) fires when
// the signature declares an effect nothing in the body ever uses.
// Capability enforcement rides the same call-site walk: every call
// matched to an effect is checked against caps, if one was supplied.
func checkEffects(mod *ir.Module, cfg *config.EffectConfig, caps *config.CapabilityManifest, bag *diag.Bag) {
	var names intern.Table

	funcs := map[intern.ID]ir.Decl{}
	for _, d := range mod.Decls {
		if d.Kind == ir.DeclFunc {
			funcs[names.Intern(d.Name)] = d
		}
	}

	direct := map[intern.ID]map[string]bool{}
	callees := map[intern.ID]map[intern.ID]bool{}

	for id, fn := range funcs {
		direct[id] = map[string]bool{}
		callees[id] = map[intern.ID]bool{}
		if fn.Body == nil {
			continue
		}
		for _, site := range collectCallSites(fn.Body, &names) {
			qualifiedName := names.Value(site.name)
			if labels := cfg.Match(qualifiedName); len(labels) > 0 {
				for _, label := range labels {
					direct[id][label] = true
					if caps != nil && !caps.Allowed(label, qualifiedName) {
						bag.Report(diag.New(diag.CodeCapabilityDenied, site.span.ToSpan(), map[string]any{
							"name": qualifiedName, "actual": label,
						}))
					}
				}
			}
			if _, isUserFunc := funcs[site.name]; isUserFunc {
				callees[id][site.name] = true
			}
		}
	}

	inferred := map[intern.ID]map[string]bool{}
	for id := range funcs {
		inferred[id] = map[string]bool{}
		for label := range direct[id] {
			inferred[id][label] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for id := range funcs {
			for callee := range callees[id] {
				for label := range unionSets(toSet(funcs[callee].DeclaredEffects), inferred[callee]) {
					if !inferred[id][label] {
						inferred[id][label] = true
						changed = true
					}
				}
			}
		}
	}

	for id, fn := range funcs {
		declared := toSet(fn.DeclaredEffects)
		for _, label := range sortedKeys(inferred[id]) {
			if !declared[label] {
				bag.Report(diag.New(diag.CodeEffectNotDeclared, fn.Span.ToSpan(), map[string]any{
					"name": fn.Name, "actual": label, "expected": joinOrNone(fn.DeclaredEffects),
				}))
			}
		}
		for _, label := range fn.DeclaredEffects {
			if !inferred[id][label] {
				bag.Report(diag.New(diag.CodeEffectOverDeclared, fn.Span.ToSpan(), map[string]any{
					"name": fn.Name, "expected": label, "actual": joinOrNone(sortedKeys(inferred[id])),
				}))
			}
		}
	}
}

func unionSets(a, b map[string]bool) map[string]bool {
	out := map[string]bool{}
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

// joinOrNone renders a label list for a diagnostic message, since the
// catalog's effect templates expect a single {expected}/{actual} string
// rather than a slice.
func joinOrNone(labels []string) string {
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// collectCallSites walks a function body depth-first, gathering every
// call expression whose callee resolves to a plain (possibly dotted)
// name — the only shape effect/capability patterns and the user-function
// call graph need to recognize. Every callee name is interned into names
// as it's found.
func collectCallSites(b *ir.Block, names *intern.Table) []callSite {
	var sites []callSite
	var walkBlock func(b *ir.Block)
	var walkStmt func(s ir.Stmt)
	var walkExpr func(e *ir.Expr)

	walkExpr = func(e *ir.Expr) {
		if e == nil {
			return
		}
		switch e.Kind {
		case ir.ExprCall:
			if e.Callee != nil && e.Callee.Kind == ir.ExprName {
				sites = append(sites, callSite{name: names.Intern(e.Callee.Name), span: e.Span})
			}
			walkExpr(e.Callee)
			for i := range e.Args {
				walkExpr(&e.Args[i])
			}
		case ir.ExprBinary:
			walkExpr(e.Left)
			walkExpr(e.Right)
		case ir.ExprUnary:
			walkExpr(e.Operand)
		case ir.ExprConstruct:
			for i := range e.Fields {
				walkExpr(&e.Fields[i].Value)
			}
		case ir.ExprMatch:
			walkExpr(e.Subject)
			for _, c := range e.Cases {
				walkExpr(&c.Pattern)
				if c.Body != nil {
					walkBlock(c.Body)
				}
				if c.Value != nil {
					walkExpr(c.Value)
				}
			}
		case ir.ExprLambda:
			walkExpr(e.Body)
		}
	}

	walkStmt = func(s ir.Stmt) {
		switch s.Kind {
		case ir.StmtLet:
			walkExpr(s.Value)
		case ir.StmtReturn:
			walkExpr(s.Value)
		case ir.StmtExpr:
			walkExpr(s.Value)
		case ir.StmtMatch:
			walkExpr(s.Subject)
			for _, c := range s.Cases {
				walkExpr(&c.Pattern)
				if c.Body != nil {
					walkBlock(c.Body)
				}
				if c.Value != nil {
					walkExpr(c.Value)
				}
			}
		case ir.StmtStart:
			walkExpr(s.Call)
		case ir.StmtWait:
			// waiting on a task name carries no call expression to walk.
		case ir.StmtTry:
			if s.Body != nil {
				walkBlock(s.Body)
			}
			if s.Handler != nil {
				walkBlock(s.Handler)
			}
		}
	}

	walkBlock = func(b *ir.Block) {
		if b == nil {
			return
		}
		for _, s := range b.Stmts {
			walkStmt(s)
		}
	}

	walkBlock(b)
	return sites
}
