package check

import (
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
)

// asyncState is the dataflow fact carried between statements of one
// function body for async scheduling analysis: started is the set
// of task names known to be running on every path reaching this point,
// mayStart is the set of task names running on at least one path. A
// branch join intersects started (conservative: only count a task as
// definitely started if every arm started it) and unions mayStart
// (liberal: flag a second Start if any arm could already have run one).
type asyncState struct {
	started  map[string]bool
	mayStart map[string]bool
}

func newAsyncState() asyncState {
	return asyncState{started: map[string]bool{}, mayStart: map[string]bool{}}
}

func (s asyncState) clone() asyncState {
	out := newAsyncState()
	for k := range s.started {
		out.started[k] = true
	}
	for k := range s.mayStart {
		out.mayStart[k] = true
	}
	return out
}

// checkAsync walks every function body in program order, threading an
// asyncState through sequential statements and joining it across Match
// arms (the lowered form of If/Otherwise, per ir.go's Stmt doc comment).
// It reports ASYNC_WAIT_BEFORE_START when a Wait's task is not in
// started, and ASYNC_DUPLICATE_START when a Start's task is already in
// mayStart on this path — mutually exclusive Match arms each starting
// the same task do not trigger it, since mayStart is only unioned back
// in at the join, after both arms have already been checked against the
// pre-join state.
func checkAsync(mod *ir.Module, bag *diag.Bag) {
	for _, d := range mod.Decls {
		if d.Kind == ir.DeclFunc && d.Body != nil {
			walkAsyncBlock(d.Body, newAsyncState(), bag)
		}
	}
}

func walkAsyncBlock(b *ir.Block, in asyncState, bag *diag.Bag) asyncState {
	state := in
	for _, s := range b.Stmts {
		state = walkAsyncStmt(s, state, bag)
	}
	return state
}

func walkAsyncStmt(s ir.Stmt, in asyncState, bag *diag.Bag) asyncState {
	switch s.Kind {
	case ir.StmtStart:
		if in.mayStart[s.Task] {
			bag.Report(diag.New(diag.CodeAsyncDuplicateStart, s.Span.ToSpan(), map[string]any{"name": s.Task}))
		}
		out := in.clone()
		out.started[s.Task] = true
		out.mayStart[s.Task] = true
		return out

	case ir.StmtWait:
		if !in.started[s.Task] {
			bag.Report(diag.New(diag.CodeAsyncWaitBeforeStart, s.Span.ToSpan(), map[string]any{"name": s.Task}))
		}
		return in

	case ir.StmtMatch:
		if len(s.Cases) == 0 {
			return in
		}
		var joined *asyncState
		for _, c := range s.Cases {
			armOut := in.clone()
			if c.Body != nil {
				armOut = walkAsyncBlock(c.Body, armOut, bag)
			}
			if joined == nil {
				j := armOut.clone()
				joined = &j
				continue
			}
			joined.started = intersect(joined.started, armOut.started)
			joined.mayStart = union(joined.mayStart, armOut.mayStart)
		}
		return *joined

	case ir.StmtTry:
		out := in
		if s.Body != nil {
			out = walkAsyncBlock(s.Body, out, bag)
		}
		if s.Handler != nil {
			handlerOut := walkAsyncBlock(s.Handler, in.clone(), bag)
			out.started = intersect(out.started, handlerOut.started)
			out.mayStart = union(out.mayStart, handlerOut.mayStart)
		}
		return out

	default:
		return in
	}
}

func intersect(a, b map[string]bool) map[string]bool {
	out := map[string]bool{}
	for k := range a {
		if b[k] {
			out[k] = true
		}
	}
	return out
}

func union(a, b map[string]bool) map[string]bool {
	out := map[string]bool{}
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}
