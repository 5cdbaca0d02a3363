// Package driver is the non-core CLI collaborator: it reads a source
// file, runs it through canon → lexer → parser → ir → check, and
// renders the result for a human or a machine consumer. Nothing in
// driver is imported by core; core never logs or touches os.Args, and
// driver is the only place that does either.
package driver

import (
	"fmt"
	"os"

	"github.com/aster-lang/aster/check"
	"github.com/aster-lang/aster/config"
	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/ir"
	"github.com/aster-lang/aster/lexer"
	"github.com/aster-lang/aster/lexicon"
	"github.com/aster-lang/aster/parser"

	"github.com/aster-lang/aster/canon"
)

// result is everything one compile invocation produces, gathered so
// compile/emit-core/typecheck can each render the slice of it they need.
type result struct {
	path   string
	module *ir.Module
	diags  []diag.Diagnostic
}

// runPipeline runs the full canon → lex → parse → lower → check pipeline
// over the file at path. A programmer error (the file cannot be read) is
// returned as a plain Go error; everything a user's source can trigger
// comes back as diagnostics on result instead.
func runPipeline(path string, env config.Env) (*result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: reading %q: %w", path, err)
	}

	bag := diag.NewBag()

	text, canonDiags := canon.Canonicalize(src)
	bag.Merge(canonDiags)

	lex := lexicon.English()
	tokens, lexDiags := lexer.Lex(text, lex)
	bag.Merge(lexDiags)

	mod, parseDiags := parser.Parse(tokens, lex)
	for _, d := range parseDiags {
		bag.Report(d)
	}

	coreMod, lowerDiags := ir.Lower(mod)
	bag.Merge(lowerDiags)

	effects, err := config.LoadEffectConfig(env.EffectConfigPath)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	caps, err := config.LoadCapabilityManifest(env.CapsPath)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	checkBag := check.Check(coreMod, env, effects, caps)
	bag.Merge(checkBag)

	return &result{path: path, module: coreMod, diags: bag.All()}, nil
}

// filterByCode keeps only diagnostics whose code is in codes; an empty
// codes list is a no-op (typecheck's --filter-codes flag).
func filterByCode(diags []diag.Diagnostic, codes []string) []diag.Diagnostic {
	if len(codes) == 0 {
		return diags
	}
	want := map[string]bool{}
	for _, c := range codes {
		want[c] = true
	}
	var out []diag.Diagnostic
	for _, d := range diags {
		if want[d.Code] {
			out = append(out, d)
		}
	}
	return out
}

func hasErrors(diags []diag.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diag.Error {
			return true
		}
	}
	return false
}
