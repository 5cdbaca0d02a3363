package driver

import (
	"encoding/json"

	"github.com/aster-lang/aster/diag"
)

// jsonDiagnostic is diag.Diagnostic's wire shape for typecheck's JSON
// output, keeping the lowerCamelCase convention ir/json.go already
// established for the Core IR envelope.
type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Numeric  string `json:"numeric"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

func toJSONDiagnostics(diags []diag.Diagnostic) []jsonDiagnostic {
	out := make([]jsonDiagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code,
			Numeric:  d.NumericCode(),
			Message:  d.Message,
			Line:     d.Span.Start.Line,
			Column:   d.Span.Start.Column,
		})
	}
	return out
}

// typecheckReport is the `{source, diagnostics, summary}` document
// emitted for `asterc typecheck`.
type typecheckReport struct {
	Source      string           `json:"source"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Summary     summary          `json:"summary"`
}

type summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
}

func summarize(diags []diag.Diagnostic) summary {
	var s summary
	for _, d := range diags {
		switch d.Severity {
		case diag.Error:
			s.Errors++
		case diag.Warning:
			s.Warnings++
		default:
			s.Infos++
		}
	}
	return s
}

func marshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
