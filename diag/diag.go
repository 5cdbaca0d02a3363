// Package diag defines the diagnostic model shared by every compiler
// stage: structured, localized, code-indexed error and warning records
// with optional fix-it payloads.
//
// Producers (canon, lexer, parser, ir, check) never format or print a
// diagnostic; they build one against the shared Catalog and append it to
// a Bag. The only rendering provided is Diagnostic.String, a one-line
// form without a source snippet, which the driver package prints.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aster-lang/aster/source"
)

// Severity classifies a Diagnostic's urgency.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Category groups diagnostic codes by the subsystem that raises them.
type Category string

const (
	CategorySyntax     Category = "syntax"
	CategoryScope      Category = "scope"
	CategoryType       Category = "type"
	CategoryEffect     Category = "effect"
	CategoryCapability Category = "capability"
	CategoryPII        Category = "pii"
	CategoryAsync      Category = "async"
)

// TextEdit is a concrete source-text replacement that a fix-it can apply.
type TextEdit struct {
	Span    source.Span
	NewText string
}

// FixIt is a machine-applicable suggestion attached to a Diagnostic.
type FixIt struct {
	Title string
	Edits []TextEdit
}

// Diagnostic is a single structured finding. Code is a stable, symbolic
// identifier (e.g. "ASYNC_WAIT_BEFORE_START") looked up in the Catalog for
// its numeric form, category, severity and message template; Message is
// the already-rendered text for this occurrence.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Span     source.Span
	Notes    []Note
	FixIts   []FixIt
}

// Note is secondary context attached to a Diagnostic, e.g. "previous
// definition here".
type Note struct {
	Message string
	Span    source.Span
}

// NumericCode returns the catalog's numeric form of d's code ("E001",
// "W002", ...), or "E000" if the code is not in the catalog.
func (d Diagnostic) NumericCode() string {
	if entry, ok := Catalog[d.Code]; ok {
		return entry.Numeric
	}
	return "E000"
}

// String renders a diagnostic as "severity[code]: message", without
// source-snippet formatting (that lives at the boundary).
func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s]: %s", d.Severity, d.NumericCode(), d.Message)
	if !d.Span.IsZero() {
		fmt.Fprintf(&b, " (%s)", d.Span)
	}
	return b.String()
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped directly where Go idiom expects an error.
func (d Diagnostic) Error() string { return d.String() }

// New constructs a Diagnostic for code at span, filling Severity and
// Category from the Catalog and rendering Message by substituting args
// (a set of {placeholder: value} pairs, same convention as fmt but keyed
// by name) into the catalog's message template.
func New(code string, span source.Span, args map[string]any) Diagnostic {
	entry, ok := Catalog[code]
	severity := Error
	template := code
	if ok {
		severity = entry.Severity
		template = entry.Template
	}
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  render(template, args),
		Span:     span,
	}
}

// WithNote returns a copy of d with an added Note.
func (d Diagnostic) WithNote(message string, span source.Span) Diagnostic {
	d.Notes = append(append([]Note(nil), d.Notes...), Note{Message: message, Span: span})
	return d
}

// WithFixIt returns a copy of d with an added FixIt.
func (d Diagnostic) WithFixIt(fix FixIt) Diagnostic {
	d.FixIts = append(append([]FixIt(nil), d.FixIts...), fix)
	return d
}

func render(template string, args map[string]any) string {
	out := template
	for key, val := range args {
		out = strings.ReplaceAll(out, "{"+key+"}", fmt.Sprint(val))
	}
	return out
}

// sortKey orders diagnostics by span then code, giving a stable
// source-span ordering regardless of the order producers reported in.
func sortKey(d Diagnostic) (int, int, string) {
	return d.Span.Start.Line, d.Span.Start.Column, d.Code
}

// Sort orders diagnostics in place by source span, then by code.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		li, ci, codei := sortKey(diags[i])
		lj, cj, codej := sortKey(diags[j])
		if li != lj {
			return li < lj
		}
		if ci != cj {
			return ci < cj
		}
		return codei < codej
	})
}

// Dedupe removes diagnostics that are equal in (code, span, message),
// preserving the first occurrence's position.
func Dedupe(diags []Diagnostic) []Diagnostic {
	seen := map[string]bool{}
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		key := d.Code + "\x00" + d.Span.String() + "\x00" + d.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}
