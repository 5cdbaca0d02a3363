package diag

// Reporter decouples diagnostic emission from storage, so a phase can
// report findings without knowing whether they end up in a Bag, are
// streamed to a caller-supplied callback, or both. Grounded on the
// Reporter/Bag split documented by the diag package in the
// vovakirdan-surge example.
type Reporter interface {
	Report(Diagnostic)
}

// Bag accumulates diagnostics across a single pipeline pass. It is an
// append-only builder: every stage threads one Bag through and never
// mutates another stage's entries.
type Bag struct {
	diagnostics []Diagnostic
}

// NewBag returns an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Report appends d to the bag. It never allocates beyond a slice append
// on the happy (few-diagnostics) path.
func (b *Bag) Report(d Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
}

// HasErrors reports whether the bag contains at least one Error-severity
// diagnostic.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics currently in the bag.
func (b *Bag) Len() int { return len(b.diagnostics) }

// All returns the bag's diagnostics, sorted by source span and
// de-duplicated by (code, span, message).
func (b *Bag) All() []Diagnostic {
	out := append([]Diagnostic(nil), b.diagnostics...)
	Sort(out)
	return Dedupe(out)
}

// Merge appends every diagnostic from other into b, preserving b's own
// entries. Used when a stage fans out over several sub-passes (e.g. the
// typechecker's per-function analyses) and then joins their bags.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.diagnostics = append(b.diagnostics, other.diagnostics...)
}

var _ Reporter = (*Bag)(nil)
