// Package lexicon holds the keyword spellings, punctuation rules, and
// identifier-mapping tables that the lexer and parser consult to classify
// words and, for non-English sources, translate them to canonical English
// keyword tokens before parsing.
package lexicon

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/source"
	"github.com/aster-lang/aster/token"
)

// Lexicon is a per-language table of keyword spellings and identifier
// mappings. The zero value is not usable; construct one with New or use
// English.
type Lexicon struct {
	// Name identifies the lexicon, e.g. "en", "fr".
	Name string

	// keywords is the set of word spellings this lexicon treats as
	// KEYWORD rather than IDENT/TYPE_IDENT.
	keywords map[string]bool

	// translate maps a localized keyword spelling to its canonical
	// English spelling. English maps to itself (identity), so the
	// translator pass (see Translate) is a no-op for the default lexicon.
	translate map[string]string

	// vocabulary maps a localized identifier to a canonical ASCII
	// identifier and back, so lowering can intern a single canonical
	// name regardless of source lexicon.
	vocabulary   map[string]string
	vocabularyRv map[string]string
}

// New builds an empty lexicon with the given name, ready for Register calls
// to add spellings.
func New(name string) *Lexicon {
	return &Lexicon{
		Name:         name,
		keywords:     map[string]bool{},
		translate:    map[string]string{},
		vocabulary:   map[string]string{},
		vocabularyRv: map[string]string{},
	}
}

// englishKeywords is the closed set of structural keyword spellings
// recognized by the grammar. Word operators ("plus", "less than", "equals
// to", "not") and multi-word phrases ("at least", "at most", "as one of")
// are listed by their constituent words; the parser recognizes the
// phrase, the lexicon only needs to mark each word KEYWORD.
var englishKeywords = []string{
	"Module", "Rule", "Define", "given", "produce", "Return", "Let",
	"has", "as", "one", "of", "is", "or", "for", "any", "effect",
	"required", "between", "and", "at", "least", "most", "matching",
	"It", "performs", "Function", "from", "performing", "be",
	"If", "Otherwise", "Match", "When",
	"Start", "async", "Wait", "Try", "Catch", "Workflow",
	"true", "false", "null",
	"Some", "None", "Ok", "Err",
	"with",
	"plus", "less", "than", "equals", "to", "not",
	"import",
}

// English returns the built-in default lexicon: canonical English
// keyword spellings with identity translation and vocabulary.
func English() *Lexicon {
	lex := New("en")
	for _, kw := range englishKeywords {
		lex.keywords[kw] = true
		lex.translate[kw] = kw
	}
	return lex
}

// RegisterKeyword adds an additional localized spelling for a canonical
// English keyword, e.g. lex.RegisterKeyword("règle", "Rule") for a French
// lexicon. It fails fast with a LexiconCollision diagnostic if spelling
// was already registered against a different canonical keyword in this
// lexicon, rather than letting the second registration silently win.
func (l *Lexicon) RegisterKeyword(spelling, canonical string) error {
	if existing, ok := l.translate[spelling]; ok && existing != canonical {
		return diag.New(diag.CodeLexiconCollision, source.Span{}, map[string]any{"name": spelling})
	}
	l.keywords[spelling] = true
	l.translate[spelling] = canonical
	return nil
}

// RegisterIdentifier maps a localized identifier to a canonical ASCII
// identifier. The mapping is round-trippable: Canonicalize and Localize
// are inverses for any registered pair.
func (l *Lexicon) RegisterIdentifier(localized, canonical string) {
	l.vocabulary[localized] = canonical
	l.vocabularyRv[canonical] = localized
}

// Canonicalize returns the canonical ASCII identifier for a localized
// name, or name unchanged if it has no mapping.
func (l *Lexicon) Canonicalize(name string) string {
	if canon, ok := l.vocabulary[name]; ok {
		return canon
	}
	return name
}

// Localize is the inverse of Canonicalize, used when echoing diagnostics
// back in the source lexicon's vocabulary.
func (l *Lexicon) Localize(canonical string) string {
	if local, ok := l.vocabularyRv[canonical]; ok {
		return local
	}
	return canonical
}

// IsKeyword reports whether word is a keyword spelling in this lexicon.
func (l *Lexicon) IsKeyword(word string) bool {
	return l.keywords[word]
}

// Classify determines the token Kind for a bare word: KEYWORD if the
// lexicon recognizes the spelling, else TYPE_IDENT if the first rune is
// upper case, else IDENT.
func (l *Lexicon) Classify(word string) token.Kind {
	if l.IsKeyword(word) {
		return token.KEYWORD
	}
	r, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(r) {
		return token.TYPE_IDENT
	}
	return token.IDENT
}

// Translate rewrites every KEYWORD token's Value to its canonical English
// spelling and returns the result as a new slice; the input slice is not
// modified. For the English lexicon it returns tokens unchanged.
// Non-English lexicons may register spellings that would otherwise be a
// user identifier in the canonical lexicon; neither Translate nor the
// parser checks for such a collision, and none is reported.
func (l *Lexicon) Translate(tokens []token.Token) []token.Token {
	if l.Name == "en" {
		return tokens
	}
	out := make([]token.Token, len(tokens))
	for i, t := range tokens {
		if t.Kind == token.KEYWORD {
			if canon, ok := l.translate[t.Value]; ok {
				t.Value = canon
			}
		}
		out[i] = t
	}
	return out
}

// Registry is a process-wide, read-mostly table of lexicons, initialized
// at startup and not mutated on the hot path.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]*Lexicon
}

// NewRegistry builds a registry pre-populated with the built-in English
// lexicon.
func NewRegistry() *Registry {
	r := &Registry{byID: map[string]*Lexicon{}}
	if err := r.Register(English()); err != nil {
		// An empty registry registering the built-in lexicon for the
		// first time can never collide.
		panic(err)
	}
	return r
}

// Register adds a lexicon under its Name. It fails fast with a
// LexiconCollision diagnostic if name is already registered, so a
// malformed set of lexicon files (two definitions for the same
// language) is caught at registry-build time rather than having the
// second one silently win.
func (r *Registry) Register(lex *Lexicon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[lex.Name]; exists {
		return diag.New(diag.CodeLexiconCollision, source.Span{}, map[string]any{"name": lex.Name})
	}
	r.byID[lex.Name] = lex
	return nil
}

// Get returns the lexicon registered under name, or the default English
// lexicon if name is unregistered.
func (r *Registry) Get(name string) *Lexicon {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if lex, ok := r.byID[name]; ok {
		return lex
	}
	return r.byID["en"]
}

// defaultRegistry is the process-wide registry consulted when callers do
// not construct their own. Tests that register custom lexicons should use
// ResetForTesting to avoid bleeding state across test cases.
var defaultRegistry = NewRegistry()

// Default returns the process-wide lexicon registry.
func Default() *Registry { return defaultRegistry }

// ResetForTesting replaces the process-wide registry with a fresh one
// containing only the built-in English lexicon.
func ResetForTesting() {
	defaultRegistry = NewRegistry()
}
