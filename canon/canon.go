// Package canon implements the layout canonicalizer: the pre-lexing pass
// that normalizes line endings, BOM, tabs, and mixed tab/space
// indentation into canonical input for the lexer. Comment forms are not
// rewritten: "//" and "#" comments pass through unchanged.
package canon

import (
	"strings"
	"unicode/utf8"

	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/source"
)

// TabStop is the fixed tab-stop width, in columns, that tabs expand to.
const TabStop = 2

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Canonicalize turns raw source bytes into canonical UTF-8 text: BOM
// stripped, line endings normalized to LF, tabs expanded to TabStop
// columns. Comment introducers ("//" and "#") are left untouched and
// nothing about them is recorded here; the lexer alone classifies
// comments as trivia.
//
// Canonicalize never fails. Malformed UTF-8 is replaced rune-by-rune with
// U+FFFD and reported as a diagnostic, decoding byte-at-a-time so a
// single bad byte never desynchronizes the rest of the line.
//
// Canonicalize is idempotent: Canonicalize(Canonicalize(x)) == Canonicalize(x).
// It preserves the total line count and the starting line of every
// non-trivia character, since it only ever rewrites within a line (tab
// expansion, trailing \r removal) and never merges or splits lines.
func Canonicalize(src []byte) (string, *diag.Bag) {
	bag := diag.NewBag()

	src = stripBOM(src)
	src, wasValid := ensureValidUTF8(src, bag)
	_ = wasValid

	var out strings.Builder
	out.Grow(len(src))

	col := 1
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRune(src[i:])
		switch r {
		case '\r':
			// Normalize \r\n and bare \r to \n.
			if i+1 < len(src) && src[i+1] == '\n' {
				i += size + 1
			} else {
				i += size
			}
			out.WriteByte('\n')
			col = 1
		case '\n':
			out.WriteByte('\n')
			col = 1
			i += size
		case '\t':
			// Expand the tab to TabStop columns, landing on the next
			// multiple of TabStop so mixed tab/space indentation becomes
			// a single canonical column sequence.
			spaces := TabStop - ((col - 1) % TabStop)
			for n := 0; n < spaces; n++ {
				out.WriteByte(' ')
			}
			col += spaces
			i += size
		default:
			out.WriteRune(r)
			col++
			i += size
		}
	}

	return out.String(), bag
}

func stripBOM(src []byte) []byte {
	if len(src) >= 3 && src[0] == utf8BOM[0] && src[1] == utf8BOM[1] && src[2] == utf8BOM[2] {
		return src[3:]
	}
	return src
}

// ensureValidUTF8 rewrites any malformed byte sequences with the Unicode
// replacement character, reporting one diagnostic per occurrence and
// returning the well-formed result. The returned bool is true when the
// input was already valid, i.e. no replacement was necessary.
func ensureValidUTF8(src []byte, bag *diag.Bag) ([]byte, bool) {
	if utf8.Valid(src) {
		return src, true
	}

	var out []byte
	line, col := 1, 1
	i := 0
	replaced := false
	for i < len(src) {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			out = append(out, "�"...)
			bag.Report(diag.New(diag.CodeInvalidUTF8, source.Span{
				Start: source.Position{Line: line, Column: col},
				End:   source.Position{Line: line, Column: col},
			}, map[string]any{"pos": source.Position{Line: line, Column: col}}))
			replaced = true
			i++
			col++
			continue
		}
		out = append(out, src[i:i+size]...)
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}
	return out, !replaced
}
