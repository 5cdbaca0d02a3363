// Package token defines the lexical token vocabulary shared by the lexer
// and parser.
package token

import (
	"fmt"

	"github.com/aster-lang/aster/source"
)

// Kind discriminates a Token's lexical category.
type Kind int

const (
	// Invalid is the zero value; a well-formed token stream never contains it.
	Invalid Kind = iota
	KEYWORD
	IDENT
	TYPE_IDENT
	INT
	FLOAT
	STRING
	BOOL
	COLON
	COMMA
	LPAREN
	RPAREN
	DOT
	NEWLINE
	INDENT
	DEDENT
	EOF
	// COMMENT and BLANKLINE only ever appear on the Trivia channel.
	COMMENT
	BLANKLINE
)

var kindNames = map[Kind]string{
	Invalid:    "INVALID",
	KEYWORD:    "KEYWORD",
	IDENT:      "IDENT",
	TYPE_IDENT: "TYPE_IDENT",
	INT:        "INT",
	FLOAT:      "FLOAT",
	STRING:     "STRING",
	BOOL:       "BOOL",
	COLON:      "COLON",
	COMMA:      "COMMA",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	DOT:        "DOT",
	NEWLINE:    "NEWLINE",
	INDENT:     "INDENT",
	DEDENT:     "DEDENT",
	EOF:        "EOF",
	COMMENT:    "COMMENT",
	BLANKLINE:  "BLANKLINE",
}

// String implements fmt.Stringer for diagnostic messages and test output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Channel separates tokens the parser consumes (Main) from trivia the
// formatter needs but the grammar ignores (Trivia).
type Channel int

const (
	Main Channel = iota
	Trivia
)

// Token is a single lexical unit: its classification, literal text, source
// span, and the channel it rides on.
type Token struct {
	Kind    Kind
	Value   string
	Span    source.Span
	Channel Channel
}

// String renders a token for debugging/test failure output.
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("%s@%s", t.Kind, t.Span)
	}
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Span)
}

// IsKeyword reports whether t is a KEYWORD token spelling exactly word.
func (t Token) IsKeyword(word string) bool {
	return t.Kind == KEYWORD && t.Value == word
}

// IsPunct reports whether t has the given kind, whatever its channel,
// a convenience for the many single-character punctuation kinds.
func (t Token) IsPunct(k Kind) bool {
	return t.Kind == k
}
