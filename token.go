package parsetab

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Applications define the constants;
// the expression grammars of package expr use single-character operator codes
// plus the category codes of text/scanner.
type TokType int

// Token represents an input token. Tokens are produced by a tokenizer and
// reflect terminals of a grammar.
//
// An example would be a token for a number:
//
//    TokType = Num        // identifier for this kind of tokens
//    Lexeme  = "42"       // lexeme as it appeared in the input line
//    Span    = 3…5        // occured from byte position 3 in the input line
//
// Parsers in this module never look at a token's value, only at its type.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
