/*
Package scanner defines an interface for tokenizers to be used with the parsers
of this module.

A tokenizer implementation based on lexmachine lives in sub-package `lexmach`.
Parsers look at token types only; lexemes are used for diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"text/scanner"

	"github.com/npillmayer/parsetab"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parsetab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("parsetab.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
	Float   = scanner.Float
	String  = scanner.String
	Comment = scanner.Comment
	Illegal = scanner.Comment - 1 // input which no token pattern matches
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() parsetab.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for tokenizers.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// tokenizer.
type DefaultToken struct {
	kind   parsetab.TokType
	lexeme string
	Val    interface{}
	span   parsetab.Span
}

var _ parsetab.Token = DefaultToken{}

// MakeDefaultToken creates a token from its components.
func MakeDefaultToken(typ parsetab.TokType, lexeme string, span parsetab.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface parsetab.Token.
func (t DefaultToken) TokType() parsetab.TokType {
	return t.kind
}

// Value is part of interface parsetab.Token.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of interface parsetab.Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface parsetab.Token.
func (t DefaultToken) Span() parsetab.Span {
	return t.span
}

// --- Slice tokenizer -------------------------------------------------------

// SliceTokenizer hands out a fixed sequence of tokens, then EOF.
type SliceTokenizer struct {
	tokens []parsetab.Token
	pos    int
}

var _ Tokenizer = (*SliceTokenizer)(nil)

// FromTokens creates a tokenizer for pre-scanned tokens.
func FromTokens(tokens ...parsetab.Token) *SliceTokenizer {
	return &SliceTokenizer{tokens: tokens}
}

// NextToken is part of the Tokenizer interface.
func (st *SliceTokenizer) NextToken() parsetab.Token {
	if st.pos >= len(st.tokens) {
		var end uint64
		if n := len(st.tokens); n > 0 {
			end = st.tokens[n-1].Span().To()
		}
		return MakeDefaultToken(EOF, "", parsetab.Span{end, end})
	}
	st.pos++
	return st.tokens[st.pos-1]
}

// SetErrorHandler is part of the Tokenizer interface. A SliceTokenizer never
// reports errors.
func (st *SliceTokenizer) SetErrorHandler(func(error)) {}
