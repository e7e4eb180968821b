package lr

import (
	"github.com/npillmayer/parsetab/lr/scanner"
)

// Symbolize reads all tokens from a tokenizer and converts them to
// terminals of g. The end-of-input marker is appended.
func Symbolize(g *Grammar, tokenizer scanner.Tokenizer) []*Symbol {
	var input []*Symbol
	for {
		token := tokenizer.NextToken()
		if token.TokType() == EOFType {
			break
		}
		input = append(input, g.Symbolize(token))
	}
	return append(input, g.EOF())
}

// Terminate returns input with the end-of-input marker of g appended, unless
// input already ends with it.
func Terminate(g *Grammar, input []*Symbol) []*Symbol {
	if len(input) > 0 && input[len(input)-1].IsEOF() {
		return input
	}
	r := make([]*Symbol, len(input), len(input)+1)
	copy(r, input)
	return append(r, g.EOF())
}
