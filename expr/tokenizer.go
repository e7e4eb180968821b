package expr

import (
	"sync"

	"github.com/npillmayer/parsetab/lr"
	"github.com/npillmayer/parsetab/lr/scanner"
	"github.com/npillmayer/parsetab/lr/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'parsetab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("parsetab.scanner")
}

var lexOnce sync.Once
var exprLexer *lexmach.LMAdapter
var lexErr error

// lexerForExpressions compiles the DFA for expressions on first use.
func lexerForExpressions() (*lexmach.LMAdapter, error) {
	lexOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`[0-9]+|n`), lexmach.MakeToken("n", Num))
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		ids := make(map[string]int, len(Operators))
		for _, op := range Operators {
			ids[op] = int(op[0])
		}
		exprLexer, lexErr = lexmach.NewLMAdapter(init, Operators, nil, ids,
			lexmach.CatchAll("illegal", Illegal))
		if lexErr != nil {
			tracer().Errorf("cannot create expression lexer: %v", lexErr)
		}
	})
	return exprLexer, lexErr
}

// NewTokenizer creates a tokenizer for an input line. Whitespace is skipped,
// numbers are 'n' or digit runs, and every other character which is not an
// operator is handed out as a token of type Illegal.
func NewTokenizer(input string) (scanner.Tokenizer, error) {
	lm, err := lexerForExpressions()
	if err != nil {
		return nil, err
	}
	return lm.Scanner(input)
}

// Symbols tokenizes an input line and maps the tokens to terminals of g. The
// end-of-input marker is appended. Illegal tokens become terminals foreign to
// g, which a parser will not accept.
func Symbols(g *lr.Grammar, input string) ([]*lr.Symbol, error) {
	tokenizer, err := NewTokenizer(input)
	if err != nil {
		return nil, err
	}
	return lr.Symbolize(g, tokenizer), nil
}
