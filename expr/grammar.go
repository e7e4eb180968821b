package expr

import (
	"sync"

	"github.com/npillmayer/parsetab/lr"
	"github.com/npillmayer/parsetab/lr/ll"
	"github.com/npillmayer/parsetab/lr/lr1"
	"github.com/npillmayer/parsetab/lr/scanner"
)

// Token types of expressions. Operators use their character code.
const (
	Num     = scanner.Int
	Illegal = scanner.Illegal
)

// Operators lists the operator literals of expressions.
var Operators = []string{"+", "-", "*", "/", "(", ")"}

// LLGrammar creates the LL(1) expression grammar.
func LLGrammar() (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder("LL(1) Expressions", lr.FirstRuleSerial(1))
	b.LHS("E").N("T").N("A").End()
	b.LHS("A").T("+", '+').N("T").N("A").End()
	b.LHS("A").T("-", '-').N("T").N("A").End()
	b.LHS("A").Epsilon()
	b.LHS("T").N("F").N("B").End()
	b.LHS("B").T("*", '*').N("F").N("B").End()
	b.LHS("B").T("/", '/').N("F").N("B").End()
	b.LHS("B").Epsilon()
	b.LHS("F").T("(", '(').N("E").T(")", ')').End()
	b.LHS("F").T("n", Num).End()
	return b.Grammar()
}

// LRGrammar creates the augmented LR(1) expression grammar.
func LRGrammar() (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder("LR(1) Expressions")
	b.LHS("S'").N("E").End()
	b.LHS("E").N("E").T("+", '+').N("T").End()
	b.LHS("E").N("E").T("-", '-').N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*", '*').N("F").End()
	b.LHS("T").N("T").T("/", '/').N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(", '(').N("E").T(")", ')').End()
	b.LHS("F").T("n", Num).End()
	return b.Grammar()
}

// --- Tables ----------------------------------------------------------------

var llOnce, lrOnce sync.Once
var llgen *ll.TableGenerator
var lrgen *lr.TableGenerator
var llErr, lrErr error

// LLTables returns the table generator for the LL(1) grammar, with the
// prediction table created.
func LLTables() (*ll.TableGenerator, error) {
	llOnce.Do(func() {
		var g *lr.Grammar
		if g, llErr = LLGrammar(); llErr != nil {
			return
		}
		llgen = ll.NewTableGenerator(lr.Analysis(g))
		llgen.CreateTable()
	})
	return llgen, llErr
}

// LRTables returns the table generator for the LR(1) grammar, with the CFSM
// and the ACTION and GOTO tables created.
func LRTables() (*lr.TableGenerator, error) {
	lrOnce.Do(func() {
		var g *lr.Grammar
		if g, lrErr = LRGrammar(); lrErr != nil {
			return
		}
		lrgen = lr.NewTableGenerator(lr.Analysis(g))
		lrgen.CreateTables()
	})
	return lrgen, lrErr
}

// NewLLParser creates an LL(1) parser for expressions.
func NewLLParser() (*ll.Parser, error) {
	gen, err := LLTables()
	if err != nil {
		return nil, err
	}
	return ll.NewParser(gen.Table()), nil
}

// NewLRParser creates an LR(1) parser for expressions.
func NewLRParser() (*lr1.Parser, error) {
	gen, err := LRTables()
	if err != nil {
		return nil, err
	}
	return lr1.NewParser(gen.Grammar(), gen.GotoTable(), gen.ActionTable()), nil
}
