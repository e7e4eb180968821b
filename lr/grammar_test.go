package lr

import (
	"strings"
	"testing"

	"github.com/npillmayer/parsetab"
	"github.com/npillmayer/parsetab/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// We use the two classic forms of an expression grammar for testing: a
// left-recursive one for LR(1) and one with left recursion removed for LL(1).
//
//     S' ➞ E                      E ➞ T A
//     E  ➞ E + T | E - T | T      A ➞ + T A | - T A | ε
//     T  ➞ T * F | T / F | F      T ➞ F B
//     F  ➞ ( E ) | n              B ➞ * F B | / F B | ε
//                                 F ➞ ( E ) | n
//
func makeLRGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("LR Expressions")
	b.LHS("S'").N("E").End()
	b.LHS("E").N("E").T("+", '+').N("T").End()
	b.LHS("E").N("E").T("-", '-').N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*", '*').N("F").End()
	b.LHS("T").N("T").T("/", '/').N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(", '(').N("E").T(")", ')').End()
	b.LHS("F").T("n", scanner.Int).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func makeLLGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("LL Expressions", FirstRuleSerial(1))
	b.LHS("E").N("T").N("A").End()
	b.LHS("A").T("+", '+').N("T").N("A").End()
	b.LHS("A").T("-", '-').N("T").N("A").End()
	b.LHS("A").Epsilon()
	b.LHS("T").N("F").N("B").End()
	b.LHS("B").T("*", '*').N("F").N("B").End()
	b.LHS("B").T("/", '/').N("F").N("B").End()
	b.LHS("B").Epsilon()
	b.LHS("F").T("(", '(').N("E").T(")", ')').End()
	b.LHS("F").T("n", scanner.Int).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.lr")
	defer teardown()
	//
	g := makeLLGrammar(t)
	if g.RuleCount() != 10 {
		t.Errorf("expected 10 rules, have %d", g.RuleCount())
	}
	if r := g.Rule(1); r == nil || r.String() != "E ➞ T A" {
		t.Errorf("expected rule 1 to be E ➞ T A, is %v", r)
	}
	if r := g.Rule(4); r == nil || !r.IsEps() || r.String() != "A ➞ ε" {
		t.Errorf("expected rule 4 to be an epsilon rule, is %v", r)
	}
	if g.Rule(0) != nil || g.Rule(11) != nil {
		t.Errorf("expected rules 0 and 11 to not exist")
	}
	if g.Start() != g.NonTerminal("E") {
		t.Errorf("expected start symbol to be E, is %v", g.Start())
	}
	if len(g.RulesFor(g.NonTerminal("B"))) != 3 {
		t.Errorf("expected 3 rules for B, have %d", len(g.RulesFor(g.NonTerminal("B"))))
	}
	var names []string
	for _, A := range g.Terminals() {
		names = append(names, A.Name)
	}
	if strings.Join(names, " ") != "+ - * / ( ) n $" {
		t.Errorf("unexpected terminals: %v", names)
	}
	eof := g.Terminals()[len(g.Terminals())-1]
	if !eof.IsEOF() || !eof.IsTerminal() || eof.Serial() != 7 {
		t.Errorf("expected $ to be the last terminal, is %v/%d", eof, eof.Serial())
	}
	syms := g.EachSymbol(func(A *Symbol) interface{} { return A.Name })
	if len(syms) != 13 {
		t.Errorf("expected 8 terminals + 5 non-terminals, have %d symbols", len(syms))
	}
}

func TestGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Empty")
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected empty grammar to be rejected")
	}
	b = NewGrammarBuilder("Undefined")
	b.LHS("S").N("X").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected grammar with undefined non-terminal X to be rejected")
	}
	b = NewGrammarBuilder("Duplicate")
	b.LHS("S").T("a", 1).T("b", 1).End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected grammar with one token type for two terminals to be rejected")
	}
}

func TestSymbolize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.lr")
	defer teardown()
	//
	g := makeLRGrammar(t)
	tokenizer := scanner.FromTokens(
		scanner.MakeDefaultToken(scanner.Int, "42", parsetab.Span{0, 2}),
		scanner.MakeDefaultToken('+', "+", parsetab.Span{2, 3}),
		scanner.MakeDefaultToken(scanner.Illegal, "x", parsetab.Span{3, 4}),
	)
	input := Symbolize(g, tokenizer)
	if SymbolString(input) != "n+x$" {
		t.Errorf("expected input n+x$, have %s", SymbolString(input))
	}
	if !input[2].IsForeign() || input[2].Serial() >= 0 {
		t.Errorf("expected x to be a foreign terminal, is %v/%d", input[2], input[2].Serial())
	}
	if input[0] != g.Terminal(scanner.Int) || !input[3].IsEOF() {
		t.Errorf("expected input to consist of grammar symbols")
	}
	if len(Terminate(g, input)) != 4 || len(Terminate(g, input[:3])) != 4 {
		t.Errorf("expected Terminate to append $ exactly once")
	}
}

func TestSymbolSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.lr")
	defer teardown()
	//
	g := makeLLGrammar(t)
	n, plus := g.Terminal(scanner.Int), g.Terminal('+')
	S := NewSymbolSet(g.Epsilon(), n, g.EOF(), g.NonTerminal("T"), plus)
	if S.String() != "{ + n $ T ε }" {
		t.Errorf("unexpected set order: %v", S)
	}
	if S.Add(n) || !S.Add(g.Terminal('(')) || S.Size() != 6 {
		t.Errorf("expected Add to report changes only, set is %v", S)
	}
	W := S.Without(g.Epsilon())
	if W.Contains(g.Epsilon()) || !S.Contains(g.Epsilon()) {
		t.Errorf("expected Without to leave the original set untouched")
	}
	if !S.Copy().Equals(S) || S.Equals(W) {
		t.Errorf("expected copy to equal original")
	}
}
