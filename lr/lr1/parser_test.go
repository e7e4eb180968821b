package lr1

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/parsetab"
	"github.com/npillmayer/parsetab/lr"
	"github.com/npillmayer/parsetab/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeExprGrammar(t *testing.T) *lr.Grammar {
	b := lr.NewGrammarBuilder("LR Expressions")
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

func makeParser(t *testing.T, g *lr.Grammar) *Parser {
	lrgen := lr.NewTableGenerator(lr.Analysis(g))
	lrgen.CreateTables()
	if lrgen.HasConflicts {
		t.Fatalf("grammar %s expected to be LR(1), has conflicts %v", g.Name, lrgen.Conflicts())
	}
	return NewParser(g, lrgen.GotoTable(), lrgen.ActionTable())
}

// symbols maps every character of s to a terminal of g; 'n' is a number.
func symbols(g *lr.Grammar, s string) []*lr.Symbol {
	var input []*lr.Symbol
	for i, c := range s {
		typ := parsetab.TokType(c)
		if c == 'n' {
			typ = scanner.Int
		}
		tok := scanner.MakeDefaultToken(typ, string(c), parsetab.Span{uint64(i), uint64(i + 1)})
		input = append(input, g.Symbolize(tok))
	}
	return input
}

func labels(run *Run) string {
	var l []string
	for run.Next() {
		l = append(l, run.Step().Label())
	}
	return strings.Join(l, ",")
}

func TestLRLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	p := makeParser(t, g)
	for _, x := range []struct {
		input    string
		labels   string
		accepted bool
	}{
		{"n*n+n", "shift,8,6,shift,shift,8,4,3,shift,shift,8,6,1,accept", true},
		{"(n+n)*n", "shift,shift,8,6,3,shift,shift,8,6,1,shift,7,6,shift,shift,8,4,3,accept", true},
		{"n", "shift,8,6,3,accept", true},
		{"n+", "shift,8,6,3,shift,error", false},
		{")", "error", false},
		{"", "error", false},
		{"n?n", "shift,error", false},
	} {
		run := p.Trace(symbols(g, x.input))
		if l := labels(run); l != x.labels {
			t.Errorf("input %q: expected labels %s, have %s", x.input, x.labels, l)
		}
		if run.Accepted() != x.accepted {
			t.Errorf("input %q: expected accepted = %v", x.input, x.accepted)
		}
		if !x.accepted && !errors.Is(run.Err(), lr.ErrSyntax) {
			t.Errorf("input %q: expected syntax error, have %v", x.input, run.Err())
		}
	}
}

func TestLRSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	p := makeParser(t, g)
	run := p.Trace(symbols(g, "n"))
	if !run.Next() {
		t.Fatalf("expected run to have a first step")
	}
	if s := run.Step(); s.Stack != "0" || s.Input != "n$" || s.Kind != lr.StepShift {
		t.Errorf("expected first step to be shift in state 0, is %v", s)
	}
	run.Next()
	if s := run.Step(); !strings.HasPrefix(s.Stack, "0 ") || s.Input != "$" || s.Kind != lr.StepReduce {
		t.Errorf("expected second step to reduce with lookahead $, is %v", s)
	}
	if ok, err := p.Parse(symbols(g, "((n))/n-n")); !ok || err != nil {
		t.Errorf("expected input to be accepted, error is %v", err)
	}
}

// Tables of one grammar driven with the rules of another one provoke reduce
// errors which canonical tables never produce.
func TestLRReduceErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.lr")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("Single")
	b.LHS("S'").N("E").End()
	b.LHS("E").T("n", scanner.Int).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	lrgen := lr.NewTableGenerator(lr.Analysis(g))
	lrgen.CreateTables()
	//
	b = lr.NewGrammarBuilder("Long Handle")
	b.LHS("S'").N("E").End()
	b.LHS("E").T("n", scanner.Int).T("n", scanner.Int).T("n", scanner.Int).End()
	long, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(long, lrgen.GotoTable(), lrgen.ActionTable())
	run := p.Trace(symbols(long, "n"))
	if l := labels(run); l != "shift,1,error" {
		t.Errorf("expected stack underflow after reduce, have labels %s", l)
	}
	if !errors.Is(run.Err(), lr.ErrStackUnderflow) {
		t.Errorf("expected stack underflow error, have %v", run.Err())
	}
	//
	b = lr.NewGrammarBuilder("Other LHS")
	b.LHS("S'").N("E").End()
	b.LHS("X").T("n", scanner.Int).End()
	b.LHS("E").N("X").End()
	other, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p = NewParser(other, lrgen.GotoTable(), lrgen.ActionTable())
	run = p.Trace(symbols(other, "n"))
	if l := labels(run); l != "shift,1,error" {
		t.Errorf("expected undefined GOTO after reduce, have labels %s", l)
	}
	if !errors.Is(run.Err(), lr.ErrUndefinedGoto) {
		t.Errorf("expected undefined GOTO error, have %v", run.Err())
	}
}

func TestLRUninitialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.lr")
	defer teardown()
	//
	p := NewParser(nil, nil, nil)
	if ok, err := p.Parse(nil); ok || err == nil {
		t.Errorf("expected uninitialized parser to fail")
	}
}
