package ll

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
	b := lr.NewGrammarBuilder("LL Expressions", lr.FirstRuleSerial(1))
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

func TestLLTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	llgen := NewTableGenerator(lr.Analysis(g))
	T := llgen.CreateTable()
	if llgen.HasConflicts {
		t.Errorf("expression grammar expected to be LL(1), has conflicts %v", llgen.Conflicts())
	}
	expected := map[string]map[string]int{
		"E": {"(": 1, "n": 1},
		"A": {"+": 2, "-": 3, ")": 4, "$": 4},
		"T": {"(": 5, "n": 5},
		"B": {"*": 6, "/": 7, "+": 8, "-": 8, ")": 8, "$": 8},
		"F": {"(": 9, "n": 10},
	}
	count := 0
	for _, A := range g.NonTerminals() {
		for _, a := range g.Terminals() {
			r, ok := T.Rule(A, a)
			p, want := expected[A.Name][a.Name]
			if want != ok {
				t.Errorf("T[%v,%v]: expected entry = %v, has entry = %v", A, a, want, ok)
				continue
			}
			if ok {
				count++
				if r.Serial != p {
					t.Errorf("T[%v,%v]: expected rule %d, have %d", A, a, p, r.Serial)
				}
			}
		}
	}
	if count != 17 || T.ValueCount() != 17 {
		t.Errorf("expected 17 table entries, have %d/%d", count, T.ValueCount())
	}
	if s := T.CellString(g.NonTerminal("B"), g.EOF()); s != "8" {
		t.Errorf("expected cell string for T[B,$] to be 8, is %q", s)
	}
}

func TestLLConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.ll")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("Left Recursive")
	b.LHS("E").N("E").T("+", '+').T("n", scanner.Int).End()
	b.LHS("E").T("n", scanner.Int).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	llgen := NewTableGenerator(lr.Analysis(g))
	T := llgen.CreateTable()
	if !llgen.HasConflicts || len(llgen.Conflicts()) != 1 {
		t.Fatalf("expected 1 conflict for left recursive grammar, have %v", llgen.Conflicts())
	}
	c := llgen.Conflicts()[0]
	if c.Rules != [2]int{0, 1} {
		t.Errorf("expected conflict between rules 0 and 1, is %v", c)
	}
	if r, _ := T.Rule(g.Start(), g.Terminal(scanner.Int)); r.Serial != 0 {
		t.Errorf("expected first rule to win the conflict, have rule %d", r.Serial)
	}
}

func TestLLTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	llgen := NewTableGenerator(lr.Analysis(g))
	p := NewParser(llgen.CreateTable())
	expected := []string{
		"$E\tn+n*n$\t1",
		"$AT\tn+n*n$\t5",
		"$ABF\tn+n*n$\t10",
		"$ABn\tn+n*n$\tmatch",
		"$AB\t+n*n$\t8",
		"$A\t+n*n$\t2",
		"$AT+\t+n*n$\tmatch",
		"$AT\tn*n$\t5",
		"$ABF\tn*n$\t10",
		"$ABn\tn*n$\tmatch",
		"$AB\t*n$\t6",
		"$ABF*\t*n$\tmatch",
		"$ABF\tn$\t10",
		"$ABn\tn$\tmatch",
		"$AB\t$\t8",
		"$A\t$\t4",
		"$\t$\taccept",
	}
	run := p.Trace(symbols(g, "n+n*n"))
	var trace []string
	for run.Next() {
		trace = append(trace, run.Step().String())
	}
	if !run.Accepted() || run.Err() != nil {
		t.Errorf("expected input to be accepted, error is %v", run.Err())
	}
	if strings.Join(trace, "\n") != strings.Join(expected, "\n") {
		t.Errorf("unexpected trace:\n%s", strings.Join(trace, "\n"))
	}
	if run.Next() {
		t.Errorf("expected finished run to stay finished")
	}
}

func TestLLErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	p := NewParser(NewTableGenerator(lr.Analysis(g)).CreateTable())
	for _, x := range []struct {
		input string
		last  string
		steps int
	}{
		{"n+", "$AT\t$\terror", 8},
		{")", "$E\t)$\terror", 1},
		{"", "$E\t$\terror", 1},
		{"n)", "$\t)$\terror", 7},
		{"n+x", "$AT\tx$\terror", 8},
	} {
		run := p.Trace(symbols(g, x.input))
		var last lr.Step
		steps, errcnt := 0, 0
		for run.Next() {
			last = run.Step()
			steps++
			if last.Kind == lr.StepError {
				errcnt++
			}
		}
		if last.String() != x.last || steps != x.steps || errcnt != 1 {
			t.Errorf("input %q: expected %d steps ending with %q, have %d ending with %q",
				x.input, x.steps, x.last, steps, last)
		}
		if run.Accepted() || !isSyntaxError(run.Err()) {
			t.Errorf("input %q: expected syntax error, have %v", x.input, run.Err())
		}
	}
}

func TestLLParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parsetab.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	p := NewParser(NewTableGenerator(lr.Analysis(g)).CreateTable())
	for _, input := range []string{"n", "(n)", "n-n/n", "((n+n))*n-n"} {
		if ok, err := p.Parse(symbols(g, input)); !ok || err != nil {
			t.Errorf("expected %q to be accepted, error is %v", input, err)
		}
	}
}

func isSyntaxError(err error) bool {
	return errors.Is(err, lr.ErrSyntax)
}
