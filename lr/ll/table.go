package ll

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/parsetab/lr"
	"github.com/npillmayer/parsetab/lr/sparse"
	"github.com/npillmayer/schuko/gconf"
)

// Table is an LL(1) prediction table. Rows are non-terminals, columns are
// terminals, and every non-empty cell holds the serial number of the rule to
// predict. Tables are immutable once created and may be shared between
// parser runs.
type Table struct {
	g      *lr.Grammar
	matrix *sparse.IntMatrix
}

func newTable(g *lr.Grammar) *Table {
	return &Table{
		g: g,
		matrix: sparse.NewIntMatrix(len(g.NonTerminals()), len(g.Terminals()),
			sparse.DefaultNullValue),
	}
}

// Grammar returns the grammar the table has been built for.
func (t *Table) Grammar() *lr.Grammar {
	return t.g
}

// NullValue is the value of empty (error) cells.
func (t *Table) NullValue() int32 {
	return t.matrix.NullValue()
}

// Value returns the primary entry for non-terminal A and terminal a, or
// NullValue. Foreign terminals always yield NullValue.
func (t *Table) Value(A, a *lr.Symbol) int32 {
	v, _ := t.Values(A, a)
	return v
}

// Values returns both entries of a cell. The second one is NullValue unless
// the cell holds a conflict.
func (t *Table) Values(A, a *lr.Symbol) (int32, int32) {
	if !A.IsNonTerminal() || !a.IsTerminal() || a.IsForeign() {
		return t.matrix.NullValue(), t.matrix.NullValue()
	}
	return t.matrix.Values(A.Serial(), a.Serial())
}

// Rule returns the rule to predict for non-terminal A on lookahead a.
func (t *Table) Rule(A, a *lr.Symbol) (*lr.Rule, bool) {
	v := t.Value(A, a)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	r := t.g.Rule(int(v))
	return r, r != nil
}

// ValueCount returns the number of non-empty cells.
func (t *Table) ValueCount() int {
	return t.matrix.ValueCount()
}

// CellString renders a cell for display: the rule number, two numbers
// separated by a slash for a conflict, or the empty string.
func (t *Table) CellString(A, a *lr.Symbol) string {
	v1, v2 := t.Values(A, a)
	if v1 == t.NullValue() {
		return ""
	} else if v2 == t.NullValue() {
		return strconv.Itoa(int(v1))
	}
	return strconv.Itoa(int(v1)) + "/" + strconv.Itoa(int(v2))
}

// --- Table generator -------------------------------------------------------

// TableGenerator constructs an LL(1) prediction table from a grammar
// analysis.
type TableGenerator struct {
	ga           *lr.GrammarAnalysis
	table        *Table
	conflicts    []Conflict
	HasConflicts bool
}

// Conflict describes a table cell claimed by two rules. The rule entered first
// is the one the parser uses.
type Conflict struct {
	NonTerminal *lr.Symbol
	Terminal    *lr.Symbol
	Rules       [2]int
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict for %v on %v: rules %d and %d", c.NonTerminal, c.Terminal,
		c.Rules[0], c.Rules[1])
}

// NewTableGenerator creates a table generator for an analysed grammar.
func NewTableGenerator(ga *lr.GrammarAnalysis) *TableGenerator {
	return &TableGenerator{ga: ga}
}

// Table returns the prediction table. CreateTable has to be called first.
func (llgen *TableGenerator) Table() *Table {
	if llgen.table == nil {
		tracer().Errorf("LL(1) table not yet initialized")
	}
	return llgen.table
}

// Conflicts returns the conflicts found while creating the table.
func (llgen *TableGenerator) Conflicts() []Conflict {
	return append([]Conflict(nil), llgen.conflicts...)
}

// CreateTable fills the prediction table. For every rule A ➞ α with number p:
//
//   T[A,a] = p  for every terminal a ∈ FIRST(α)
//   T[A,b] = p  for every b ∈ FOLLOW(A), if α ⇒* ε
//
// Cells no rule claims stay empty, i.e. denote errors.
func (llgen *TableGenerator) CreateTable() *Table {
	g := llgen.ga.Grammar()
	eps := g.Epsilon()
	T := newTable(g)
	llgen.conflicts = nil
	for _, r := range g.Rules() {
		F := llgen.ga.FirstOfString(r.RHS())
		for _, a := range F.Symbols() {
			if a.IsTerminal() {
				llgen.enter(T, r.LHS, a, r.Serial)
			}
		}
		if F.Contains(eps) {
			for _, b := range llgen.ga.Follow(r.LHS).Symbols() {
				llgen.enter(T, r.LHS, b, r.Serial)
			}
		}
	}
	tracer().Infof("LL(1) table for %s has %d entries", g.Name, T.ValueCount())
	llgen.table = T
	llgen.HasConflicts = len(llgen.conflicts) > 0
	return T
}

func (llgen *TableGenerator) enter(T *Table, A, a *lr.Symbol, p int) {
	v1, v2 := T.matrix.Values(A.Serial(), a.Serial())
	if v1 == T.NullValue() {
		tracer().Debugf("T[%v,%v] = %d", A, a, p)
		T.matrix.Set(A.Serial(), a.Serial(), int32(p))
		return
	}
	if v1 == int32(p) || v2 == int32(p) {
		return
	}
	c := Conflict{NonTerminal: A, Terminal: a, Rules: [2]int{int(v1), p}}
	tracer().Infof("%v", c)
	llgen.conflicts = append(llgen.conflicts, c)
	if gconf.GetBool("panic-on-table-conflict") {
		panic(fmt.Sprintf("grammar %s is not LL(1): %v", T.g.Name, c))
	}
	T.matrix.Add(A.Serial(), a.Serial(), int32(p))
}
