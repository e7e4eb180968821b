package lr

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/parsetab/lr/sparse"
	"github.com/npillmayer/schuko/gconf"
)

// Actions for parser action tables. Non-negative entries denote reduce
// actions by the rule with that number.
const (
	ShiftAction  = -1
	AcceptAction = -2
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Compilers: Principles, Techniques, and Tools" by Aho, Lam, Sethi
// and Ullman, Section 4.7.2, Constructing LR(1) Sets of Items.

// closure computes the closure of a single item.
func (ga *GrammarAnalysis) closure(i Item) *treeset.Set {
	S := newItemSet()
	S.Add(i)
	return ga.closureSet(S)
}

// closureSet computes the closure of an item set: for every item
// [A ➞ α · B β, a] and every rule B ➞ γ, the items [B ➞ · γ, b] are added
// for all terminals b in FIRST(βa). This is repeated until no item is added.
func (ga *GrammarAnalysis) closureSet(S *treeset.Set) *treeset.Set {
	C := newItemSet()
	work := make([]Item, 0, S.Size())
	for _, x := range S.Values() {
		C.Add(x)
		work = append(work, asItem(x))
	}
	for len(work) > 0 {
		item := work[len(work)-1]
		work = work[:len(work)-1]
		B := item.PeekSymbol()
		if B == nil || !B.IsNonTerminal() {
			continue
		}
		beta := item.Rest()[1:]
		betaA := make([]*Symbol, len(beta), len(beta)+1)
		copy(betaA, beta)
		lookaheads := ga.FirstOfString(append(betaA, item.la)).Symbols()
		for _, r := range ga.g.RulesFor(B) {
			for _, b := range lookaheads {
				i := StartItem(r, b)
				if !C.Contains(i) {
					C.Add(i)
					work = append(work, i)
				}
			}
		}
	}
	return C
}

// gotoSet collects the items of I with symbol A after the dot, advancing the
// dot over A. The result is not closed.
func (ga *GrammarAnalysis) gotoSet(I *treeset.Set, A *Symbol) *treeset.Set {
	gotoset := newItemSet()
	for _, x := range I.Values() {
		i := asItem(x)
		if i.PeekSymbol() == A {
			gotoset.Add(i.Advance())
		}
	}
	return gotoset
}

// gotoSetClosure computes goto(I, A). It is empty if no item of I has A after
// its dot.
func (ga *GrammarAnalysis) gotoSetClosure(I *treeset.Set, A *Symbol) *treeset.Set {
	gotoset := ga.gotoSet(I, A)
	if gotoset.Empty() {
		return gotoset
	}
	gclosure := ga.closureSet(gotoset)
	tracer().Debugf("goto(%s) --%s--> %s", itemSetString(I), A, itemSetString(gclosure))
	return gclosure
}

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar, i.e. a set of LR(1) items.
type CFSMState struct {
	ID     int          // serial ID of this state, in order of discovery
	items  *treeset.Set // configuration items within this state
	Accept bool         // does this state contain the completed start rule?
}

// CFSM edge between 2 states, directed and labelled with a grammar symbol.
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label *Symbol
}

// Create a state from an item set
func state(id int, iset *treeset.Set) *CFSMState {
	s := &CFSMState{ID: id}
	if iset == nil {
		s.items = newItemSet()
	} else {
		s.items = iset
	}
	return s
}

// Items returns the items of a state in canonical order.
func (s *CFSMState) Items() []Item {
	values := s.items.Values()
	items := make([]Item, len(values))
	for k, x := range values {
		items[k] = asItem(x)
	}
	return items
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	Dump(s.items)
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

func (s *CFSMState) containsCompletedStartRule(g *Grammar) bool {
	for _, x := range s.items.Values() {
		i := asItem(x)
		if i.rule == g.StartRule() && i.IsComplete() {
			return true
		}
	}
	return false
}

// We need this for the worklist of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(c1.ID, c2.ID)
}

// CFSM is the characteristic finite state machine for an LR(1) grammar, i.e.
// the canonical collection of LR(1) item sets together with the transitions
// between them. It will be constructed by a TableGenerator.
type CFSM struct {
	g      *Grammar
	states *arraylist.List         // all the states, indexed by ID
	index  map[string][]*CFSMState // states by item set digest
	edges  *arraylist.List         // all the edges between states
	S0     *CFSMState              // start state
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar) *CFSM {
	return &CFSM{
		g:      g,
		states: arraylist.New(),
		index:  make(map[string][]*CFSMState),
		edges:  arraylist.New(),
	}
}

// addState adds a state for an item set, if no equal state is present.
// It returns the state for the item set and a flag telling if it is new.
func (c *CFSM) addState(iset *treeset.Set) (*CFSMState, bool) {
	h := itemSetHash(iset)
	if s := c.findStateByItems(h, iset); s != nil {
		return s, false
	}
	s := state(c.states.Size(), iset)
	c.states.Add(s)
	c.index[h] = append(c.index[h], s)
	return s, true
}

// findStateByItems finds a CFSM state by the contained item set. Digests
// pre-select candidates; equality is always checked on the items.
func (c *CFSM) findStateByItems(h string, iset *treeset.Set) *CFSMState {
	for _, s := range c.index[h] {
		if itemSetsEqual(s.items, iset) {
			return s
		}
	}
	return nil
}

func (c *CFSM) addEdge(s0, s1 *CFSMState, sym *Symbol) {
	c.edges.Add(&cfsmEdge{from: s0, to: s1, label: sym})
}

// StateCount returns the number of states.
func (c *CFSM) StateCount() int {
	return c.states.Size()
}

// State returns the state with the given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	s, ok := c.states.Get(id)
	if !ok {
		return nil
	}
	return s.(*CFSMState)
}

// EdgeCount returns the number of transitions.
func (c *CFSM) EdgeCount() int {
	return c.edges.Size()
}

// Transition returns the target state of the transition from state id
// labelled with A.
func (c *CFSM) Transition(id int, A *Symbol) (*CFSMState, bool) {
	it := c.edges.Iterator()
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		if e.from.ID == id && e.label == A {
			return e.to, true
		}
	}
	return nil, false
}

func (c *CFSM) eachEdge(f func(e *cfsmEdge)) {
	it := c.edges.Iterator()
	for it.Next() {
		f(it.Value().(*cfsmEdge))
	}
}

func (c *CFSM) eachState(f func(s *CFSMState)) {
	it := c.states.Iterator()
	for it.Next() {
		f(it.Value().(*CFSMState))
	}
}

// CFSM2GraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) CFSM2GraphViz(w io.Writer) error {
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	c.eachState(func(s *CFSMState) {
		write(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.items)))
	})
	c.eachEdge(func(e *cfsmEdge) {
		write(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", e.from.ID, e.to.ID, e.label))
	})
	write("}\n")
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(S *treeset.Set) string {
	var b []byte
	for k, x := range S.Values() {
		if k > 0 {
			b = append(b, "\\l"...)
		}
		for _, r := range asItem(x).String() {
			switch r {
			case '{', '}', '|', '<', '>', '"':
				b = append(b, '\\')
			}
			b = append(b, string(r)...)
		}
	}
	return string(append(b, "\\l"...))
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct canonical LR(1) parser
// tables. Clients usually create a Grammar G, then a GrammarAnalysis for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an LR(1)-parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	ga           *GrammarAnalysis
	dfa          *CFSM
	gototable    *Table
	actiontable  *Table
	conflicts    []Conflict
	HasConflicts bool
}

// Conflict describes a table cell with two competing entries.
type Conflict struct {
	State   int
	Symbol  *Symbol
	Actions [2]int32
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict in state %d on %v: %s/%s", c.State, c.Symbol,
		actionString(c.Actions[0]), actionString(c.Actions[1]))
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *GrammarAnalysis) *TableGenerator {
	return &TableGenerator{
		g:  ga.Grammar(),
		ga: ga,
	}
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// The CFSM will be created, if it has not been constructed previously.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		lrgen.dfa = lrgen.buildCFSM(lrgen.symbolOrder())
	}
	return lrgen.dfa
}

// GotoTable returns the GOTO table. The tables have to be built by calling
// CreateTables() previously.
func (lrgen *TableGenerator) GotoTable() *Table {
	if lrgen.gototable == nil {
		tracer().P("lr", "gen").Errorf("tables not yet initialized")
	}
	return lrgen.gototable
}

// ActionTable returns the ACTION table. The tables have to be built by
// calling CreateTables() previously.
func (lrgen *TableGenerator) ActionTable() *Table {
	if lrgen.actiontable == nil {
		tracer().P("lr", "gen").Errorf("tables not yet initialized")
	}
	return lrgen.actiontable
}

// Conflicts returns the conflicts found while building the ACTION table.
func (lrgen *TableGenerator) Conflicts() []Conflict {
	return append([]Conflict(nil), lrgen.conflicts...)
}

// Grammar returns the grammar the tables are built for.
func (lrgen *TableGenerator) Grammar() *Grammar {
	return lrgen.g
}

// CreateTables creates the CFSM and the GOTO and ACTION tables.
func (lrgen *TableGenerator) CreateTables() {
	lrgen.CFSM()
	lrgen.gototable = lrgen.BuildGotoTable()
	lrgen.actiontable, lrgen.HasConflicts = lrgen.BuildLR1ActionTable()
}

// symbolOrder is the order in which goto-sets are explored: terminals, then
// non-terminals. It determines state numbering only.
func (lrgen *TableGenerator) symbolOrder() []*Symbol {
	return append(lrgen.g.Terminals(), lrgen.g.NonTerminals()...)
}

// buildCFSM constructs the canonical collection, starting with
// closure({[S' ➞ · S, $]}). States are processed in order of discovery.
func (lrgen *TableGenerator) buildCFSM(symbols []*Symbol) *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	G := lrgen.g
	cfsm := emptyCFSM(G)
	start := StartItem(G.StartRule(), G.EOF())
	tracer().Debugf("start item = %v", start)
	cfsm.S0, _ = cfsm.addState(lrgen.ga.closure(start))
	cfsm.S0.Dump()
	S := treeset.NewWith(stateComparator)
	S.Add(cfsm.S0)
	for !S.Empty() {
		s := S.Values()[0].(*CFSMState)
		S.Remove(s)
		for _, A := range symbols {
			gotoset := lrgen.ga.gotoSetClosure(s.items, A)
			if gotoset.Empty() {
				continue
			}
			snew, isNew := cfsm.addState(gotoset)
			if isNew {
				snew.Accept = snew.containsCompletedStartRule(G)
				S.Add(snew)
				snew.Dump()
			}
			cfsm.addEdge(s, snew, A)
		}
	}
	tracer().Infof("CFSM for %s has %d states and %d edges", G.Name, cfsm.StateCount(),
		cfsm.EdgeCount())
	return cfsm
}

// ===========================================================================

// BuildGotoTable builds the GOTO table. It contains the target state for
// every transition of the CFSM, with one column per terminal and per
// non-terminal. This is normally not called directly, but rather via
// CreateTables().
func (lrgen *TableGenerator) BuildGotoTable() *Table {
	cfsm := lrgen.CFSM()
	nT := len(lrgen.g.terminals)
	extent := nT + len(lrgen.g.nonterminals)
	tracer().Infof("GOTO table of size %d x %d", cfsm.StateCount(), extent)
	gototable := newTable("GOTO", cfsm.StateCount(), extent, func(A *Symbol) int {
		switch A.Kind() {
		case TerminalSymbol, EOFSymbol:
			return A.serial
		case NonTerminalSymbol:
			return nT + A.serial
		}
		return -1
	})
	cfsm.eachEdge(func(e *cfsmEdge) {
		gototable.set(e.from.ID, e.label, int32(e.to.ID))
	})
	return gototable
}

// BuildLR1ActionTable constructs the LR(1) ACTION table. This method is normally
// not called by clients, but rather via CreateTables().
//
// Every transition on a terminal produces a shift entry. Every complete item
// [A ➞ γ ·, a] produces a reduce entry for its rule in column a, except for
// the start rule, which produces the accept entry in column $.
// Cells with two different entries are conflicts: the first entry is kept
// as the primary value, the second one is stored alongside and the
// conflict is reported.
func (lrgen *TableGenerator) BuildLR1ActionTable() (*Table, bool) {
	cfsm := lrgen.CFSM()
	tracer().Infof("ACTION table of size %d x %d", cfsm.StateCount(), len(lrgen.g.terminals))
	actions := newTable("ACTION", cfsm.StateCount(), len(lrgen.g.terminals), func(A *Symbol) int {
		if A.IsTerminal() {
			return A.serial
		}
		return -1
	})
	lrgen.conflicts = nil
	cfsm.eachEdge(func(e *cfsmEdge) {
		if e.label.IsTerminal() {
			lrgen.enter(actions, e.from.ID, e.label, ShiftAction)
		}
	})
	cfsm.eachState(func(s *CFSMState) {
		for _, i := range s.Items() {
			if !i.IsComplete() {
				continue
			}
			if i.rule == lrgen.g.StartRule() {
				if i.la.IsEOF() {
					lrgen.enter(actions, s.ID, i.la, AcceptAction)
				}
				continue
			}
			tracer().Debugf("    reduce_%d entry in state %d @ %v for %v", i.rule.Serial,
				s.ID, i.la, i.rule)
			lrgen.enter(actions, s.ID, i.la, int32(i.rule.Serial))
		}
	})
	return actions, len(lrgen.conflicts) > 0
}

// enter puts an action into a table cell, detecting conflicts.
func (lrgen *TableGenerator) enter(actions *Table, stateID int, A *Symbol, v int32) {
	a1, a2 := actions.Values(stateID, A)
	if a1 == actions.NullValue() {
		actions.add(stateID, A, v)
		return
	}
	if a1 == v || a2 == v {
		return
	}
	c := Conflict{State: stateID, Symbol: A, Actions: [2]int32{a1, v}}
	tracer().Infof("%v", c)
	lrgen.conflicts = append(lrgen.conflicts, c)
	if gconf.GetBool("panic-on-table-conflict") {
		panic(fmt.Sprintf("grammar %s is not LR(1): %v", lrgen.g.Name, c))
	}
	actions.add(stateID, A, v)
}

// GotoTableAsHTML exports a GOTO-table in HTML-format.
func GotoTableAsHTML(lrgen *TableGenerator, w io.Writer) {
	if lrgen.gototable == nil {
		tracer().Errorf("GOTO table not yet created, cannot export to HTML")
		return
	}
	parserTableAsHTML(lrgen, "GOTO", lrgen.gototable, w)
}

// ActionTableAsHTML exports the LR(1) ACTION-table in HTML-format.
func ActionTableAsHTML(lrgen *TableGenerator, w io.Writer) {
	if lrgen.actiontable == nil {
		tracer().Errorf("ACTION table not yet created, cannot export to HTML")
		return
	}
	parserTableAsHTML(lrgen, "ACTION", lrgen.actiontable, w)
}

func parserTableAsHTML(lrgen *TableGenerator, tname string, table *Table, w io.Writer) {
	var symvec []*Symbol
	for _, A := range lrgen.symbolOrder() {
		if table.col(A) >= 0 {
			symvec = append(symvec, A)
		}
	}
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("%s table of size = %d<p>", tname, table.ValueCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range symvec {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", A))
	}
	io.WriteString(w, "</tr>\n")
	for id := 0; id < table.Rows(); id++ {
		io.WriteString(w, fmt.Sprintf("<tr><td>state %d</td>\n", id))
		for _, A := range symvec {
			io.WriteString(w, "<td>")
			io.WriteString(w, cellString(table, id, A, "&nbsp;"))
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}

func cellString(table *Table, id int, A *Symbol, empty string) string {
	str := func(v int32) string {
		if table.name == "ACTION" {
			return actionString(v)
		}
		return strconv.Itoa(int(v))
	}
	v1, v2 := table.Values(id, A)
	if v1 == table.NullValue() {
		return empty
	} else if v2 == table.NullValue() {
		return str(v1)
	}
	return str(v1) + "/" + str(v2)
}

// CellString renders the entry of a table cell for display: "s" for shift,
// "acc" for accept, "r<n>" for reduce actions and plain state numbers in
// GOTO tables. Empty cells yield the empty string.
func CellString(table *Table, stateID int, A *Symbol) string {
	return cellString(table, stateID, A, "")
}

// === Tables ================================================================

// Table is a parser table with one row per CFSM state.
type Table struct {
	name   string
	matrix *sparse.IntMatrix
	col    func(*Symbol) int // column for a symbol, -1 if none
}

func newTable(name string, rows, cols int, col func(*Symbol) int) *Table {
	return &Table{
		name:   name,
		matrix: sparse.NewIntMatrix(rows, cols, sparse.DefaultNullValue),
		col:    col,
	}
}

func (t *Table) add(i int, A *Symbol, val int32) {
	j := t.col(A)
	if j < 0 {
		panic(fmt.Sprintf("lr.Table.add() for symbol %v without column", A))
	}
	t.matrix.Add(i, j, val)
}

func (t *Table) set(i int, A *Symbol, val int32) {
	j := t.col(A)
	if j < 0 {
		panic(fmt.Sprintf("lr.Table.set() for symbol %v without column", A))
	}
	t.matrix.Set(i, j, val)
}

// NullValue is the value of empty table cells.
func (t *Table) NullValue() int32 {
	return t.matrix.NullValue()
}

// Value returns the primary entry for state i and symbol A. Symbols without a
// column, e.g. foreign terminals, yield NullValue.
func (t *Table) Value(i int, A *Symbol) int32 {
	j := t.col(A)
	if j < 0 {
		return t.matrix.NullValue()
	}
	return t.matrix.Value(i, j)
}

// Values returns both entries of a cell; the second one is NullValue unless
// the cell holds a conflict.
func (t *Table) Values(i int, A *Symbol) (int32, int32) {
	j := t.col(A)
	if j < 0 {
		return t.matrix.NullValue(), t.matrix.NullValue()
	}
	return t.matrix.Values(i, j)
}

// Rows returns the number of rows, i.e. the number of CFSM states.
func (t *Table) Rows() int {
	return t.matrix.M()
}

// ValueCount returns the number of non-empty cells.
func (t *Table) ValueCount() int {
	return t.matrix.ValueCount()
}

// actionString is a short helper to stringify an action table entry.
func actionString(v int32) string {
	switch {
	case v == AcceptAction:
		return "acc"
	case v == ShiftAction:
		return "s"
	case v >= 0:
		return fmt.Sprintf("r%d", v)
	}
	return "<none>"
}
