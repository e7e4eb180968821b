package lr

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/parsetab"
	"github.com/npillmayer/parsetab/lr/scanner"
)

// === Symbols ===============================================================

// SymbolKind tags a grammar symbol.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	TerminalSymbol SymbolKind = iota
	NonTerminalSymbol
	EpsilonSymbol
	EOFSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalSymbol:
		return "terminal"
	case NonTerminalSymbol:
		return "non-terminal"
	case EpsilonSymbol:
		return "epsilon"
	case EOFSymbol:
		return "eof"
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// EOFType is the token type of the end-of-input marker.
const EOFType = parsetab.TokType(scanner.EOF)

// Symbol is a grammar symbol. Symbols are owned by a grammar and compared by
// identity.
type Symbol struct {
	Name   string
	Value  parsetab.TokType // token type for terminals
	kind   SymbolKind
	serial int // row/column index within the symbol's class; -1 for foreign terminals
}

// Kind returns the symbol's tag.
func (A *Symbol) Kind() SymbolKind {
	return A.kind
}

// IsTerminal is true for terminals, including the end-of-input marker.
func (A *Symbol) IsTerminal() bool {
	return A.kind == TerminalSymbol || A.kind == EOFSymbol
}

// IsNonTerminal is true for non-terminals.
func (A *Symbol) IsNonTerminal() bool {
	return A.kind == NonTerminalSymbol
}

// IsEpsilon is true for the epsilon pseudo-symbol.
func (A *Symbol) IsEpsilon() bool {
	return A.kind == EpsilonSymbol
}

// IsEOF is true for the end-of-input marker.
func (A *Symbol) IsEOF() bool {
	return A.kind == EOFSymbol
}

// IsForeign is true for terminals which do not belong to any grammar.
// They are created for input tokens a grammar does not know.
func (A *Symbol) IsForeign() bool {
	return A.kind == TerminalSymbol && A.serial < 0
}

// TokenType returns the token type of a terminal.
func (A *Symbol) TokenType() parsetab.TokType {
	return A.Value
}

// Serial returns the index of a symbol within its class (terminals or
// non-terminals). The end-of-input marker is the last terminal.
func (A *Symbol) Serial() int {
	return A.serial
}

func (A *Symbol) String() string {
	if A == nil {
		return "<nil>"
	}
	return A.Name
}

// === Rules =================================================================

// Rule is a grammar production. Rules are immutable once the grammar is built.
type Rule struct {
	Serial int     // number of the rule, as reported in parse traces
	LHS    *Symbol // left hand side non-terminal
	rhs    []*Symbol
}

// RHS returns the right hand side symbols of a rule. It is empty for epsilon
// productions. Clients must not modify the slice.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// Len returns the number of symbols on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEps is true for epsilon productions.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(r.LHS.Name)
	b.WriteString(" ➞")
	if r.IsEps() {
		b.WriteString(" ε")
	}
	for _, A := range r.rhs {
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	return b.String()
}

// === Grammar ===============================================================

// Grammar is a context free grammar. Create one using a GrammarBuilder.
// The left hand side of the first rule is the start symbol.
type Grammar struct {
	Name         string
	rules        []*Rule
	terminals    []*Symbol // end-of-input marker is last
	nonterminals []*Symbol
	ntByName     map[string]*Symbol
	tByType      map[parsetab.TokType]*Symbol
	rulesFor     map[*Symbol][]*Rule
	epsilon      *Symbol
	eof          *Symbol
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:     name,
		ntByName: make(map[string]*Symbol),
		tByType:  make(map[parsetab.TokType]*Symbol),
		rulesFor: make(map[*Symbol][]*Rule),
		epsilon:  &Symbol{Name: "ε", kind: EpsilonSymbol},
		eof:      &Symbol{Name: "$", Value: EOFType, kind: EOFSymbol},
	}
}

// Rule returns the rule with the given serial number, or nil.
func (g *Grammar) Rule(serial int) *Rule {
	if len(g.rules) == 0 {
		return nil
	}
	i := serial - g.rules[0].Serial
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all rules in order of their serial numbers.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// RuleCount returns the number of rules.
func (g *Grammar) RuleCount() int {
	return len(g.rules)
}

// RulesFor returns the rules with left hand side A.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	return g.rulesFor[A]
}

// StartRule returns the first rule of the grammar.
func (g *Grammar) StartRule() *Rule {
	return g.rules[0]
}

// Start returns the start symbol.
func (g *Grammar) Start() *Symbol {
	return g.rules[0].LHS
}

// EOF returns the end-of-input marker.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// Epsilon returns the epsilon pseudo-symbol.
func (g *Grammar) Epsilon() *Symbol {
	return g.epsilon
}

// Terminal returns the terminal for a token type, or nil.
func (g *Grammar) Terminal(tokval parsetab.TokType) *Symbol {
	if tokval == EOFType {
		return g.eof
	}
	return g.tByType[tokval]
}

// NonTerminal returns a non-terminal by name, or nil.
func (g *Grammar) NonTerminal(name string) *Symbol {
	return g.ntByName[name]
}

// Terminals returns all terminals ordered by serial, end-of-input marker last.
func (g *Grammar) Terminals() []*Symbol {
	return append([]*Symbol(nil), g.terminals...)
}

// NonTerminals returns all non-terminals ordered by serial.
func (g *Grammar) NonTerminals() []*Symbol {
	return append([]*Symbol(nil), g.nonterminals...)
}

// EachTerminal calls a mapper function for every terminal (including the
// end-of-input marker) and collects the results.
func (g *Grammar) EachTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.terminals {
		r = append(r, mapper(A))
	}
	return r
}

// EachNonTerminal calls a mapper function for every non-terminal and
// collects the results.
func (g *Grammar) EachNonTerminal(mapper func(N *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, N := range g.nonterminals {
		r = append(r, mapper(N))
	}
	return r
}

// EachSymbol calls a mapper function for every terminal, then for every
// non-terminal.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	r := g.EachTerminal(mapper)
	return append(r, g.EachNonTerminal(mapper)...)
}

// Symbolize maps an input token to a terminal of g. Tokens g does not know
// are mapped to a foreign terminal, named after the token's lexeme, for which
// no table entry will ever exist.
func (g *Grammar) Symbolize(token parsetab.Token) *Symbol {
	if A := g.Terminal(token.TokType()); A != nil {
		return A
	}
	tracer().Debugf("token %q/%d is not a terminal of grammar %s", token.Lexeme(),
		token.TokType(), g.Name)
	return &Symbol{
		Name:   token.Lexeme(),
		Value:  token.TokType(),
		kind:   TerminalSymbol,
		serial: -1,
	}
}

// Dump is a debugging helper, tracing all the rules at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------")
}

// === Grammar Builder =======================================================

// GrammarBuilder is a helper object to construct a grammar, rule by rule.
//
//    b := NewGrammarBuilder("G")
//    b.LHS("A").N("B").T("a", 1).End()  // A ➞ B a
//    b.LHS("B").Epsilon()               // B ➞
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	g      *Grammar
	serial int
	errs   []error
}

// BuilderOption configures a grammar builder.
type BuilderOption func(b *GrammarBuilder)

// FirstRuleSerial sets the number of the first rule. Subsequent rules are
// numbered consecutively. Default is 0.
func FirstRuleSerial(n int) BuilderOption {
	return func(b *GrammarBuilder) {
		b.serial = n
	}
}

// NewGrammarBuilder creates a builder for a grammar with the given name.
func NewGrammarBuilder(name string, opts ...BuilderOption) *GrammarBuilder {
	b := &GrammarBuilder{g: newGrammar(name)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RuleBuilder collects the right hand side of a rule. It is returned by
// GrammarBuilder.LHS.
type RuleBuilder struct {
	b    *GrammarBuilder
	rule *Rule
}

// LHS starts a new rule with left hand side non-terminal name.
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{
		b:    b,
		rule: &Rule{LHS: b.nonterminal(name)},
	}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.b.nonterminal(name))
	return rb
}

// T appends a terminal with a token type to the right hand side.
func (rb *RuleBuilder) T(name string, tokval parsetab.TokType) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.b.terminal(name, tokval))
	return rb
}

// End completes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	r := rb.rule
	r.Serial = rb.b.serial
	rb.b.serial++
	rb.b.g.rules = append(rb.b.g.rules, r)
	rb.b.g.rulesFor[r.LHS] = append(rb.b.g.rulesFor[r.LHS], r)
	return r
}

// Epsilon completes an epsilon production. Symbols collected so far are
// dropped.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = nil
	return rb.End()
}

func (b *GrammarBuilder) nonterminal(name string) *Symbol {
	if N, ok := b.g.ntByName[name]; ok {
		return N
	}
	N := &Symbol{
		Name:   name,
		kind:   NonTerminalSymbol,
		serial: len(b.g.nonterminals),
	}
	b.g.nonterminals = append(b.g.nonterminals, N)
	b.g.ntByName[name] = N
	return N
}

func (b *GrammarBuilder) terminal(name string, tokval parsetab.TokType) *Symbol {
	if tokval == EOFType {
		return b.g.eof
	}
	if A, ok := b.g.tByType[tokval]; ok {
		if A.Name != name {
			b.errs = append(b.errs, fmt.Errorf("token type %d used for terminals %q and %q",
				tokval, A.Name, name))
		}
		return A
	}
	A := &Symbol{
		Name:   name,
		Value:  tokval,
		kind:   TerminalSymbol,
		serial: len(b.g.terminals),
	}
	b.g.terminals = append(b.g.terminals, A)
	b.g.tByType[tokval] = A
	return A
}

// Grammar returns the grammar under construction. It checks the grammar for
// consistency: it must contain at least one rule and every non-terminal must
// occur as the left hand side of some rule.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	g := b.g
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("grammar %s: %w", g.Name, b.errs[0])
	}
	if len(g.rules) == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", g.Name)
	}
	for _, N := range g.nonterminals {
		if len(g.rulesFor[N]) == 0 {
			return nil, fmt.Errorf("grammar %s: non-terminal %s has no rules", g.Name, N)
		}
	}
	if len(g.terminals) == 0 || g.terminals[len(g.terminals)-1] != g.eof {
		g.eof.serial = len(g.terminals)
		g.terminals = append(g.terminals, g.eof)
	}
	g.Dump()
	return g, nil
}
