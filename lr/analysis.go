package lr

// GrammarAnalysis holds the FIRST and FOLLOW sets of a grammar.
// Create one with Analysis(g).
type GrammarAnalysis struct {
	g      *Grammar
	first  map[*Symbol]SymbolSet // FIRST(N) for non-terminals N, may include ε
	follow map[*Symbol]SymbolSet // FOLLOW(N) for non-terminals N
}

// Analysis analyses a grammar, computing FIRST and FOLLOW for every
// non-terminal.
func Analysis(g *Grammar) *GrammarAnalysis {
	ga := &GrammarAnalysis{
		g:      g,
		first:  make(map[*Symbol]SymbolSet, len(g.nonterminals)),
		follow: make(map[*Symbol]SymbolSet, len(g.nonterminals)),
	}
	for _, N := range g.nonterminals {
		ga.first[N] = NewSymbolSet()
		ga.follow[N] = NewSymbolSet()
	}
	ga.computeFirst()
	ga.computeFollow()
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *GrammarAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(A). For terminals this is {A}, for ε it is {ε}.
func (ga *GrammarAnalysis) First(A *Symbol) SymbolSet {
	switch A.Kind() {
	case NonTerminalSymbol:
		if F, ok := ga.first[A]; ok {
			return F.Copy()
		}
		return NewSymbolSet()
	default:
		return NewSymbolSet(A)
	}
}

// Follow returns FOLLOW(N) for a non-terminal N. For other symbols the
// result is empty.
func (ga *GrammarAnalysis) Follow(N *Symbol) SymbolSet {
	if F, ok := ga.follow[N]; ok {
		return F.Copy()
	}
	return NewSymbolSet()
}

// DerivesEpsilon is true if N ⇒* ε.
func (ga *GrammarAnalysis) DerivesEpsilon(N *Symbol) bool {
	if N.IsEpsilon() {
		return true
	}
	return ga.first[N].Contains(ga.g.epsilon)
}

// FirstOfString computes FIRST(α) for a string of symbols. Symbols are scanned
// left to right: a terminal ends the scan, a non-terminal contributes its
// FIRST-set without ε and ends the scan unless it derives ε. If all of α may
// derive ε (in particular if α is empty), ε is included.
func (ga *GrammarAnalysis) FirstOfString(alpha []*Symbol) SymbolSet {
	result := NewSymbolSet()
	eps := ga.g.epsilon
	for _, X := range alpha {
		switch X.Kind() {
		case TerminalSymbol, EOFSymbol:
			result.Add(X)
			return result
		case NonTerminalSymbol:
			FX := ga.first[X]
			result.addAllExcept(FX, eps)
			if !FX.Contains(eps) {
				return result
			}
		case EpsilonSymbol:
			// transparent
		}
	}
	result.Add(eps)
	return result
}

// computeFirst iterates over all rules until no FIRST-set changes any more.
// This converges for rules referencing non-terminals defined further down.
func (ga *GrammarAnalysis) computeFirst() {
	changed, round := true, 0
	for changed {
		changed = false
		round++
		for _, r := range ga.g.rules {
			if ga.first[r.LHS].AddAll(ga.FirstOfString(r.rhs)) {
				changed = true
			}
		}
	}
	tracer().Debugf("FIRST-sets of %s stable after %d rounds", ga.g.Name, round)
	for _, N := range ga.g.nonterminals {
		tracer().Debugf("FIRST(%s) = %v", N, ga.first[N])
	}
}

// computeFollow applies the FOLLOW rules until no set changes any more:
//
//   (a) $ ∈ FOLLOW(S) for the start symbol S
//   (b) for A ➞ α B β:  FIRST(β)\{ε} ⊆ FOLLOW(B)
//   (c) for A ➞ α B β with β ⇒* ε:  FOLLOW(A) ⊆ FOLLOW(B)
//
func (ga *GrammarAnalysis) computeFollow() {
	eps := ga.g.epsilon
	ga.follow[ga.g.Start()].Add(ga.g.eof)
	changed, round := true, 0
	for changed {
		changed = false
		round++
		for _, r := range ga.g.rules {
			for i, B := range r.rhs {
				if !B.IsNonTerminal() {
					continue
				}
				Fbeta := ga.FirstOfString(r.rhs[i+1:])
				if ga.follow[B].addAllExcept(Fbeta, eps) {
					changed = true
				}
				if Fbeta.Contains(eps) && ga.follow[B].AddAll(ga.follow[r.LHS]) {
					changed = true
				}
			}
		}
	}
	tracer().Debugf("FOLLOW-sets of %s stable after %d rounds", ga.g.Name, round)
	for _, N := range ga.g.nonterminals {
		tracer().Debugf("FOLLOW(%s) = %v", N, ga.follow[N])
	}
}
