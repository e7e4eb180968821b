/*
Package lr1 provides a canonical LR(1) parser. Clients have to use the tools
of package lr to prepare the necessary parse tables. The parser utilizes these
tables to create a right derivation in reverse for a given input.

Usage

Clients construct an augmented grammar, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("Sums")
	b.LHS("S'").N("E").End()                    // S' ➞ E
	b.LHS("E").N("E").T("+", '+').N("N").End()  // E  ➞ E + N
	b.LHS("E").N("N").End()                     // E  ➞ N
	b.LHS("N").T("n", scanner.Int).End()        // N  ➞ n
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	ga := lr.Analysis(g)
	lrgen := lr.NewTableGenerator(ga)
	lrgen.CreateTables()
	if lrgen.HasConflicts { ... }  // grammar is not LR(1)

Finally parse some input:

	p := lr1.NewParser(g, lrgen.GotoTable(), lrgen.ActionTable())
	accepted, err := p.Parse(lr.Symbolize(g, tokenizer))

or trace the parse step by step with p.Trace(…). Steps of an LR(1) run are
usually reported by their labels only: "shift", a rule number for a reduction,
"accept" or "error".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parsetab.lr'.
func tracer() tracing.Trace {
	return tracing.Select("parsetab.lr")
}
