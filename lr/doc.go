/*
Package lr implements grammars, grammar analysis and the construction of
canonical LR(1) parser tables.
The predictive LL(1) table builder in sub-package ll uses the grammar model
and the FIRST/FOLLOW analysis of this package, too.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token type. Grammars may contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S'").N("E").End()                // S' ➞ E
    b.LHS("E").N("E").T("+", '+').N("T").End() // E  ➞ E + T
    b.LHS("E").N("T").End()                 // E  ➞ T
    b.LHS("T").T("n", scanner.Int).End()    // T  ➞ n
    g, err := b.Grammar()

Rules are numbered in the order they are added, starting at 0. Option
FirstRuleSerial changes the number of the first rule, e.g. for grammars
whose rule numbers are part of a textbook presentation. Every grammar owns
an end-of-input terminal "$" and an epsilon pseudo-symbol "ε".

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Analysis(g) computes
FIRST and FOLLOW sets as fixed points over the grammar's rules.

    ga := lr.Analysis(g)
    ga.Grammar().EachNonTerminal(
        func(N *Symbol) interface{} {
            fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N))
            return nil
        })

Parser Construction

Using grammar analysis as input, the canonical collection of LR(1) item sets
is built by closure and goto operations. Together with its transitions this
forms the characteristic finite state machine (CFSM), from which GOTO and
ACTION tables are derived. The CFSM is made available to clients for
debugging purposes; it can be exported to Graphviz's Dot-format.

    lrgen := lr.NewTableGenerator(ga)
    lrgen.CreateTables()
    if lrgen.HasConflicts { ... }

Package lr1 contains a driver using these tables.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parsetab.lr'.
func tracer() tracing.Trace {
	return tracing.Select("parsetab.lr")
}
