/*
Package ll provides an LL(1) predictive parser. Clients use the grammar
analysis of package lr to create a prediction table, and the parser of this
package walks input symbols through the table, leftmost derivation first.

Usage

	ga := lr.Analysis(g)          // FIRST and FOLLOW sets
	llgen := ll.NewTableGenerator(ga)
	llgen.CreateTable()
	if llgen.HasConflicts { ... }  // grammar is not LL(1)

	p := ll.NewParser(llgen.Table())
	run := p.Trace(input)          // input is a slice of grammar symbols
	for run.Next() {
		fmt.Println(run.Step())
	}

Every step of a run reports the parser's configuration before the step's action
has been performed: the symbol stack (bottom first, the end marker at the
bottom), the remaining input and the action taken.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parsetab.ll'.
func tracer() tracing.Trace {
	return tracing.Select("parsetab.ll")
}
