/*
Package parsetab constructs LL(1) and canonical LR(1) parser tables and drives
token streams through them, producing step-by-step parse traces.

Package structure is as follows:

■ lr: Package lr holds the grammar model, FIRST/FOLLOW analysis and the construction
of the canonical LR(1) collection together with ACTION and GOTO tables.

■ lr/ll: Package ll builds predictive LL(1) tables and contains the predictive
stack driver.

■ lr/lr1: Package lr1 contains the state-stack driver for canonical LR(1) tables.

■ lr/scanner: Package scanner defines the tokenizer interface, with a lexmachine
adapter in sub-package lexmach.

■ expr: Package expr defines the arithmetic-expression grammars used throughout,
plus ready-to-use parser pipelines.

■ cmd/exprtab: A command line tool printing parse traces and parser tables
for expressions.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetab
