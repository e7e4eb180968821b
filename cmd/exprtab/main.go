/*
Command exprtab builds LL(1) and LR(1) parser tables for arithmetic
expressions and traces parses of input lines through them.

	exprtab ll "n+n*n"      # LL(1) trace: stack, input and action per line
	exprtab lr "n+n*n"      # LR(1) actions, one per line
	exprtab tables --dot cfsm.dot
	exprtab repl

Without an input argument, ll and lr read one line from standard input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'parsetab.cli'.
func tracer() tracing.Trace {
	return tracing.Select("parsetab.cli")
}

func main() {
	err := Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
