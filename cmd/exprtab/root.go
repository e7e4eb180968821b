package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "exprtab",
	Short: "Build parser tables for arithmetic expressions and trace parses",
	Long: `exprtab provides two table-driven parsers for arithmetic expressions:
- an LL(1) predictive parser, printing the stack, the remaining input and
  the action of every step,
- a canonical LR(1) parser, printing the action of every step.
Input consists of + - * / ( ) and numbers, written as n or as digits.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// traceKeys are the tracers of this module.
var traceKeys = []string{"parsetab.lr", "parsetab.ll", "parsetab.scanner", "parsetab.cli"}

// setup installs a Go logger for tracing and sets the trace level given by
// flag.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("trace level is %s", *rootFlags.trace)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
