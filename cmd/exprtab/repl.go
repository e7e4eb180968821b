package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/parsetab/expr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Parse expressions interactively with both parsers",
		Args:  cobra.NoArgs,
		RunE:  runREPL,
	})
}

func runREPL(cmd *cobra.Command, args []string) error {
	repl, err := readline.New("exprtab> ")
	if err != nil {
		return fmt.Errorf("cannot start REPL: %w", err)
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to exprtab")
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	fmt.Println("Good bye!")
	return nil
}

// eval parses a line with the LL(1) and the LR(1) parser and shows both traces.
func eval(line string) error {
	rll, err := expr.RunLL(line)
	if err != nil {
		return err
	}
	rlr, err := expr.RunLR(line)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"stack", "input", "action"}}
	for _, step := range rll.Steps {
		data = append(data, []string{step.Stack, step.Input, step.Label()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println("LR(1): " + strings.Join(rlr.Labels(), " "))
	for _, x := range []struct {
		name string
		r    *expr.Result
	}{{"LL(1)", rll}, {"LR(1)", rlr}} {
		if x.r.Accepted {
			pterm.Info.Println(x.name + " accepted")
		} else {
			pterm.Error.Println(x.name + " rejected: " + x.r.ParseErr.Error())
		}
	}
	return nil
}
