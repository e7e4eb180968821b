package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/parsetab/expr"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:     "ll [input]",
		Short:   "Trace an LL(1) parse of an expression",
		Example: `  exprtab ll "n+n*n"`,
		RunE:    runLL,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:     "lr [input]",
		Short:   "Trace an LR(1) parse of an expression",
		Example: `  echo "(n+n)*n" | exprtab lr`,
		RunE:    runLR,
	})
}

func runLL(cmd *cobra.Command, args []string) error {
	input, err := inputLine(args, os.Stdin)
	if err != nil {
		return err
	}
	r, err := expr.RunLL(input)
	if err != nil {
		return fmt.Errorf("cannot create LL(1) parser: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, step := range r.Steps {
		fmt.Fprintln(out, step.String())
	}
	logOutcome(r)
	return nil
}

func runLR(cmd *cobra.Command, args []string) error {
	input, err := inputLine(args, os.Stdin)
	if err != nil {
		return err
	}
	r, err := expr.RunLR(input)
	if err != nil {
		return fmt.Errorf("cannot create LR(1) parser: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, label := range r.Labels() {
		fmt.Fprintln(out, label)
	}
	logOutcome(r)
	return nil
}

// inputLine returns the command line arguments as input, or else the first
// line read from r.
func inputLine(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func logOutcome(r *expr.Result) {
	if r.Accepted {
		tracer().Infof("input accepted")
	} else {
		tracer().Infof("input rejected: %v", r.ParseErr)
	}
}
