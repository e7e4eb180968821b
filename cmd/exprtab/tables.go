package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/parsetab/expr"
	"github.com/npillmayer/parsetab/lr"
	"github.com/npillmayer/parsetab/lr/ll"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tablesFlags = struct {
	dot  *string
	html *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Show grammars, FIRST/FOLLOW sets and parser tables",
		Example: `  exprtab tables
  exprtab tables --dot cfsm.dot --html expr`,
		Args: cobra.NoArgs,
		RunE: runTables,
	}
	tablesFlags.dot = cmd.Flags().String("dot", "", "export the LR(1) CFSM in GraphViz DOT format to a file")
	tablesFlags.html = cmd.Flags().String("html", "", "export the LR(1) tables to <prefix>_action.html and <prefix>_goto.html")
	rootCmd.AddCommand(cmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	llgen, err := expr.LLTables()
	if err != nil {
		return fmt.Errorf("cannot create LL(1) tables: %w", err)
	}
	lrgen, err := expr.LRTables()
	if err != nil {
		return fmt.Errorf("cannot create LR(1) tables: %w", err)
	}
	//
	pterm.DefaultSection.Println("LL(1)")
	g := llgen.Table().Grammar()
	showGrammar(g)
	showSets(lr.Analysis(g))
	showLLTable(llgen)
	//
	pterm.DefaultSection.Println("LR(1)")
	g = lrgen.Grammar()
	showGrammar(g)
	showSets(lr.Analysis(g))
	showLRTables(lrgen)
	//
	if *tablesFlags.dot != "" {
		if err := exportDot(lrgen, *tablesFlags.dot); err != nil {
			return err
		}
	}
	if *tablesFlags.html != "" {
		if err := exportHTML(lrgen, *tablesFlags.html); err != nil {
			return err
		}
	}
	return nil
}

func showGrammar(g *lr.Grammar) {
	list := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: g.Name}}
	for _, N := range g.NonTerminals() {
		list = append(list, pterm.LeveledListItem{Level: 1, Text: N.Name})
		for _, r := range g.RulesFor(N) {
			list = append(list, pterm.LeveledListItem{
				Level: 2,
				Text:  fmt.Sprintf("%2d: %v", r.Serial, r),
			})
		}
	}
	root := pterm.NewTreeFromLeveledList(list)
	pterm.DefaultTree.WithRoot(root).Render()
}

func showSets(ga *lr.GrammarAnalysis) {
	data := pterm.TableData{{"", "FIRST", "FOLLOW"}}
	for _, N := range ga.Grammar().NonTerminals() {
		data = append(data, []string{N.Name, ga.First(N).String(), ga.Follow(N).String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func showLLTable(llgen *ll.TableGenerator) {
	T := llgen.Table()
	g := T.Grammar()
	header := []string{""}
	for _, a := range g.Terminals() {
		header = append(header, a.Name)
	}
	data := pterm.TableData{header}
	for _, A := range g.NonTerminals() {
		row := []string{A.Name}
		for _, a := range g.Terminals() {
			row = append(row, T.CellString(A, a))
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	for _, c := range llgen.Conflicts() {
		pterm.Error.Println(c.String())
	}
}

// showLRTables shows ACTION and GOTO side by side: terminal columns hold the
// action, non-terminal columns the GOTO state.
func showLRTables(lrgen *lr.TableGenerator) {
	g := lrgen.Grammar()
	action, gototab := lrgen.ActionTable(), lrgen.GotoTable()
	header := []string{"state"}
	for _, a := range g.Terminals() {
		header = append(header, a.Name)
	}
	for _, N := range g.NonTerminals() {
		if N != g.Start() {
			header = append(header, N.Name)
		}
	}
	data := pterm.TableData{header}
	for id := 0; id < action.Rows(); id++ {
		row := []string{strconv.Itoa(id)}
		for _, a := range g.Terminals() {
			cell := lr.CellString(action, id, a)
			if cell == "s" {
				cell += lr.CellString(gototab, id, a)
			}
			row = append(row, cell)
		}
		for _, N := range g.NonTerminals() {
			if N != g.Start() {
				row = append(row, lr.CellString(gototab, id, N))
			}
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	for _, c := range lrgen.Conflicts() {
		pterm.Error.Println(c.String())
	}
	pterm.Info.Printf("CFSM has %d states and %d transitions\n", lrgen.CFSM().StateCount(),
		lrgen.CFSM().EdgeCount())
}

func exportDot(lrgen *lr.TableGenerator, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create DOT file: %w", err)
	}
	defer f.Close()
	if err := lrgen.CFSM().CFSM2GraphViz(f); err != nil {
		return fmt.Errorf("cannot write DOT file %s: %w", filename, err)
	}
	pterm.Info.Printf("CFSM exported to %s\n", filename)
	return nil
}

func exportHTML(lrgen *lr.TableGenerator, prefix string) error {
	for _, export := range []struct {
		suffix string
		write  func(*lr.TableGenerator, io.Writer)
	}{
		{"_action.html", lr.ActionTableAsHTML},
		{"_goto.html", lr.GotoTableAsHTML},
	} {
		filename := prefix + export.suffix
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("cannot create HTML file: %w", err)
		}
		export.write(lrgen, f)
		if err := f.Close(); err != nil {
			return fmt.Errorf("cannot write HTML file %s: %w", filename, err)
		}
		pterm.Info.Printf("table exported to %s\n", filename)
	}
	return nil
}
