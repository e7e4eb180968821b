package ll

import (
	"fmt"

	"github.com/npillmayer/parsetab/lr"
)

// Parser is an LL(1) table-driven parser. Create one with NewParser.
type Parser struct {
	G     *lr.Grammar
	table *Table
}

// NewParser creates a predictive parser for a prediction table.
func NewParser(table *Table) *Parser {
	return &Parser{
		G:     table.Grammar(),
		table: table,
	}
}

// Trace starts a parse of input. The end-of-input marker is appended to input
// if it is missing. The run performs one step per call of Run.Next.
func (p *Parser) Trace(input []*lr.Symbol) *Run {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	return &Run{
		p:     p,
		stack: []*lr.Symbol{p.G.EOF(), p.G.Start()},
		input: lr.Terminate(p.G, input),
	}
}

// Parse runs a parse of input to its end. It returns true if the input has
// been accepted, otherwise the error which stopped the parse.
func (p *Parser) Parse(input []*lr.Symbol) (bool, error) {
	run := p.Trace(input)
	for run.Next() {
		tracer().Debugf("%v", run.Step())
	}
	return run.Accepted(), run.Err()
}

// Run is a single parse. It produces the parse trace lazily and cannot be
// restarted. Usage:
//
//	for run.Next() {
//		step := run.Step()
//		...
//	}
//	accepted, err := run.Accepted(), run.Err()
//
type Run struct {
	p        *Parser
	stack    []*lr.Symbol // bottom is the end-of-input marker
	input    []*lr.Symbol
	pos      int // index of lookahead in input
	step     lr.Step
	done     bool
	accepted bool
	err      error
}

// Next performs the next parse step. It returns false after the run has
// accepted its input or stopped at an error.
func (run *Run) Next() bool {
	if run.done {
		return false
	}
	X := run.stack[len(run.stack)-1]
	a := run.input[run.pos]
	run.step = lr.Step{
		Stack: lr.SymbolString(run.stack),
		Input: lr.SymbolString(run.input[run.pos:]),
	}
	switch {
	case X.IsEOF() && a.IsEOF():
		run.step.Kind = lr.StepAccept
		run.accepted, run.done = true, true
	case X.IsTerminal():
		if X != a {
			run.fail(fmt.Errorf("%w: expected %v, have %v at position %d", lr.ErrSyntax,
				X, a, run.pos))
			break
		}
		run.step.Kind = lr.StepMatch
		run.stack = run.stack[:len(run.stack)-1]
		run.pos++
	default:
		rule, ok := run.p.table.Rule(X, a)
		if !ok {
			run.fail(fmt.Errorf("%w: no prediction for %v with lookahead %v at position %d",
				lr.ErrSyntax, X, a, run.pos))
			break
		}
		run.step.Kind = lr.StepPredict
		run.step.Rule = rule.Serial
		run.stack = run.stack[:len(run.stack)-1]
		rhs := rule.RHS()
		for i := len(rhs) - 1; i >= 0; i-- {
			run.stack = append(run.stack, rhs[i])
		}
	}
	return true
}

func (run *Run) fail(err error) {
	tracer().Infof("%v", err)
	run.step.Kind = lr.StepError
	run.err, run.done = err, true
}

// Step returns the step performed by the last call to Next.
func (run *Run) Step() lr.Step {
	return run.step
}

// Accepted is true if the run has accepted its input.
func (run *Run) Accepted() bool {
	return run.accepted
}

// Err returns the error which stopped the run, if any.
func (run *Run) Err() error {
	return run.err
}
