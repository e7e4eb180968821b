package lr1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/parsetab/lr"
)

// Parser is an LR(1)-parser type. Create and initialize one with lr1.NewParser(...)
type Parser struct {
	G       *lr.Grammar
	gotoT   *lr.Table // GOTO table
	actionT *lr.Table // ACTION table
}

// NewParser creates an LR(1) parser. Tables are not modified by the parser and
// may be shared between parsers.
func NewParser(g *lr.Grammar, gotoTable *lr.Table, actionTable *lr.Table) *Parser {
	return &Parser{
		G:       g,
		gotoT:   gotoTable,
		actionT: actionTable,
	}
}

// Trace starts a parse of input in state 0. The end-of-input marker is
// appended to input if it is missing. The run performs one step per call of
// Run.Next.
func (p *Parser) Trace(input []*lr.Symbol) *Run {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	run := &Run{
		p:     p,
		stack: make([]int, 1, 64),
		input: input,
	}
	if p.G == nil || p.gotoT == nil || p.actionT == nil {
		tracer().Errorf("LR(1)-parser not initialized")
		run.pending = fmt.Errorf("LR(1)-parser not initialized")
		return run
	}
	run.input = lr.Terminate(p.G, input)
	return run
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
// restarted.
type Run struct {
	p        *Parser
	stack    []int // CFSM state IDs, state 0 at the bottom
	input    []*lr.Symbol
	pos      int   // index of lookahead in input
	pending  error // a reduce went wrong, next step reports the error
	step     lr.Step
	done     bool
	accepted bool
	err      error
}

// Next performs the next parse step. It returns false after the run has
// accepted its input or stopped at an error.
//
// A reduce step which underflows the stack or finds no GOTO entry is reported
// normally, followed by a separate error step.
func (run *Run) Next() bool {
	if run.done {
		return false
	}
	run.step = lr.Step{
		Stack: stackString(run.stack),
		Input: lr.SymbolString(run.input[run.pos:]),
	}
	if run.pending != nil {
		run.fail(run.pending)
		return true
	}
	s := run.stack[len(run.stack)-1] // TOS
	a := run.input[run.pos]
	action := run.p.actionT.Value(s, a)
	tracer().Debugf("action(%d,%v) = %s", s, a, lr.CellString(run.p.actionT, s, a))
	switch {
	case action == run.p.actionT.NullValue():
		run.fail(fmt.Errorf("%w: no action in state %d for %v at position %d", lr.ErrSyntax,
			s, a, run.pos))
	case action == lr.AcceptAction:
		run.step.Kind = lr.StepAccept
		run.accepted, run.done = true, true
	case action == lr.ShiftAction:
		next := run.p.gotoT.Value(s, a)
		if next == run.p.gotoT.NullValue() {
			run.fail(fmt.Errorf("%w: cannot shift %v in state %d", lr.ErrUndefinedGoto, a, s))
			break
		}
		run.step.Kind = lr.StepShift
		run.stack = append(run.stack, int(next))
		run.pos++
	case action >= 0:
		rule := run.p.G.Rule(int(action))
		run.step.Kind = lr.StepReduce
		run.step.Rule = int(action)
		run.reduce(rule)
	default:
		run.fail(fmt.Errorf("%w: invalid action %d in state %d", lr.ErrSyntax, action, s))
	}
	return true
}

// reduce pops the handle of rule off the stack and pushes the GOTO state for
// the rule's left hand side. Errors are left pending for the next step.
func (run *Run) reduce(rule *lr.Rule) {
	if rule == nil {
		run.pending = fmt.Errorf("%w: reduce by unknown rule %d", lr.ErrSyntax, run.step.Rule)
		return
	}
	tracer().Debugf("reduce %v", rule)
	n := rule.Len()
	if n >= len(run.stack) {
		run.stack = run.stack[:0]
		run.pending = fmt.Errorf("%w: reduce by %v", lr.ErrStackUnderflow, rule)
		return
	}
	run.stack = run.stack[:len(run.stack)-n]
	s := run.stack[len(run.stack)-1]
	next := run.p.gotoT.Value(s, rule.LHS)
	if next == run.p.gotoT.NullValue() {
		run.pending = fmt.Errorf("%w: state %d on %v", lr.ErrUndefinedGoto, s, rule.LHS)
		return
	}
	run.stack = append(run.stack, int(next))
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

func stackString(stack []int) string {
	ids := make([]string, len(stack))
	for i, id := range stack {
		ids[i] = strconv.Itoa(id)
	}
	return strings.Join(ids, " ")
}
