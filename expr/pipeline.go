package expr

import (
	"github.com/npillmayer/parsetab/lr"
)

// Result is the outcome of parsing an input line: the complete trace, and
// whether the input has been accepted. ParseErr tells why a parse stopped
// short of accepting.
type Result struct {
	Steps    []lr.Step
	Accepted bool
	ParseErr error
}

// Labels returns the action labels of all steps.
func (r *Result) Labels() []string {
	labels := make([]string, len(r.Steps))
	for i, step := range r.Steps {
		labels[i] = step.Label()
	}
	return labels
}

// stepper is what LL(1) and LR(1) runs have in common.
type stepper interface {
	Next() bool
	Step() lr.Step
	Accepted() bool
	Err() error
}

func collect(run stepper) *Result {
	r := &Result{}
	for run.Next() {
		r.Steps = append(r.Steps, run.Step())
	}
	r.Accepted, r.ParseErr = run.Accepted(), run.Err()
	return r
}

// RunLL tokenizes an input line and parses it with the LL(1) parser. An error
// is returned if the parser could not be set up; syntax errors are part of the
// result.
func RunLL(input string) (*Result, error) {
	p, err := NewLLParser()
	if err != nil {
		return nil, err
	}
	syms, err := Symbols(p.G, input)
	if err != nil {
		return nil, err
	}
	return collect(p.Trace(syms)), nil
}

// RunLR tokenizes an input line and parses it with the LR(1) parser. An error
// is returned if the parser could not be set up; syntax errors are part of the
// result.
func RunLR(input string) (*Result, error) {
	p, err := NewLRParser()
	if err != nil {
		return nil, err
	}
	syms, err := Symbols(p.G, input)
	if err != nil {
		return nil, err
	}
	return collect(p.Trace(syms)), nil
}
