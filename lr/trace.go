package lr

import (
	"strconv"
	"strings"
)

// StepKind classifies the action of a parse step.
type StepKind int8

// Kinds of parse steps.
const (
	StepError   StepKind = iota // no table entry; the parse ends
	StepAccept                  // input accepted; the parse ends
	StepMatch                   // LL: top of stack matched the input terminal
	StepShift                   // LR: input terminal shifted
	StepPredict                 // LL: non-terminal expanded by a rule
	StepReduce                  // LR: handle reduced by a rule
)

// Step is a single record of a parse trace. It reflects the parser's
// configuration before the step's action has been performed.
type Step struct {
	Stack string   // stack contents, bottom to top
	Input string   // remaining input, including the end marker
	Kind  StepKind // action taken
	Rule  int      // rule number for StepPredict and StepReduce
}

// Label returns the action label of a step: "accept", "match", "shift",
// "error", or the decimal rule number for predictions and reductions.
func (s Step) Label() string {
	switch s.Kind {
	case StepAccept:
		return "accept"
	case StepMatch:
		return "match"
	case StepShift:
		return "shift"
	case StepPredict, StepReduce:
		return strconv.Itoa(s.Rule)
	}
	return "error"
}

// String renders a step as stack, input and label, separated by tabs.
func (s Step) String() string {
	return strings.Join([]string{s.Stack, s.Input, s.Label()}, "\t")
}
