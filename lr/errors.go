package lr

import "errors"

// Errors reported by table-driven parsers. Each of them ends a parse with a
// single error step; the returned error wraps one of these.
var (
	// ErrSyntax: no table entry for the current stack top and input symbol.
	ErrSyntax = errors.New("syntax error")
	// ErrStackUnderflow: a reduce action would pop more states than present.
	ErrStackUnderflow = errors.New("parse stack underflow")
	// ErrUndefinedGoto: no GOTO entry after a reduce action.
	ErrUndefinedGoto = errors.New("undefined GOTO entry")
)
