package ast

import "errors"

// ErrRangeViolation reports a field outside its allowed range, such as a
// heading level beyond 1..6.
var ErrRangeViolation = errors.New("range violation")

// ErrInvariantViolation reports structural data a node must not carry, such as
// a language tag on a code span. It usually means the parse tree came from an
// unexpected parser version.
var ErrInvariantViolation = errors.New("invariant violation")
