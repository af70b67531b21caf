package dax

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFunction is the kind of error returned when an
	// expression names a function outside the supported set.
	ErrUnsupportedFunction = errors.New("unsupported function")

	// ErrCalculation is the kind of error returned when a supported
	// function cannot produce a result for its column.
	ErrCalculation = errors.New("could not calculate")

	// ErrInvalidExpression is the kind of error returned when no
	// function/column pair could be resolved from the expression.
	ErrInvalidExpression = errors.New("invalid or unsupported DAX expression")

	// ErrParse is reserved for syntax errors. The lexer currently degrades
	// malformed input instead of reporting it.
	ErrParse = errors.New("parse error")
)

// EvalError describes why an expression produced no value.
//
// Kind is one of the sentinel errors above and is what errors.Is matches.
type EvalError struct {
	Kind     error
	Function string
	Column   string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case ErrUnsupportedFunction:
		return fmt.Sprintf("Unsupported function: %s", e.Function)
	case ErrCalculation:
		return fmt.Sprintf("Could not calculate %s for column %s", e.Function, e.Column)
	case ErrInvalidExpression:
		return "Invalid or unsupported DAX expression"
	default:
		return fmt.Sprintf("%v", e.Kind)
	}
}

func (e *EvalError) Unwrap() error {
	return e.Kind
}
