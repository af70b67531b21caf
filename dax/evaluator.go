package dax

import (
	"github.com/rs/zerolog/log"
)

// aggregateFunc computes one supported function over a column
type aggregateFunc func(t *Table, column string) (float64, bool)

// aggregates maps function names to their implementation. Names are
// matched exactly, so "sum" is not SUM.
var aggregates = map[string]aggregateFunc{
	"SUM":     (*Table).Sum,
	"AVERAGE": (*Table).Average,
	"MIN":     (*Table).Min,
	"MAX":     (*Table).Max,
	"DISTINCTCOUNT": func(t *Table, column string) (float64, bool) {
		n, ok := t.DistinctCount(column)
		return float64(n), ok
	},
}

// IsSupportedFunction reports whether Evaluate can dispatch name
func IsSupportedFunction(name string) bool {
	_, ok := aggregates[name]
	return ok
}

// Evaluate computes a DAX expression against the table.
//
// The expression is scanned once. The first function token decides the
// outcome: an unknown name fails immediately, a known one is applied to
// the first column reference that follows it. Everything after that column
// is ignored, so "SUM([A]) / SUM([B])" evaluates to SUM([A]).
//
// On failure the returned error is an *EvalError and the Value is Null.
func (t *Table) Evaluate(expression string) (Value, error) {
	tokens := Tokenize(expression)

	for i := 0; i < len(tokens); i++ {
		if tokens[i].Type != TokenFunction {
			continue
		}

		name := tokens[i].Text
		fn, ok := aggregates[name]
		if !ok {
			return Null(), &EvalError{Kind: ErrUnsupportedFunction, Function: name}
		}

		for i++; i < len(tokens); i++ {
			if tokens[i].Type != TokenColumn {
				continue
			}

			column := tokens[i].Text
			if rest := len(tokens) - i - 1; rest > 0 {
				log.Debug().
					Str("function", name).
					Str("column", column).
					Int("ignored_tokens", rest).
					Msg("evaluating first function only, trailing tokens ignored")
			}

			result, ok := fn(t, column)
			if !ok {
				return Null(), &EvalError{Kind: ErrCalculation, Function: name, Column: column}
			}
			log.Debug().
				Str("function", name).
				Str("column", column).
				Float64("result", result).
				Msg("evaluated aggregate")
			return Number(result), nil
		}
	}

	return Null(), &EvalError{Kind: ErrInvalidExpression}
}
