package parser

import (
	"errors"
	"fmt"

	"go.creack.net/calc/lexer"
)

// ErrEmptyInput is returned when the token stream holds no expression at all.
var ErrEmptyInput = errors.New("empty input")

// UnexpectedTokenError is returned when a token shows up where it cannot be
// used, e.g. an operator where a value is expected or trailing tokens after a
// complete expression.
type UnexpectedTokenError struct {
	Found    lexer.Token
	Expected string // "expression" or "end of input".
}

func (e *UnexpectedTokenError) Error() string {
	if e.Found.Type == lexer.TokEOF {
		return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
	}
	return fmt.Sprintf("unexpected %q at position %d, expected %s", e.Found.Value, e.Found.Pos(), e.Expected)
}

// UnclosedParenError is returned when a '(' is not matched by a ')'.
type UnclosedParenError struct {
	Open  lexer.Token // The unmatched '('.
	Found lexer.Token // What came instead of ')'.
}

func (e *UnclosedParenError) Error() string {
	if e.Found.Type == lexer.TokEOF {
		return fmt.Sprintf("unclosed parenthesis opened at position %d", e.Open.Pos())
	}
	return fmt.Sprintf("unclosed parenthesis opened at position %d: expected ')', got %q at position %d",
		e.Open.Pos(), e.Found.Value, e.Found.Pos())
}
