package parser

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

func num(v float64) ast.Expr { return &ast.NumberExpr{Value: v} }

func bin(l ast.Expr, op ast.BinaryOperator, r ast.Expr) ast.Expr {
	return &ast.BinaryExpr{Left: l, Operator: op, Right: r}
}

func neg(e ast.Expr) ast.Expr { return &ast.PrefixExpr{Operator: ast.OpNegate, Right: e} }

func TestParseTree(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Expr
	}{
		{input: "42", want: num(42)},
		{input: "1 + 2", want: bin(num(1), ast.OpAdd, num(2))},
		{input: "-7", want: neg(num(7))},
		{input: "2 + 3 * 4", want: bin(num(2), ast.OpAdd, bin(num(3), ast.OpMultiply, num(4)))},
		{input: "8 / 4 / 2", want: bin(bin(num(8), ast.OpDivide, num(4)), ast.OpDivide, num(2))},
		{input: "-(1 + 2)", want: neg(bin(num(1), ast.OpAdd, num(2)))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseString(tt.input)
			require.NoError(t, err)
			if diff := pretty.Diff(tt.want, got); len(diff) > 0 {
				t.Errorf("tree mismatch for %q:\n%s", tt.input, diff)
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "2 + 3 * 4", want: "(2 + (3 * 4))"},
		{input: "2 * 3 + 4", want: "((2 * 3) + 4)"},
		{input: "8 - 4 - 2", want: "((8 - 4) - 2)"},
		{input: "1 + 2 - 3 + 4", want: "(((1 + 2) - 3) + 4)"},
		{input: "2 * 3 / 4 * 5", want: "(((2 * 3) / 4) * 5)"},
		{input: "(2 + 3) * 4", want: "((2 + 3) * 4)"},
		{input: "2 * (3 + 4) - 1", want: "((2 * (3 + 4)) - 1)"},
		{input: "((1))", want: "1"},
		{input: "-3 + 5", want: "((-3) + 5)"},
		{input: "-2 * 3", want: "((-2) * 3)"},
		{input: "2 * -3", want: "(2 * (-3))"},
		{input: "2 - -3", want: "(2 - (-3))"},
		{input: "--3", want: "(-(-3))"},
		{input: "1 - 2 * 3 - 4", want: "((1 - (2 * 3)) - 4)"},
		{input: ".5 + 1.", want: "(0.5 + 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.Dump())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string // Expected field of the UnexpectedTokenError.
		found    lexer.TokenType
	}{
		{name: "dangling operator", input: "2 +", expected: "expression", found: lexer.TokEOF},
		{name: "lone minus", input: "-", expected: "expression", found: lexer.TokEOF},
		{name: "leading operator", input: "* 2", expected: "expression", found: lexer.TokStar},
		{name: "double operator", input: "2 * / 3", expected: "expression", found: lexer.TokSlash},
		{name: "empty parens", input: "()", expected: "expression", found: lexer.TokParenRight},
		{name: "trailing number", input: "2 3", expected: "end of input", found: lexer.TokNumber},
		{name: "trailing paren", input: "(2 + 3))", expected: "end of input", found: lexer.TokParenRight},
		{name: "stray close", input: ")", expected: "expression", found: lexer.TokParenRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(tt.input)
			require.Error(t, err)
			assert.Nil(t, expr)

			var tokErr *UnexpectedTokenError
			require.ErrorAs(t, err, &tokErr)
			assert.Equal(t, tt.expected, tokErr.Expected)
			assert.Equal(t, tt.found, tokErr.Found.Type)
		})
	}
}

func TestParseUnclosedParen(t *testing.T) {
	for _, input := range []string{"(2 + 3", "((1)", "2 * (3", "(2 3)"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseString(input)
			var parenErr *UnclosedParenError
			require.ErrorAs(t, err, &parenErr)
			assert.Equal(t, lexer.TokParenLeft, parenErr.Open.Type)
		})
	}

	_, err := ParseString("2 * (3")
	require.EqualError(t, err, "unclosed parenthesis opened at position 4")
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n"} {
		expr, err := ParseString(input)
		require.ErrorIs(t, err, ErrEmptyInput, "input %q", input)
		assert.Nil(t, expr)
	}

	_, err := Parse(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseLexError(t *testing.T) {
	_, err := ParseString("2 & 3")
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, '&', lexErr.Char)
}

func TestParseErrorMessages(t *testing.T) {
	_, err := ParseString("2 +")
	require.EqualError(t, err, "unexpected end of input, expected expression")

	_, err = ParseString("2 3")
	require.EqualError(t, err, `unexpected "3" at position 2, expected end of input`)
}

func TestParseMissingEOF(t *testing.T) {
	tokens := []lexer.Token{
		lexer.NewToken(lexer.TokNumber, "1", 0),
		lexer.NewToken(lexer.TokPlus, "+", 1),
		lexer.NewToken(lexer.TokNumber, "1", 2),
	}
	expr, err := Parse(tokens)
	require.NoError(t, err)
	assert.Equal(t, "(1 + 1)", expr.Dump())

	_, err = Parse(tokens[:2])
	var tokErr *UnexpectedTokenError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, 2, tokErr.Found.Pos())
}

func TestParseInvalidNumberToken(t *testing.T) {
	_, err := Parse([]lexer.Token{lexer.NewToken(lexer.TokNumber, "1.2.3", 0)})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyInput))
}

func TestParseOverflowingLiteral(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	expr, err := ParseString(huge)
	require.NoError(t, err)
	n, ok := expr.(*ast.NumberExpr)
	require.True(t, ok)
	assert.True(t, math.IsInf(n.Value, 1))
}
