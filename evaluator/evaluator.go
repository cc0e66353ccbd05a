// Package evaluator computes the value of expression trees.
//
// Arithmetic follows IEEE-754 float64 semantics: division by zero yields
// +Inf, -Inf or NaN instead of an error.
package evaluator

import (
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/parser"
)

// Error is returned when a tree cannot be evaluated, e.g. a nil node or an
// unknown operator. It never reports arithmetic conditions.
type Error struct {
	Expr   ast.Expr
	Reason string
}

func (e *Error) Error() string {
	return "evaluate: " + e.Reason
}

// Evaluate walks expr and returns its value.
func Evaluate(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case nil:
		return 0, &Error{Reason: "nil expression"}
	case *ast.NumberExpr:
		return e.Value, nil
	case *ast.PrefixExpr:
		return evaluatePrefixExpr(e)
	case *ast.BinaryExpr:
		return evaluateBinaryExpr(e)
	default:
		return 0, &Error{Expr: expr, Reason: fmt.Sprintf("unsupported expression type %T", expr)}
	}
}

// EvalString tokenizes, parses and evaluates input.
func EvalString(input string) (float64, error) {
	expr, err := parser.ParseString(input)
	if err != nil {
		return 0, err
	}
	return Evaluate(expr)
}

func evaluatePrefixExpr(e *ast.PrefixExpr) (float64, error) {
	right, err := Evaluate(e.Right)
	if err != nil {
		return 0, err
	}
	switch e.Operator {
	case ast.OpNegate:
		return -right, nil
	default:
		return 0, &Error{Expr: e, Reason: fmt.Sprintf("unsupported prefix operator %s", e.Operator)}
	}
}

func evaluateBinaryExpr(e *ast.BinaryExpr) (float64, error) {
	left, err := Evaluate(e.Left)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(e.Right)
	if err != nil {
		return 0, err
	}
	return apply(e, left, right)
}

func apply(e *ast.BinaryExpr, left, right float64) (float64, error) {
	switch e.Operator {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSubtract:
		return left - right, nil
	case ast.OpMultiply:
		return left * right, nil
	case ast.OpDivide:
		return left / right, nil
	default:
		return 0, &Error{Expr: e, Reason: fmt.Sprintf("unsupported binary operator %s", e.Operator)}
	}
}
