// Package ast defines the expression tree produced by the parser.
package ast

import "fmt"

// Expr is a node of an expression tree. Every node exclusively owns its
// children.
type Expr interface {
	Dump() string
	expr()
}

// BinaryOperator is the operator of a BinaryExpr.
type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

func (op BinaryOperator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return fmt.Sprintf("BinaryOperator(%d)", int(op))
}

// UnaryOperator is the operator of a PrefixExpr.
type UnaryOperator int

const (
	OpNegate UnaryOperator = iota
)

func (op UnaryOperator) String() string {
	if op == OpNegate {
		return "-"
	}
	return fmt.Sprintf("UnaryOperator(%d)", int(op))
}
