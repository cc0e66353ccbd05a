package ast

import (
	"fmt"
	"strconv"
)

type NumberExpr struct {
	Value float64
}

func (*NumberExpr) expr() {}

func (n *NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

type BinaryExpr struct {
	Left     Expr
	Operator BinaryOperator
	Right    Expr
}

func (*BinaryExpr) expr() {}

// Dump renders the node fully parenthesized, e.g. "((8 - 4) - 2)".
func (b *BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Operator, b.Right.Dump())
}

type PrefixExpr struct {
	Operator UnaryOperator
	Right    Expr
}

func (*PrefixExpr) expr() {}

func (p *PrefixExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", p.Operator, p.Right.Dump())
}
