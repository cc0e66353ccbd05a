package parser

import (
	"errors"
	"fmt"
	"strconv"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// binaryOperators maps infix tokens to their tree operator.
var binaryOperators = map[lexer.TokenType]ast.BinaryOperator{
	lexer.TokPlus:  ast.OpAdd,
	lexer.TokMinus: ast.OpSubtract,
	lexer.TokStar:  ast.OpMultiply,
	lexer.TokSlash: ast.OpDivide,
}

// parseExpr parses an expression whose infix operators all bind at least as
// tightly as minBP.
func parseExpr(p *parser, minBP bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		return nil, &UnexpectedTokenError{Found: p.curToken, Expected: "expression"}
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	// While we have operators binding at least as tightly, fold them in using led.
	for {
		bp, ok := p.bindingPowerLookupTable[p.curToken.Type]
		if !ok || bp < minBP {
			return left, nil
		}
		left, err = p.ledLookupTable[p.curToken.Type](p, left, bp)
		if err != nil {
			return nil, err
		}
	}
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	tok := p.curToken
	number, err := strconv.ParseFloat(tok.Value, 64)
	// Out of range literals keep the ±Inf or 0 ParseFloat hands back.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("invalid number %q at position %d: %w", tok.Value, tok.Pos(), err)
	}
	p.nextToken()
	return &ast.NumberExpr{Value: number}, nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	open := p.curToken
	p.nextToken()
	inner, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokParenRight {
		return nil, &UnclosedParenError{Open: open, Found: p.curToken}
	}
	p.nextToken()
	return inner, nil
}

func parsePrefixExpr(p *parser) (ast.Expr, error) {
	p.nextToken()
	right, err := parseExpr(p, bpPrefix)
	if err != nil {
		return nil, err
	}
	return &ast.PrefixExpr{Operator: ast.OpNegate, Right: right}, nil
}

// parseBinaryExpr folds left and the right hand side into a BinaryExpr. The
// right side only takes operators binding strictly tighter, which makes every
// operator left associative.
func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	right, err := parseExpr(p, bp+1)
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{
		Left:     left,
		Operator: binaryOperators[operator.Type],
		Right:    right,
	}, nil
}
