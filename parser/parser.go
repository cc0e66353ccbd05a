// Package parser builds expression trees from tokens by precedence climbing.
package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int // Index of the token following curToken.

	curToken lexer.Token

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{tokens: tokens}
	p.createTokenLookups()
	p.nextToken()
	return p
}

// Parse builds the expression tree for the given tokens. A slice that does not
// end with TokEOF is treated as if it did.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	p := newParser(tokens)
	if p.curToken.Type == lexer.TokEOF {
		return nil, ErrEmptyInput
	}

	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokEOF {
		return nil, &UnexpectedTokenError{Found: p.curToken, Expected: "end of input"}
	}
	return expr, nil
}

// ParseString tokenizes and parses input.
func ParseString(input string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *parser) nextToken() lexer.Token {
	if p.pos >= len(p.tokens) {
		end := 0
		if n := len(p.tokens); n > 0 {
			last := p.tokens[n-1]
			end = last.Pos() + len(last.Value)
		}
		p.curToken = lexer.NewToken(lexer.TokEOF, "", end)
		return p.curToken
	}
	p.curToken = p.tokens[p.pos]
	p.pos++
	return p.curToken
}
