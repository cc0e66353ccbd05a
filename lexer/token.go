package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber: "NUMBER",

	TokPlus:  "PLUS",
	TokMinus: "MINUS",
	TokStar:  "STAR",
	TokSlash: "SLASH",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of an arithmetic expression.
type Token struct {
	Type  TokenType
	Value string

	pos int
}

// NewToken creates a token starting at the given byte offset.
func NewToken(tt TokenType, value string, pos int) Token {
	return Token{Type: tt, Value: value, pos: pos}
}

// Pos returns the byte offset of the start of the token in the input.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	if t.Type == TokEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}
