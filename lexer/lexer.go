// Package lexer provides a lexical analyzer for arithmetic expressions.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const eof = -1

// Error is returned when the input contains a character that cannot start
// or continue a token.
type Error struct {
	Pos  int  // Byte offset of the offending character.
	Char rune // The offending character.
}

func (e *Error) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

type Lexer struct {
	input string

	curToken Token
	err      *Error

	atEOF bool
	done  bool // TokEOF or TokError has been emitted.

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize splits the whole input into tokens. The returned slice always ends
// with a TokEOF token. The first unrecognized character aborts tokenization.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return nil, l.Err()
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token in the input. Once TokEOF or TokError
// has been returned, every further call returns the same token.
func (l *Lexer) NextToken() Token {
	if l.done {
		return l.curToken
	}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			l.done = l.curToken.Type.IsOneOf(TokEOF, TokError)
			return l.curToken
		}
	}
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emit(tt TokenType) stateFn {
	l.curToken = l.thisToken(tt)
	return nil
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// errorAt stops the lexer on the character r found at pos.
func (l *Lexer) errorAt(pos int, r rune) stateFn {
	l.err = &Error{Pos: pos, Char: r}
	l.curToken = Token{
		Type:  TokError,
		Value: l.err.Error(),
		pos:   pos,
	}
	return nil
}
