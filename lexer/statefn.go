package lexer

const (
	digits     = "0123456789"
	whitespace = " \t\r\n"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		l.acceptRun(whitespace)
		l.ignore()
		return lexText
	case r == '.' || (r >= '0' && r <= '9'):
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorAt(l.pos, r)
	}
}

// lexNumber scans digits with at most one decimal point. Either side of the
// point may be empty, but not both.
func lexNumber(l *Lexer) stateFn {
	sawDigits := l.acceptRun(digits)
	if l.accept(".") && l.acceptRun(digits) {
		sawDigits = true
	}
	if !sawDigits {
		// Lone '.'.
		return l.errorAt(l.start, '.')
	}
	if r := l.peek(); r == '.' || isLetter(r) {
		return l.errorAt(l.pos, r)
	}
	return l.emit(TokNumber)
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_'
}
