package lexer

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
)

// readNumber scans a numeric literal by maximal munch. Radix-prefixed
// literals (0x/0X, 0b/0B, 0o/0O) consume only their radix-specific digit
// class; otherwise decimal digits are consumed, followed by an optional
// fractional part (only when a digit follows the dot) and an optional
// exponent. No validation of numeric value is performed — an empty radix
// digit run, for instance, is still accepted as a (degenerate) literal.
func (l *Lexer) readNumber(start diag.Position) (token.Token, *diag.Diagnostic) {
	from := l.cur.Offset()

	if l.cur.Peek() == '0' {
		switch l.cur.PeekAt(1) {
		case 'x', 'X':
			l.cur.Advance()
			l.cur.Advance()
			l.consumeRun(isHexDigit)
			return l.numberToken(start, from), nil
		case 'b', 'B':
			l.cur.Advance()
			l.cur.Advance()
			l.consumeRun(isBinaryDigit)
			return l.numberToken(start, from), nil
		case 'o', 'O':
			l.cur.Advance()
			l.cur.Advance()
			l.consumeRun(isOctalDigit)
			return l.numberToken(start, from), nil
		}
	}

	// readNumber is only entered on a leading digit or on '.' followed by a
	// digit (scanOne already checked this), so a bare '.' here always has a
	// digit after it.
	l.consumeRun(isDecimalDigit)
	if l.cur.Peek() == '.' && isDecimalDigit(l.cur.PeekAt(1)) {
		l.cur.Advance()
		l.consumeRun(isDecimalDigit)
	}

	// The exponent is consumed only as a whole: 'e'/'E', an optional sign,
	// then at least one digit. Peeking ahead before advancing avoids
	// swallowing a bare trailing 'e' that isn't actually an exponent.
	if l.cur.Peek() == 'e' || l.cur.Peek() == 'E' {
		lookahead := 1
		if l.cur.PeekAt(lookahead) == '+' || l.cur.PeekAt(lookahead) == '-' {
			lookahead++
		}
		if isDecimalDigit(l.cur.PeekAt(lookahead)) {
			for i := 0; i < lookahead; i++ {
				l.cur.Advance()
			}
			l.consumeRun(isDecimalDigit)
		}
	}

	return l.numberToken(start, from), nil
}

// numberToken builds the NUMBER token covering src[from:cur.Offset()].
func (l *Lexer) numberToken(start diag.Position, from int) token.Token {
	return token.Token{
		Kind:   token.NUMBER,
		Lexeme: l.cur.Slice(from),
		Start:  start,
		End:    l.cur.Pos(),
	}
}

// consumeRun advances past a maximal run of bytes satisfying pred.
func (l *Lexer) consumeRun(pred func(byte) bool) {
	for pred(l.cur.Peek()) {
		l.cur.Advance()
	}
}

func isDecimalDigit(b byte) bool { return b >= '0' && b <= '9' }
func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isBinaryDigit(b byte) bool { return b == '0' || b == '1' }
func isOctalDigit(b byte) bool  { return b >= '0' && b <= '7' }
