package lexer

import (
	"strings"

	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
	"github.com/smasher164/xid"
)

// readIdentifier scans an identifier or keyword starting at the current
// byte, which the caller has already confirmed is an id-start byte. It
// decodes \uXXXX escapes inline (each must be exactly four hex digits) and
// looks the resulting lexeme up in the keyword table.
func (l *Lexer) readIdentifier(start diag.Position) (token.Token, *diag.Diagnostic) {
	var b strings.Builder

	for !l.cur.AtEOF() {
		if l.cur.Peek() == '\\' && l.cur.PeekAt(1) == 'u' {
			r, d := l.readUnicodeEscape()
			if d != nil {
				return token.Token{}, d
			}
			b.WriteRune(r)
			continue
		}
		if l.cur.Peek() < 0x80 {
			if !idContinueByte(l.cur.Peek()) {
				break
			}
			b.WriteByte(l.cur.Advance())
			continue
		}
		r, width := decodeRune(l.cur)
		if !xid.Continue(r) {
			break
		}
		for i := 0; i < width; i++ {
			b.WriteByte(l.cur.Advance())
		}
	}

	lexeme := b.String()
	return token.Token{
		Kind:   token.Lookup(lexeme),
		Lexeme: lexeme,
		Start:  start,
		End:    l.cur.Pos(),
	}, nil
}

// readUnicodeEscape consumes a `\uXXXX` escape (the caller has confirmed
// the next two bytes are `\u`) and returns the decoded rune. Anything other
// than exactly four hex digits is LEXER_INVALID_UNICODE_ESCAPE.
func (l *Lexer) readUnicodeEscape() (rune, *diag.Diagnostic) {
	pos := l.cur.Pos()
	l.cur.Advance() // '\'
	l.cur.Advance() // 'u'

	var v rune
	for i := 0; i < 4; i++ {
		b := l.cur.Peek()
		d := hexDigitValue(b)
		if d < 0 {
			return 0, diag.New(diag.LEXER_INVALID_UNICODE_ESCAPE, pos, "invalid unicode escape: expected four hex digits")
		}
		v = v*16 + rune(d)
		l.cur.Advance()
	}
	return v, nil
}

// hexDigitValue returns the numeric value of an ASCII hex digit, or -1 if
// b is not one.
func hexDigitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}
