// Package lexer implements the context-sensitive tokenizer: on-demand
// token production with regex/division disambiguation, automatic
// semicolon insertion support via a newline flag, and maximal-munch
// operator recognition. It is a hand-written, switch-dispatched lexer
// that reports a single Diagnostic and stops on the first lexical error,
// rather than collecting and continuing.
package lexer

import (
	"unicode/utf8"

	"github.com/esvalidate/esvalidate/internal/cursor"
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
	"github.com/smasher164/xid"
)

// idStartByte reports whether an ASCII byte can begin an identifier: a
// letter, '$', or '_'. Bytes >= 0x80 are classified separately by
// identifierStartAt/identifierContinueAt using the real Unicode ID_Start/
// ID_Continue tables (via smasher164/xid) instead of a bare "byte >= 0x80"
// approximation — see DESIGN.md's open question about identifier
// classification.
func idStartByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '$' || b == '_'
}

// idContinueByte reports whether an ASCII byte can continue an identifier.
func idContinueByte(b byte) bool {
	return idStartByte(b) || (b >= '0' && b <= '9')
}

// decodeRune decodes the rune starting at the cursor's current position
// without consuming it, returning its width in bytes.
func decodeRune(c *cursor.Cursor) (rune, int) {
	return utf8.DecodeRuneInString(c.Remainder())
}

// identifierStartAt reports whether an identifier can begin at the
// cursor's current position: the ASCII rule for bytes < 0x80, or real
// Unicode ID_Start (via smasher164/xid) for any other byte — see
// DESIGN.md's open question about identifier classification.
func identifierStartAt(c *cursor.Cursor) bool {
	b := c.Peek()
	if b < 0x80 {
		return idStartByte(b)
	}
	r, _ := decodeRune(c)
	return xid.Start(r)
}

// identifierContinueAt reports whether an identifier can continue at the
// cursor's current position, analogous to identifierStartAt.
func identifierContinueAt(c *cursor.Cursor) bool {
	b := c.Peek()
	if b < 0x80 {
		return idContinueByte(b)
	}
	r, _ := decodeRune(c)
	return xid.Continue(r)
}

// Lexer produces tokens from a source string on demand. It retains only
// the previously emitted token's Kind — a full cached token is unneeded,
// since only the kind drives the regex/division decision.
type Lexer struct {
	cur      *cursor.Cursor
	prevKind token.Kind
	hasPrev  bool
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{cur: cursor.New(src)}
}

// Next returns the next token, or a lexical Diagnostic if the source does
// not form a valid token at the current position. Once a Diagnostic is
// returned the Lexer must not be called again; its internal state is no
// longer meaningful.
func (l *Lexer) Next() (token.Token, *diag.Diagnostic) {
	if d := l.skipTrivia(); d != nil {
		return token.Token{}, d
	}

	newline := l.cur.TakeNewlineFlag()
	start := l.cur.Pos()

	tok, d := l.scanOne(start)
	if d != nil {
		return token.Token{}, d
	}
	tok.PrecededByNewline = newline
	l.prevKind = tok.Kind
	l.hasPrev = true
	return tok, nil
}

// scanOne dispatches on the current byte to produce exactly one token,
// having already skipped trivia and captured the token's start position.
func (l *Lexer) scanOne(start diag.Position) (token.Token, *diag.Diagnostic) {
	if l.cur.AtEOF() {
		return token.Token{Kind: token.EOF, Lexeme: "", Start: start, End: l.cur.Pos()}, nil
	}

	b := l.cur.Peek()
	switch {
	case b == '"' || b == '\'':
		return l.readString(start, b)
	case b == '`':
		return l.readTemplate(start)
	case b == '/':
		return l.readSlash(start)
	case identifierStartAt(l.cur):
		return l.readIdentifier(start)
	case b >= '0' && b <= '9':
		return l.readNumber(start)
	case b == '.' && l.cur.PeekAt(1) >= '0' && l.cur.PeekAt(1) <= '9':
		return l.readNumber(start)
	default:
		return l.readOperator(start)
	}
}

// skipTrivia consumes whitespace and comments, recording any line
// terminators it crosses via the cursor's sticky newline flag. It reports
// an unterminated block comment as a lexical error at the current cursor
// position, matching how other unterminated constructs report.
func (l *Lexer) skipTrivia() *diag.Diagnostic {
	for {
		if l.cur.AtEOF() {
			return nil
		}
		b := l.cur.Peek()

		if w := lineTerminatorWidth(l.cur, 0); w > 0 {
			l.cur.AdvanceNewline(w)
			continue
		}
		if w := whitespaceWidth(l.cur); w > 0 {
			for i := 0; i < w; i++ {
				l.cur.Advance()
			}
			continue
		}
		if b == '/' && l.cur.PeekAt(1) == '/' {
			l.skipLineComment()
			continue
		}
		if b == '/' && l.cur.PeekAt(1) == '*' {
			if d := l.skipBlockComment(); d != nil {
				return d
			}
			continue
		}
		return nil
	}
}

// skipLineComment consumes a `//` comment up to, but not past, the next
// line terminator.
func (l *Lexer) skipLineComment() {
	l.cur.Advance()
	l.cur.Advance()
	for !l.cur.AtEOF() && lineTerminatorWidth(l.cur, 0) == 0 {
		l.cur.Advance()
	}
}

// skipBlockComment consumes a `/* ... */` comment, which may span
// multiple lines; each line terminator inside it sets the newline flag. An
// unterminated block comment is a lexical error.
func (l *Lexer) skipBlockComment() *diag.Diagnostic {
	startPos := l.cur.Pos()
	l.cur.Advance()
	l.cur.Advance()
	for {
		if l.cur.AtEOF() {
			return diag.New(diag.LEXER_UNTERMINATED_STRING, l.cur.Pos(), "unterminated block comment starting at %s", startPos)
		}
		if w := lineTerminatorWidth(l.cur, 0); w > 0 {
			l.cur.AdvanceNewline(w)
			continue
		}
		if l.cur.Peek() == '*' && l.cur.PeekAt(1) == '/' {
			l.cur.Advance()
			l.cur.Advance()
			return nil
		}
		l.cur.Advance()
	}
}

// lineTerminatorWidth reports the byte width of a line terminator
// beginning at offset n bytes from the cursor's current position, or 0 if
// none starts there. \r\n collapses to a single logical terminator of
// width 2; U+2028 and U+2029 are recognized by their 3-byte UTF-8 encoding.
func lineTerminatorWidth(c interface{ PeekAt(int) byte }, n int) int {
	b0 := c.PeekAt(n)
	switch b0 {
	case '\n':
		return 1
	case '\r':
		if c.PeekAt(n+1) == '\n' {
			return 2
		}
		return 1
	case 0xE2:
		if c.PeekAt(n+1) == 0x80 && (c.PeekAt(n+2) == 0xA8 || c.PeekAt(n+2) == 0xA9) {
			return 3
		}
	}
	return 0
}

// whitespaceWidth reports the byte width of a non-newline whitespace
// character at the cursor's current position: ASCII space/tab/VT/FF, NBSP
// (U+00A0, 2 bytes), BOM (U+FEFF, 3 bytes), and the U+2000-U+200A block (3
// bytes each).
func whitespaceWidth(c *cursor.Cursor) int {
	b0 := c.Peek()
	switch b0 {
	case ' ', '\t', '\v', '\f':
		return 1
	case 0xC2:
		if c.PeekAt(1) == 0xA0 {
			return 2
		}
	case 0xEF:
		if c.PeekAt(1) == 0xBB && c.PeekAt(2) == 0xBF {
			return 3
		}
	case 0xE2:
		if c.PeekAt(1) == 0x80 {
			b2 := c.PeekAt(2)
			if b2 >= 0x80 && b2 <= 0x8A {
				return 3
			}
		}
	}
	return 0
}
