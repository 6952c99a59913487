package lexer

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
)

// regexContextKinds is the previous-token kind set after which a `/`
// begins a regex literal rather than division. Every other previous-token
// kind, including identifiers, numbers, `)`/`]`, and postfix `++`/`--`,
// leaves `/` as division.
var regexContextKinds = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.STAR_STAR_ASSIGN: true, token.SHL_ASSIGN: true, token.SHR_ASSIGN: true,
	token.USHR_ASSIGN: true, token.AMP_ASSIGN: true, token.PIPE_ASSIGN: true,
	token.CARET_ASSIGN: true, token.AND_ASSIGN: true, token.OR_ASSIGN: true,
	token.NULLISH_ASSIGN: true,

	token.LPAREN: true, token.LBRACKET: true, token.LBRACE: true,
	token.COMMA: true, token.SEMICOLON: true, token.COLON: true, token.QUESTION: true,

	token.AND: true, token.OR: true, token.NOT: true, token.TILDE: true,

	token.EQ: true, token.SEQ: true, token.NE: true, token.SNE: true,
	token.LT: true, token.LE: true, token.GT: true, token.GE: true,

	token.RETURN: true, token.THROW: true,
}

// inRegexContext reports whether the previously emitted token permits `/`
// to start a regex literal here. Before any token has been emitted, regex
// is permitted (a program cannot begin with a division operator).
func (l *Lexer) inRegexContext() bool {
	if !l.hasPrev {
		return true
	}
	return regexContextKinds[l.prevKind]
}

// readSlash disambiguates `/` between regex-literal start and the
// division/`/=` operator, using the previous token's kind.
func (l *Lexer) readSlash(start diag.Position) (token.Token, *diag.Diagnostic) {
	if l.inRegexContext() {
		return l.readRegex(start)
	}
	l.cur.Advance()
	if l.cur.Peek() == '=' {
		l.cur.Advance()
		return token.Token{Kind: token.SLASH_ASSIGN, Lexeme: "/=", Start: start, End: l.cur.Pos()}, nil
	}
	return token.Token{Kind: token.SLASH, Lexeme: "/", Start: start, End: l.cur.Pos()}, nil
}

// readRegex scans a regex literal: bytes up to an unescaped `/`, with
// `[...]` character classes exempting `/` from being a terminator inside
// them, followed by trailing alphabetic flag characters. A line terminator
// inside the body is an error, as is running off the end of input.
func (l *Lexer) readRegex(start diag.Position) (token.Token, *diag.Diagnostic) {
	from := l.cur.Offset()
	l.cur.Advance() // opening '/'

	inClass := false
	for {
		if l.cur.AtEOF() {
			return token.Token{}, diag.New(diag.LEXER_UNTERMINATED_REGEX, l.cur.Pos(), "unterminated regex literal starting at %s", start)
		}
		if lineTerminatorWidth(l.cur, 0) > 0 {
			return token.Token{}, diag.New(diag.LEXER_UNTERMINATED_REGEX, l.cur.Pos(), "line terminator in regex literal")
		}
		b := l.cur.Peek()
		if b == '\\' {
			l.cur.Advance()
			if l.cur.AtEOF() {
				return token.Token{}, diag.New(diag.LEXER_UNTERMINATED_REGEX, l.cur.Pos(), "unterminated regex literal starting at %s", start)
			}
			l.cur.Advance()
			continue
		}
		if b == '[' {
			inClass = true
			l.cur.Advance()
			continue
		}
		if b == ']' {
			inClass = false
			l.cur.Advance()
			continue
		}
		if b == '/' && !inClass {
			l.cur.Advance()
			break
		}
		l.cur.Advance()
	}

	for isAlphaFlag(l.cur.Peek()) {
		l.cur.Advance()
	}

	return token.Token{Kind: token.REGEX, Lexeme: l.cur.Slice(from), Start: start, End: l.cur.Pos()}, nil
}

func isAlphaFlag(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
