// Package parser implements the recursive-descent syntax validator: a
// program is a statement list terminated by EOF, validated token by token
// with no AST built along the way. The Parser owns its Lexer and tracks
// only the current and previously consumed tokens, stopping at the first
// diagnostic instead of collecting and continuing.
package parser

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/lexer"
	"github.com/esvalidate/esvalidate/internal/token"
)

// DefaultMaxRecursionDepth is the recursion-depth cap guarding against
// adversarial nesting, overridable per-Parser via NewWithDepthLimit.
const DefaultMaxRecursionDepth = 1000

// Parser holds an owned Lexer, the current and previously consumed tokens,
// a statement-recursion depth counter, and the depth cap that counter is
// checked against (overridable via .esvalidate.yaml's maxRecursionDepth).
type Parser struct {
	lex      *lexer.Lexer
	cur      token.Token
	prev     token.Token
	depth    int
	maxDepth int
}

// New creates a Parser over lex with the default recursion-depth cap and
// primes the current token. A non-nil Diagnostic means the very first
// token failed to lex.
func New(lex *lexer.Lexer) (*Parser, *diag.Diagnostic) {
	return NewWithDepthLimit(lex, DefaultMaxRecursionDepth)
}

// NewWithDepthLimit creates a Parser with a caller-supplied recursion-depth
// cap, letting .esvalidate.yaml's maxRecursionDepth override the default.
func NewWithDepthLimit(lex *lexer.Lexer, maxDepth int) (*Parser, *diag.Diagnostic) {
	p := &Parser{lex: lex, maxDepth: maxDepth}
	if d := p.advance(); d != nil {
		return p, d
	}
	return p, nil
}

// Validate parses a full program: a statement list terminated by EOF. It
// returns the first diagnostic encountered, or nil if the source is
// syntactically valid.
func (p *Parser) Validate() *diag.Diagnostic {
	for p.cur.Kind != token.EOF {
		if d := p.parseStatement(); d != nil {
			return d
		}
	}
	return nil
}

// advance consumes the current token and pulls the next one from the
// lexer, remembering the consumed token as prev.
func (p *Parser) advance() *diag.Diagnostic {
	p.prev = p.cur
	tok, d := p.lex.Next()
	if d != nil {
		return d
	}
	p.cur = tok
	return nil
}

// at reports whether the current token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.cur.Kind == k
}

// errorPosition is the position a mismatch diagnostic should carry: the
// current token's start, or the previous token's end if the current token
// is EOF, so unexpected-EOF diagnostics report at the last consumed
// token's end rather than EOF's own, usually identical, position.
func (p *Parser) errorPosition() diag.Position {
	if p.cur.Kind == token.EOF {
		return p.prev.End
	}
	return p.cur.Start
}

// expect requires the current token to have kind k, consuming it on
// success. On mismatch it returns PARSER_EXPECTED_TOKEN (or
// PARSER_UNEXPECTED_EOF when the mismatch is against end of input).
func (p *Parser) expect(k token.Kind) *diag.Diagnostic {
	if p.at(k) {
		return p.advance()
	}
	code := diag.PARSER_EXPECTED_TOKEN
	if p.cur.Kind == token.EOF {
		code = diag.PARSER_UNEXPECTED_EOF
	}
	return diag.New(code, p.errorPosition(), "expected %s but found %s", k, p.describeCurrent())
}

// expectIdentifierLike requires the current token to be an ordinary
// identifier or one of the contextual keywords the grammar also accepts as
// an identifier, consuming it on success.
func (p *Parser) expectIdentifierLike() *diag.Diagnostic {
	if token.IsIdentifierLike(p.cur.Kind) {
		return p.advance()
	}
	code := diag.PARSER_EXPECTED_TOKEN
	if p.cur.Kind == token.EOF {
		code = diag.PARSER_UNEXPECTED_EOF
	}
	return diag.New(code, p.errorPosition(), "expected identifier but found %s", p.describeCurrent())
}

// describeCurrent renders the current token's kind for diagnostic text.
func (p *Parser) describeCurrent() string {
	return p.cur.Kind.String()
}

// unexpected builds a PARSER_UNEXPECTED_TOKEN diagnostic at the current
// position, naming the current token (or PARSER_UNEXPECTED_EOF when the
// current token is end of input, as expect does).
func (p *Parser) unexpected(context string) *diag.Diagnostic {
	code := diag.PARSER_UNEXPECTED_TOKEN
	if p.cur.Kind == token.EOF {
		code = diag.PARSER_UNEXPECTED_EOF
	}
	return diag.New(code, p.errorPosition(), "unexpected token %s (%d) %s", p.describeCurrent(), p.cur.Kind, context)
}

// consumeSemicolon implements Automatic Semicolon Insertion at a required
// terminator point: a literal `;` is consumed if present; otherwise ASI
// applies (no token consumed) when the current token was preceded by a
// newline, is `}`, or is EOF. Failing all three, a missing-semicolon
// diagnostic is raised at the current token's position.
func (p *Parser) consumeSemicolon() *diag.Diagnostic {
	if p.at(token.SEMICOLON) {
		return p.advance()
	}
	if p.cur.PrecededByNewline || p.at(token.RBRACE) || p.at(token.EOF) {
		return nil
	}
	return diag.New(diag.PARSER_MISSING_SEMICOLON, p.cur.Start, "missing semicolon before %s", p.describeCurrent())
}
