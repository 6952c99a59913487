package parser

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
)

// atArgumentEnd reports whether the current token can legally end a
// restricted production's optional operand: ASI's own terminator set.
func (p *Parser) atArgumentEnd() bool {
	return p.cur.PrecededByNewline || p.at(token.SEMICOLON) || p.at(token.RBRACE) || p.at(token.EOF)
}

// parseReturnStatement: `return` with an optional expression, subject to
// the restricted production — a newline right after `return` forces ASI
// before any expression is attempted, never an operand spanning lines.
func (p *Parser) parseReturnStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if !p.atArgumentEnd() {
		if d := p.parseExpression(); d != nil {
			return d
		}
	}
	return p.consumeSemicolon()
}

// parseBreakStatement: `break` with an optional label, subject to the same
// restricted-production newline rule.
func (p *Parser) parseBreakStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if !p.cur.PrecededByNewline && p.at(token.IDENTIFIER) {
		if d := p.advance(); d != nil {
			return d
		}
	}
	return p.consumeSemicolon()
}

// parseContinueStatement: `continue` with an optional label, same rule.
func (p *Parser) parseContinueStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if !p.cur.PrecededByNewline && p.at(token.IDENTIFIER) {
		if d := p.advance(); d != nil {
			return d
		}
	}
	return p.consumeSemicolon()
}

// parseThrowStatement: `throw` requires an expression on the same line —
// unlike return/break/continue, a line break here is a syntax error rather
// than a trigger for ASI.
func (p *Parser) parseThrowStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if p.cur.PrecededByNewline {
		return diag.New(diag.PARSER_UNEXPECTED_TOKEN, p.cur.Start, "illegal newline after throw")
	}
	if d := p.parseExpression(); d != nil {
		return d
	}
	return p.consumeSemicolon()
}

// parseForStatement covers both the classic three-clause form and
// for-in/for-of, but only recognizes a single declarator in the
// `for (var x ...)` head; destructuring and multi-declarator heads are
// not supported.
func (p *Parser) parseForStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if d := p.expect(token.LPAREN); d != nil {
		return d
	}

	switch {
	case p.at(token.SEMICOLON):
		// empty init clause
	case p.at(token.VAR), p.at(token.LET), p.at(token.CONST):
		if d := p.advance(); d != nil {
			return d
		}
		if d := p.expectIdentifierLike(); d != nil {
			return d
		}
		if p.at(token.IN) || p.at(token.OF) {
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.parseExpression(); d != nil {
				return d
			}
			if d := p.expect(token.RPAREN); d != nil {
				return d
			}
			return p.parseStatement()
		}
		if p.at(token.ASSIGN) {
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.parseAssignment(); d != nil {
				return d
			}
		}
	default:
		if d := p.parseExpression(); d != nil {
			return d
		}
	}

	if d := p.expect(token.SEMICOLON); d != nil {
		return d
	}
	if !p.at(token.SEMICOLON) {
		if d := p.parseExpression(); d != nil {
			return d
		}
	}
	if d := p.expect(token.SEMICOLON); d != nil {
		return d
	}
	if !p.at(token.RPAREN) {
		if d := p.parseExpression(); d != nil {
			return d
		}
	}
	if d := p.expect(token.RPAREN); d != nil {
		return d
	}
	return p.parseStatement()
}
