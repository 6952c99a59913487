package parser

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
)

// parsePrimary dispatches on the current token's kind to the innermost
// expression forms: identifiers, `this`/`super`, literals, grouped
// expressions, array/object literals, and function expressions. Class
// expressions are deliberately absent — the grammar only admits `class` as
// a declaration.
func (p *Parser) parsePrimary() *diag.Diagnostic {
	switch p.cur.Kind {
	case token.THIS, token.SUPER, token.NUMBER, token.STRING, token.TEMPLATE,
		token.REGEX, token.TRUE, token.FALSE, token.NULL, token.UNDEFINED:
		return p.advance()
	case token.IDENTIFIER:
		return p.advance()
	case token.LPAREN:
		if d := p.advance(); d != nil {
			return d
		}
		if d := p.parseAssignment(); d != nil {
			return d
		}
		return p.expect(token.RPAREN)
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	case token.FUNCTION:
		return p.parseFunctionExpression()
	default:
		if token.IsContextualKeyword(p.cur.Kind) {
			return p.advance()
		}
		return p.unexpected("in expression")
	}
}

// parseArrayLiteral accepts a bracketed, comma-separated element list.
// Consecutive commas with no element between them (elision) are accepted
// silently, matching real-world sparse-array usage (see DESIGN.md).
func (p *Parser) parseArrayLiteral() *diag.Diagnostic {
	if d := p.advance(); d != nil { // consume '['
		return d
	}
	for !p.at(token.RBRACKET) {
		if p.at(token.COMMA) {
			if d := p.advance(); d != nil {
				return d
			}
			continue
		}
		if p.at(token.ELLIPSIS) {
			if d := p.advance(); d != nil {
				return d
			}
		}
		if d := p.parseAssignment(); d != nil {
			return d
		}
		if p.at(token.COMMA) {
			if d := p.advance(); d != nil {
				return d
			}
			continue
		}
		break
	}
	return p.expect(token.RBRACKET)
}

// parseObjectLiteral accepts a brace-delimited, comma-separated property
// list with an optional trailing comma. Each property is a shorthand
// identifier, a `key : value` pair, where key is an identifier-like token,
// a string, a number, or a computed `[expr]` key, or an identifier-keyed
// method shorthand `name(params) { body }`.
func (p *Parser) parseObjectLiteral() *diag.Diagnostic {
	if d := p.advance(); d != nil { // consume '{'
		return d
	}
	for !p.at(token.RBRACE) {
		if d := p.parseObjectProperty(); d != nil {
			return d
		}
		if p.at(token.COMMA) {
			if d := p.advance(); d != nil {
				return d
			}
			continue
		}
		break
	}
	return p.expect(token.RBRACE)
}

func (p *Parser) parseObjectProperty() *diag.Diagnostic {
	switch {
	case p.at(token.LBRACKET):
		if d := p.advance(); d != nil {
			return d
		}
		if d := p.parseAssignment(); d != nil {
			return d
		}
		if d := p.expect(token.RBRACKET); d != nil {
			return d
		}
		if d := p.expect(token.COLON); d != nil {
			return d
		}
		return p.parseAssignment()
	case p.at(token.STRING), p.at(token.NUMBER):
		if d := p.advance(); d != nil {
			return d
		}
		if d := p.expect(token.COLON); d != nil {
			return d
		}
		return p.parseAssignment()
	case token.IsIdentifierLike(p.cur.Kind):
		if d := p.advance(); d != nil {
			return d
		}
		if p.at(token.COLON) {
			if d := p.advance(); d != nil {
				return d
			}
			return p.parseAssignment()
		}
		if p.at(token.LPAREN) {
			// Method shorthand: name(params) { body }.
			return p.parseFunctionTail()
		}
		return nil // shorthand { identifier }
	default:
		return p.unexpected("in object literal")
	}
}

// parseFunctionExpression: `function`, an optional name, then the
// shared parameter-list-plus-body tail.
func (p *Parser) parseFunctionExpression() *diag.Diagnostic {
	if d := p.advance(); d != nil { // consume 'function'
		return d
	}
	if token.IsIdentifierLike(p.cur.Kind) {
		if d := p.advance(); d != nil {
			return d
		}
	}
	return p.parseFunctionTail()
}

// parseFunctionTail parses `( params ) { body }`, shared by function
// declarations, function expressions, and object-literal method shorthand.
func (p *Parser) parseFunctionTail() *diag.Diagnostic {
	if d := p.expect(token.LPAREN); d != nil {
		return d
	}
	if d := p.parseParamList(); d != nil {
		return d
	}
	if d := p.expect(token.RPAREN); d != nil {
		return d
	}
	return p.parseBlockStatement()
}

// parseParamList accepts a comma-separated identifier list, each optionally
// preceded by `...` (no default values or destructuring).
func (p *Parser) parseParamList() *diag.Diagnostic {
	if p.at(token.RPAREN) {
		return nil
	}
	for {
		if p.at(token.ELLIPSIS) {
			if d := p.advance(); d != nil {
				return d
			}
		}
		if d := p.expectIdentifierLike(); d != nil {
			return d
		}
		if p.at(token.COMMA) {
			if d := p.advance(); d != nil {
				return d
			}
			continue
		}
		return nil
	}
}
