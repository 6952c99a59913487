package parser

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
)

// parseLeftHandSide: either a `new` expression (constructor member
// expression plus an optional argument list) or an ordinary call
// expression, in both cases followed by zero or more member/call chain
// links (`.ident`, `[expr]`, `(args)`, `?.ident`).
func (p *Parser) parseLeftHandSide() *diag.Diagnostic {
	if p.at(token.NEW) {
		if d := p.parseNewExpression(); d != nil {
			return d
		}
	} else if d := p.parsePrimary(); d != nil {
		return d
	}
	return p.parseChainTail()
}

// parseNewExpression consumes `new`, a member-only chain (no calls — a
// bare `new Foo` without an argument list is legal), and an optional
// argument list for the constructor call itself. Nested `new new Foo()`
// is supported by recursing when another `new` follows immediately.
func (p *Parser) parseNewExpression() *diag.Diagnostic {
	if d := p.advance(); d != nil { // consume 'new'
		return d
	}
	if p.at(token.NEW) {
		if d := p.parseNewExpression(); d != nil {
			return d
		}
	} else if d := p.parsePrimary(); d != nil {
		return d
	}
	if d := p.parseMemberChain(); d != nil {
		return d
	}
	if p.at(token.LPAREN) {
		return p.parseArguments()
	}
	return nil
}

// parseMemberChain consumes `.ident`, `[expr]`, and `?.ident` links without
// call parentheses — the form allowed as the object of `new`.
func (p *Parser) parseMemberChain() *diag.Diagnostic {
	for {
		switch {
		case p.at(token.DOT):
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.expectIdentifierLike(); d != nil {
				return d
			}
		case p.at(token.OPTIONAL_CHAIN):
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.expectIdentifierLike(); d != nil {
				return d
			}
		case p.at(token.LBRACKET):
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.parseExpression(); d != nil {
				return d
			}
			if d := p.expect(token.RBRACKET); d != nil {
				return d
			}
		default:
			return nil
		}
	}
}

// parseChainTail consumes the full call-expression chain: member links
// interleaved with argument lists, in any order (`a.b(1)[2].c()`).
func (p *Parser) parseChainTail() *diag.Diagnostic {
	for {
		switch {
		case p.at(token.DOT):
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.expectIdentifierLike(); d != nil {
				return d
			}
		case p.at(token.OPTIONAL_CHAIN):
			if d := p.advance(); d != nil {
				return d
			}
			if p.at(token.LPAREN) {
				if d := p.parseArguments(); d != nil {
					return d
				}
				continue
			}
			if p.at(token.LBRACKET) {
				if d := p.advance(); d != nil {
					return d
				}
				if d := p.parseExpression(); d != nil {
					return d
				}
				if d := p.expect(token.RBRACKET); d != nil {
					return d
				}
				continue
			}
			if d := p.expectIdentifierLike(); d != nil {
				return d
			}
		case p.at(token.LBRACKET):
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.parseExpression(); d != nil {
				return d
			}
			if d := p.expect(token.RBRACKET); d != nil {
				return d
			}
		case p.at(token.LPAREN):
			if d := p.parseArguments(); d != nil {
				return d
			}
		default:
			return nil
		}
	}
}

// parseArguments consumes a parenthesized, comma-separated argument list
// with an optional trailing comma and optional leading `...` spread per
// argument.
func (p *Parser) parseArguments() *diag.Diagnostic {
	if d := p.advance(); d != nil { // consume '('
		return d
	}
	for !p.at(token.RPAREN) {
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
	return p.expect(token.RPAREN)
}
