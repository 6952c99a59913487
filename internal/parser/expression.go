package parser

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
)

// parseExpression is the top-level expression entry point: assignment is
// the lowest precedence rung in the ladder, so every expression context
// starts here.
func (p *Parser) parseExpression() *diag.Diagnostic {
	return p.parseAssignment()
}

var assignmentOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.STAR_STAR_ASSIGN: true, token.SHL_ASSIGN: true, token.SHR_ASSIGN: true,
	token.USHR_ASSIGN: true, token.AMP_ASSIGN: true, token.PIPE_ASSIGN: true,
	token.CARET_ASSIGN: true, token.AND_ASSIGN: true, token.OR_ASSIGN: true,
	token.NULLISH_ASSIGN: true,
}

// parseAssignment: conditional, optionally followed by one assignment
// operator and a right-associative recursive assignment expression.
// Whether the left side is a valid assignment target is not checked.
func (p *Parser) parseAssignment() *diag.Diagnostic {
	if d := p.parseConditional(); d != nil {
		return d
	}
	if assignmentOps[p.cur.Kind] {
		if d := p.advance(); d != nil {
			return d
		}
		return p.parseAssignment()
	}
	return nil
}

// parseConditional: logical-or, optionally followed by `? assignment :
// assignment`.
func (p *Parser) parseConditional() *diag.Diagnostic {
	if d := p.parseLogicalOr(); d != nil {
		return d
	}
	if p.at(token.QUESTION) {
		if d := p.advance(); d != nil {
			return d
		}
		if d := p.parseAssignment(); d != nil {
			return d
		}
		if d := p.expect(token.COLON); d != nil {
			return d
		}
		if d := p.parseAssignment(); d != nil {
			return d
		}
	}
	return nil
}

// binaryLevel describes one left-associative rung of the binary ladder: the
// next-tighter parse function and the set of operators consumed at this
// level.
type binaryLevel struct {
	next func(*Parser) *diag.Diagnostic
	ops  map[token.Kind]bool
}

func (p *Parser) parseLeftAssociative(lvl binaryLevel) *diag.Diagnostic {
	if d := lvl.next(p); d != nil {
		return d
	}
	for lvl.ops[p.cur.Kind] {
		if d := p.advance(); d != nil {
			return d
		}
		if d := lvl.next(p); d != nil {
			return d
		}
	}
	return nil
}

var logicalOrOps = map[token.Kind]bool{token.OR: true, token.NULLISH: true}
var logicalAndOps = map[token.Kind]bool{token.AND: true}
var bitOrOps = map[token.Kind]bool{token.PIPE: true}
var bitXorOps = map[token.Kind]bool{token.CARET: true}
var bitAndOps = map[token.Kind]bool{token.AMP: true}
var equalityOps = map[token.Kind]bool{token.EQ: true, token.NE: true, token.SEQ: true, token.SNE: true}
var relationalOps = map[token.Kind]bool{
	token.LT: true, token.LE: true, token.GT: true, token.GE: true,
	token.INSTANCEOF: true, token.IN: true,
}
var shiftOps = map[token.Kind]bool{token.SHL: true, token.SHR: true, token.USHR: true}
var additiveOps = map[token.Kind]bool{token.PLUS: true, token.MINUS: true}
var multiplicativeOps = map[token.Kind]bool{token.STAR: true, token.SLASH: true, token.PERCENT: true}

func (p *Parser) parseLogicalOr() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseLogicalAnd, logicalOrOps})
}
func (p *Parser) parseLogicalAnd() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseBitOr, logicalAndOps})
}
func (p *Parser) parseBitOr() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseBitXor, bitOrOps})
}
func (p *Parser) parseBitXor() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseBitAnd, bitXorOps})
}
func (p *Parser) parseBitAnd() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseEquality, bitAndOps})
}
func (p *Parser) parseEquality() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseRelational, equalityOps})
}
func (p *Parser) parseRelational() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseShift, relationalOps})
}
func (p *Parser) parseShift() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseAdditive, shiftOps})
}
func (p *Parser) parseAdditive() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseMultiplicative, additiveOps})
}
func (p *Parser) parseMultiplicative() *diag.Diagnostic {
	return p.parseLeftAssociative(binaryLevel{(*Parser).parseExponent, multiplicativeOps})
}

// parseExponent is right-associative: `**` binds its right operand by
// recursing back into parseExponent rather than looping.
func (p *Parser) parseExponent() *diag.Diagnostic {
	if d := p.parseUnary(); d != nil {
		return d
	}
	if p.at(token.STAR_STAR) {
		if d := p.advance(); d != nil {
			return d
		}
		return p.parseExponent()
	}
	return nil
}

var unaryPrefixOps = map[token.Kind]bool{
	token.PLUS: true, token.MINUS: true, token.NOT: true, token.TILDE: true,
	token.PLUS_PLUS: true, token.MINUS_MINUS: true,
	token.TYPEOF: true, token.VOID: true, token.DELETE: true,
}

// parseUnary: zero or more prefix operators (higher precedence than
// exponent per the ladder, so `-2 ** 3` groups as `(-2) ** 3`), then
// postfix.
func (p *Parser) parseUnary() *diag.Diagnostic {
	if unaryPrefixOps[p.cur.Kind] {
		if d := p.advance(); d != nil {
			return d
		}
		return p.parseUnary()
	}
	return p.parsePostfix()
}

// parsePostfix: a left-hand-side expression, optionally followed by a
// postfix `++`/`--` not itself preceded by a newline (ASI forbids treating
// a newline-separated `++`/`--` as postfix on the prior line).
func (p *Parser) parsePostfix() *diag.Diagnostic {
	if d := p.parseLeftHandSide(); d != nil {
		return d
	}
	if (p.at(token.PLUS_PLUS) || p.at(token.MINUS_MINUS)) && !p.cur.PrecededByNewline {
		return p.advance()
	}
	return nil
}
