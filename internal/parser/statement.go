package parser

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
)

// parseStatement dispatches on the current token's kind to one of the
// statement forms. It enforces the recursion-depth guard: every entry
// increments the depth counter, and exceeding maxDepth is itself a
// diagnostic rather than a Go stack overflow.
func (p *Parser) parseStatement() *diag.Diagnostic {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return diag.New(diag.PARSER_UNEXPECTED_TOKEN, p.cur.Start, "Maximum recursion depth exceeded")
	}

	switch p.cur.Kind {
	case token.VAR, token.LET, token.CONST:
		return p.parseVariableStatement()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.CLASS:
		return p.parseClassDeclaration()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.SEMICOLON:
		return p.advance() // empty statement
	default:
		return p.parseExpressionStatement()
	}
}

// parseBlockStatement: `{` statement* `}`.
func (p *Parser) parseBlockStatement() *diag.Diagnostic {
	if d := p.expect(token.LBRACE); d != nil {
		return d
	}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		if d := p.parseStatement(); d != nil {
			return d
		}
	}
	return p.expect(token.RBRACE)
}

// parseExpressionStatement: an expression followed by ASI.
func (p *Parser) parseExpressionStatement() *diag.Diagnostic {
	if d := p.parseExpression(); d != nil {
		return d
	}
	return p.consumeSemicolon()
}

// parseVariableStatement: var|let|const, one or more comma-separated
// declarators (identifier with an optional `= assignment`), then ASI.
func (p *Parser) parseVariableStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil { // consume var/let/const
		return d
	}
	for {
		if d := p.expectIdentifierLike(); d != nil {
			return d
		}
		if p.at(token.ASSIGN) {
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.parseAssignment(); d != nil {
				return d
			}
		}
		if p.at(token.COMMA) {
			if d := p.advance(); d != nil {
				return d
			}
			continue
		}
		break
	}
	return p.consumeSemicolon()
}

// parseFunctionDeclaration: `function`, an optional name (the grammar does
// not require one), then the shared parameter-list-plus-body tail.
func (p *Parser) parseFunctionDeclaration() *diag.Diagnostic {
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

// parseClassDeclaration: `class` identifier, optional `extends`
// identifier, then a brace-delimited member list.
func (p *Parser) parseClassDeclaration() *diag.Diagnostic {
	if d := p.advance(); d != nil { // consume 'class'
		return d
	}
	if d := p.expectIdentifierLike(); d != nil {
		return d
	}
	if p.at(token.EXTENDS) {
		if d := p.advance(); d != nil {
			return d
		}
		if d := p.expectIdentifierLike(); d != nil {
			return d
		}
	}
	if d := p.expect(token.LBRACE); d != nil {
		return d
	}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		if p.at(token.SEMICOLON) {
			if d := p.advance(); d != nil {
				return d
			}
			continue
		}
		if d := p.parseClassMember(); d != nil {
			return d
		}
	}
	return p.expect(token.RBRACE)
}

// parseClassMember is deliberately permissive: it skips any run of
// modifier/name tokens (static, get, set, computed keys, ...) up to the
// parameter list, then parses a method body, rather than enumerating every
// legal modifier combination. `#private` names are not accepted: the lexer
// does not recognize `#`.
func (p *Parser) parseClassMember() *diag.Diagnostic {
	for !p.at(token.LPAREN) && !p.at(token.RBRACE) && !p.at(token.EOF) && !p.at(token.SEMICOLON) {
		if p.at(token.LBRACKET) {
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.parseAssignment(); d != nil {
				return d
			}
			if d := p.expect(token.RBRACKET); d != nil {
				return d
			}
			continue
		}
		if d := p.advance(); d != nil {
			return d
		}
	}
	if p.at(token.LPAREN) {
		return p.parseFunctionTail()
	}
	if p.at(token.RBRACE) || p.at(token.EOF) {
		return nil
	}
	return nil
}

// parseIfStatement: `if ( expr ) statement`, optional `else statement`.
func (p *Parser) parseIfStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if d := p.expect(token.LPAREN); d != nil {
		return d
	}
	if d := p.parseExpression(); d != nil {
		return d
	}
	if d := p.expect(token.RPAREN); d != nil {
		return d
	}
	if d := p.parseStatement(); d != nil {
		return d
	}
	if p.at(token.ELSE) {
		if d := p.advance(); d != nil {
			return d
		}
		return p.parseStatement()
	}
	return nil
}

// parseWhileStatement: `while ( expr ) statement`.
func (p *Parser) parseWhileStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if d := p.expect(token.LPAREN); d != nil {
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

// parseDoWhileStatement: `do statement while ( expr )` then ASI.
func (p *Parser) parseDoWhileStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if d := p.parseStatement(); d != nil {
		return d
	}
	if d := p.expect(token.WHILE); d != nil {
		return d
	}
	if d := p.expect(token.LPAREN); d != nil {
		return d
	}
	if d := p.parseExpression(); d != nil {
		return d
	}
	if d := p.expect(token.RPAREN); d != nil {
		return d
	}
	return p.consumeSemicolon()
}

// parseSwitchStatement: `switch ( expr ) { (case expr : statement*
// | default : statement*)* }`.
func (p *Parser) parseSwitchStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if d := p.expect(token.LPAREN); d != nil {
		return d
	}
	if d := p.parseExpression(); d != nil {
		return d
	}
	if d := p.expect(token.RPAREN); d != nil {
		return d
	}
	if d := p.expect(token.LBRACE); d != nil {
		return d
	}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		switch {
		case p.at(token.CASE):
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.parseExpression(); d != nil {
				return d
			}
			if d := p.expect(token.COLON); d != nil {
				return d
			}
		case p.at(token.DEFAULT):
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.expect(token.COLON); d != nil {
				return d
			}
		default:
			return p.unexpected("in switch body")
		}
		for !p.at(token.CASE) && !p.at(token.DEFAULT) && !p.at(token.RBRACE) && !p.at(token.EOF) {
			if d := p.parseStatement(); d != nil {
				return d
			}
		}
	}
	return p.expect(token.RBRACE)
}

// parseTryStatement: `try block (catch (ident)? block)? (finally block)?`.
// Whether at least one of catch/finally is present is not enforced — see
// DESIGN.md.
func (p *Parser) parseTryStatement() *diag.Diagnostic {
	if d := p.advance(); d != nil {
		return d
	}
	if d := p.parseBlockStatement(); d != nil {
		return d
	}
	if p.at(token.CATCH) {
		if d := p.advance(); d != nil {
			return d
		}
		if p.at(token.LPAREN) {
			if d := p.advance(); d != nil {
				return d
			}
			if d := p.expectIdentifierLike(); d != nil {
				return d
			}
			if d := p.expect(token.RPAREN); d != nil {
				return d
			}
		}
		if d := p.parseBlockStatement(); d != nil {
			return d
		}
	}
	if p.at(token.FINALLY) {
		if d := p.advance(); d != nil {
			return d
		}
		if d := p.parseBlockStatement(); d != nil {
			return d
		}
	}
	return nil
}
