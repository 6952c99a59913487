// Package esvalidate provides a hand-written tokenizer and recursive-descent
// parser for an ECMAScript-like language, exposing a single Validate entry
// point that reports accept/reject plus at most one Diagnostic — no AST is
// built and nothing is evaluated.
package esvalidate

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/lexer"
	"github.com/esvalidate/esvalidate/internal/parser"
	"github.com/esvalidate/esvalidate/internal/token"
)

// Validate checks src for syntactic validity. name identifies the source
// for diagnostic purposes only (e.g. a file path); it is never parsed. A
// nil return means src is syntactically valid; otherwise the returned
// error is a *diag.Diagnostic describing the first failure encountered.
func Validate(name string, src []byte) error {
	return ValidateWithDepthLimit(name, src, parser.DefaultMaxRecursionDepth)
}

// ValidateWithDepthLimit is Validate with a caller-supplied recursion-depth
// cap, letting .esvalidate.yaml's maxRecursionDepth reach the parser.
func ValidateWithDepthLimit(name string, src []byte, maxDepth int) error {
	_ = name
	lx := lexer.New(string(src))
	p, d := parser.NewWithDepthLimit(lx, maxDepth)
	if d != nil {
		return d
	}
	if d := p.Validate(); d != nil {
		return d
	}
	return nil
}

// Tokens lexes src to completion and returns every token produced, or the
// first lexical Diagnostic. It exists to back the CLI's --dump-tokens
// debug flag (see internal/cli) without requiring a second entry point
// into the lexer.
func Tokens(src []byte) ([]lexer.DumpToken, *diag.Diagnostic) {
	lx := lexer.New(string(src))
	var out []lexer.DumpToken
	for {
		tok, d := lx.Next()
		if d != nil {
			return out, d
		}
		out = append(out, lexer.DumpToken{Kind: tok.Kind.String(), Lexeme: tok.Lexeme, Start: tok.Start, End: tok.End})
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}
