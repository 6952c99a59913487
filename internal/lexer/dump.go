package lexer

import "github.com/esvalidate/esvalidate/internal/diag"

// DumpToken is a plain, repr-friendly projection of a Token used only by
// the CLI's --dump-tokens debug driver — the closest thing this validator
// has to an AST printer, since it never builds a tree (see DESIGN.md).
type DumpToken struct {
	Kind   string
	Lexeme string
	Start  diag.Position
	End    diag.Position
}
