// Package token defines the fixed token-kind enumeration and the Token
// value the tokenizer emits, plus the keyword lookup table used to
// classify identifiers. The style mirrors a hand-written keyword map
// (string lexeme -> Kind) rather than a generated perfect hash, since the
// keyword set is small and fixed.
package token

import "github.com/esvalidate/esvalidate/internal/diag"

// Kind is the category of a token. It belongs to a fixed enumeration; no
// new kinds are added at runtime.
type Kind int

const (
	// Control
	EOF Kind = iota
	ERROR

	// Literals
	IDENTIFIER
	NUMBER
	STRING
	TEMPLATE
	REGEX
	TRUE
	FALSE
	NULL
	UNDEFINED

	// Keywords (reserved words)
	BREAK
	CASE
	CATCH
	CLASS
	CONST
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	ELSE
	EXPORT
	EXTENDS
	FINALLY
	FOR
	FUNCTION
	IF
	IMPORT
	IN
	INSTANCEOF
	LET
	NEW
	RETURN
	SUPER
	SWITCH
	THIS
	THROW
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH
	YIELD

	// Contextual keywords: tokenize distinctly, but the parser accepts them
	// wherever an ordinary identifier is expected.
	ASYNC
	AWAIT
	OF
	STATIC
	GET
	SET

	// Punctuators
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMICOLON
	COMMA
	DOT
	COLON
	QUESTION

	// Arithmetic
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	STAR_STAR
	PLUS_PLUS
	MINUS_MINUS

	// Assignment
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	STAR_STAR_ASSIGN
	SHL_ASSIGN
	SHR_ASSIGN
	USHR_ASSIGN
	AMP_ASSIGN
	PIPE_ASSIGN
	CARET_ASSIGN
	AND_ASSIGN
	OR_ASSIGN
	NULLISH_ASSIGN

	// Comparison
	EQ
	NE
	SEQ
	SNE
	LT
	LE
	GT
	GE

	// Logical
	AND
	OR
	NOT
	NULLISH

	// Bitwise
	AMP
	PIPE
	CARET
	TILDE
	SHL
	SHR
	USHR

	// Other
	ARROW
	ELLIPSIS
	OPTIONAL_CHAIN
)

var kindNames = map[Kind]string{
	EOF: "EOF", ERROR: "ERROR",
	IDENTIFIER: "IDENTIFIER", NUMBER: "NUMBER", STRING: "STRING",
	TEMPLATE: "TEMPLATE", REGEX: "REGEX", TRUE: "TRUE", FALSE: "FALSE",
	NULL: "NULL", UNDEFINED: "UNDEFINED",
	BREAK: "break", CASE: "case", CATCH: "catch", CLASS: "class",
	CONST: "const", CONTINUE: "continue", DEBUGGER: "debugger",
	DEFAULT: "default", DELETE: "delete", DO: "do", ELSE: "else",
	EXPORT: "export", EXTENDS: "extends", FINALLY: "finally", FOR: "for",
	FUNCTION: "function", IF: "if", IMPORT: "import", IN: "in",
	INSTANCEOF: "instanceof", LET: "let", NEW: "new", RETURN: "return",
	SUPER: "super", SWITCH: "switch", THIS: "this", THROW: "throw",
	TRY: "try", TYPEOF: "typeof", VAR: "var", VOID: "void", WHILE: "while",
	WITH: "with", YIELD: "yield",
	ASYNC: "async", AWAIT: "await", OF: "of", STATIC: "static", GET: "get", SET: "set",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACKET: "[", RBRACKET: "]",
	SEMICOLON: ";", COMMA: ",", DOT: ".", COLON: ":", QUESTION: "?",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%", STAR_STAR: "**",
	PLUS_PLUS: "++", MINUS_MINUS: "--",
	ASSIGN: "=", PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=",
	SLASH_ASSIGN: "/=", PERCENT_ASSIGN: "%=", STAR_STAR_ASSIGN: "**=",
	SHL_ASSIGN: "<<=", SHR_ASSIGN: ">>=", USHR_ASSIGN: ">>>=",
	AMP_ASSIGN: "&=", PIPE_ASSIGN: "|=", CARET_ASSIGN: "^=",
	AND_ASSIGN: "&&=", OR_ASSIGN: "||=", NULLISH_ASSIGN: "??=",
	EQ: "==", NE: "!=", SEQ: "===", SNE: "!==", LT: "<", LE: "<=", GT: ">", GE: ">=",
	AND: "&&", OR: "||", NOT: "!", NULLISH: "??",
	AMP: "&", PIPE: "|", CARET: "^", TILDE: "~", SHL: "<<", SHR: ">>", USHR: ">>>",
	ARROW: "=>", ELLIPSIS: "...", OPTIONAL_CHAIN: "?.",
}

// String returns the canonical spelling of a Kind, or its keyword/operator
// text for printable kinds.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is one lexical element: its kind, the exact source slice that
// produced it, its start/end positions, and whether a line terminator
// preceded it. Lexeme is retained even for punctuators; callers that care
// about footprint may ignore it, but diagnostics benefit from always having
// the exact text at hand.
type Token struct {
	Kind               Kind
	Lexeme             string
	Start              diag.Position
	End                diag.Position
	PrecededByNewline  bool
}

// keywords maps a reserved-word lexeme to its Kind. Identifiers that miss
// this table are IDENTIFIER; this is a pure function of the lexeme, so it
// never needs invalidation.
var keywords = map[string]Kind{
	"break": BREAK, "case": CASE, "catch": CATCH, "class": CLASS,
	"const": CONST, "continue": CONTINUE, "debugger": DEBUGGER,
	"default": DEFAULT, "delete": DELETE, "do": DO, "else": ELSE,
	"export": EXPORT, "extends": EXTENDS, "finally": FINALLY, "for": FOR,
	"function": FUNCTION, "if": IF, "import": IMPORT, "in": IN,
	"instanceof": INSTANCEOF, "let": LET, "new": NEW, "return": RETURN,
	"super": SUPER, "switch": SWITCH, "this": THIS, "throw": THROW,
	"try": TRY, "typeof": TYPEOF, "var": VAR, "void": VOID, "while": WHILE,
	"with": WITH, "yield": YIELD,
	"true": TRUE, "false": FALSE, "null": NULL, "undefined": UNDEFINED,
	"async": ASYNC, "await": AWAIT, "of": OF, "static": STATIC,
	"get": GET, "set": SET,
}

// Lookup classifies an identifier lexeme: it returns the keyword Kind if
// the lexeme is reserved, otherwise IDENTIFIER.
func Lookup(lexeme string) Kind {
	if k, ok := keywords[lexeme]; ok {
		return k
	}
	return IDENTIFIER
}

// IsContextualKeyword reports whether k is one of the contextual keywords
// that the grammar also accepts as a plain identifier (async, await, of,
// static, get, set).
func IsContextualKeyword(k Kind) bool {
	switch k {
	case ASYNC, AWAIT, OF, STATIC, GET, SET:
		return true
	default:
		return false
	}
}

// IsIdentifierLike reports whether a token in position k can stand wherever
// the grammar expects an ordinary identifier: true IDENTIFIER tokens and
// the contextual keywords.
func IsIdentifierLike(k Kind) bool {
	return k == IDENTIFIER || IsContextualKeyword(k)
}
