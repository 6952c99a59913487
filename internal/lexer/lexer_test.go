package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
)

// lexAll drains a Lexer to completion (inclusive of the EOF token) and
// requires that no diagnostic was raised along the way.
func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	lx := New(src)
	var toks []token.Token
	for {
		tok, d := lx.Next()
		require.Nil(t, d, "unexpected lexical error: %v", d)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexer_Punctuators(t *testing.T) {
	toks := lexAll(t, "( ) { } [ ] ; , . : ?")
	assert.Equal(t, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.SEMICOLON, token.COMMA,
		token.DOT, token.COLON, token.QUESTION, token.EOF,
	}, kinds(toks))
}

func TestLexer_MaximalMunchOperators(t *testing.T) {
	cases := []struct {
		src  string
		want token.Kind
	}{
		{">>>=", token.USHR_ASSIGN},
		{">>>", token.USHR},
		{"===", token.SEQ},
		{"!==", token.SNE},
		{"...", token.ELLIPSIS},
		{"**=", token.STAR_STAR_ASSIGN},
		{"&&=", token.AND_ASSIGN},
		{"||=", token.OR_ASSIGN},
		{"??=", token.NULLISH_ASSIGN},
		{"<<=", token.SHL_ASSIGN},
		{">>=", token.SHR_ASSIGN},
		{"==", token.EQ},
		{"=>", token.ARROW},
		{"?.", token.OPTIONAL_CHAIN},
		{"**", token.STAR_STAR},
	}
	for _, c := range cases {
		toks := lexAll(t, c.src)
		require.Len(t, toks, 2, "src %q", c.src)
		assert.Equal(t, c.want, toks[0].Kind, "src %q", c.src)
		assert.Equal(t, c.src, toks[0].Lexeme)
	}
}

func TestLexer_MaximalMunchNoShorterPrefixLeftUnmatched(t *testing.T) {
	// ">>>=" must not lex as ">>" followed by ">=".
	toks := lexAll(t, ">>>=x")
	assert.Equal(t, token.USHR_ASSIGN, toks[0].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[1].Kind)
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	toks := lexAll(t, "var x = async")
	assert.Equal(t, []token.Kind{token.VAR, token.IDENTIFIER, token.ASSIGN, token.ASYNC, token.EOF}, kinds(toks))
}

func TestLexer_PlainIdentifier(t *testing.T) {
	toks := lexAll(t, `abc`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "abc", toks[0].Lexeme)
}

func TestLexer_UnicodeEscapeContinuingAnIdentifier(t *testing.T) {
	src := "a\\u0062c"
	toks := lexAll(t, src)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "abc", toks[0].Lexeme)
}

func TestLexer_InvalidUnicodeEscape(t *testing.T) {
	// The escape must appear inside an identifier to reach the escape
	// decoder at all; a bare leading backslash is simply an invalid byte.
	lx := New(`a\u12`)
	_, d := lx.Next()
	require.NotNil(t, d)
	assert.Equal(t, diag.LEXER_INVALID_UNICODE_ESCAPE, d.Code)
}

func TestLexer_NumberLiterals(t *testing.T) {
	cases := []string{"0", "123", "0x1F", "0X1f", "0b101", "0o17", "3.14", "0.5", "1e10", "1.5e-3", "1E+2"}
	for _, src := range cases {
		toks := lexAll(t, src)
		require.Len(t, toks, 2, "src %q", src)
		assert.Equal(t, token.NUMBER, toks[0].Kind, "src %q", src)
		assert.Equal(t, src, toks[0].Lexeme, "src %q", src)
	}
}

func TestLexer_NumberDotNotFollowedByDigitStopsBeforeDot(t *testing.T) {
	// `1.toString()` - the '.' is member access, not a fraction, because no
	// digit follows it.
	toks := lexAll(t, "1.toString()")
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Lexeme)
	assert.Equal(t, token.DOT, toks[1].Kind)
}

func TestLexer_StringLiterals(t *testing.T) {
	toks := lexAll(t, `"hello" 'world' "esc\"aped"`)
	require.Len(t, toks, 4)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, `"hello"`, toks[0].Lexeme)
	assert.Equal(t, token.STRING, toks[1].Kind)
	assert.Equal(t, token.STRING, toks[2].Kind)
}

func TestLexer_UnterminatedStringIsError(t *testing.T) {
	lx := New(`"abc`)
	_, d := lx.Next()
	require.NotNil(t, d)
	assert.Equal(t, diag.LEXER_UNTERMINATED_STRING, d.Code)
}

func TestLexer_LineTerminatorInStringIsError(t *testing.T) {
	lx := New("\"abc\ndef\"")
	_, d := lx.Next()
	require.NotNil(t, d)
	assert.Equal(t, diag.LEXER_UNTERMINATED_STRING, d.Code)
}

func TestLexer_TemplateLiteralOpaque(t *testing.T) {
	toks := lexAll(t, "`hello ${name} world`")
	require.Len(t, toks, 2)
	assert.Equal(t, token.TEMPLATE, toks[0].Kind)
	assert.Equal(t, "`hello ${name} world`", toks[0].Lexeme)
}

func TestLexer_UnterminatedTemplateIsError(t *testing.T) {
	lx := New("`abc")
	_, d := lx.Next()
	require.NotNil(t, d)
	assert.Equal(t, diag.LEXER_UNTERMINATED_STRING, d.Code)
}

func TestLexer_RegexAfterAssignIsRegex(t *testing.T) {
	toks := lexAll(t, "var a = /abc/gi;")
	require.Len(t, toks, 6)
	assert.Equal(t, token.REGEX, toks[3].Kind)
	assert.Equal(t, "/abc/gi", toks[3].Lexeme)
}

func TestLexer_DivisionAfterNumberIsDivision(t *testing.T) {
	toks := lexAll(t, "1 / 2 / 3;")
	kindsSeen := kinds(toks)
	assert.Equal(t, []token.Kind{
		token.NUMBER, token.SLASH, token.NUMBER, token.SLASH, token.NUMBER, token.SEMICOLON, token.EOF,
	}, kindsSeen)
}

func TestLexer_DivisionAfterIdentifierIsDivision(t *testing.T) {
	toks := lexAll(t, "a / b")
	assert.Equal(t, token.SLASH, toks[1].Kind)
}

func TestLexer_RegexAfterKeywordsReturnAndThrow(t *testing.T) {
	for _, src := range []string{"return /x/;", "throw /x/;"} {
		toks := lexAll(t, src)
		assert.Equal(t, token.REGEX, toks[1].Kind, "src %q", src)
	}
}

func TestLexer_RegexCharacterClassDoesNotTerminateOnSlash(t *testing.T) {
	toks := lexAll(t, "var r = /[a/b]/;")
	require.Len(t, toks, 6)
	assert.Equal(t, token.REGEX, toks[3].Kind)
	assert.Equal(t, "/[a/b]/", toks[3].Lexeme)
}

func TestLexer_UnterminatedRegexIsError(t *testing.T) {
	lx := New("/abc")
	_, d := lx.Next()
	require.NotNil(t, d)
	assert.Equal(t, diag.LEXER_UNTERMINATED_REGEX, d.Code)
}

func TestLexer_LineCommentSkippedToEOL(t *testing.T) {
	toks := lexAll(t, "1 // comment\n2")
	require.Len(t, toks, 3)
	assert.True(t, toks[1].PrecededByNewline)
}

func TestLexer_BlockCommentSpansLinesAndSetsNewlineFlag(t *testing.T) {
	toks := lexAll(t, "1 /* multi\nline */ 2")
	require.Len(t, toks, 3)
	assert.True(t, toks[1].PrecededByNewline)
}

func TestLexer_UnterminatedBlockCommentIsError(t *testing.T) {
	lx := New("/* never closes")
	_, d := lx.Next()
	require.NotNil(t, d)
}

func TestLexer_NewlineFlagReflectsOnlyImmediatelyPrecedingGap(t *testing.T) {
	toks := lexAll(t, "a\nb c")
	require.Len(t, toks, 4)
	assert.False(t, toks[0].PrecededByNewline)
	assert.True(t, toks[1].PrecededByNewline)
	assert.False(t, toks[2].PrecededByNewline)
}

func TestLexer_PositionMonotonicity(t *testing.T) {
	toks := lexAll(t, "abc\ndef ghi")
	prevOffset := -1
	for _, tok := range toks {
		assert.GreaterOrEqual(t, tok.Start.Offset, prevOffset)
		prevOffset = tok.Start.Offset
	}
}

func TestLexer_UnrecognizedByteIsError(t *testing.T) {
	lx := New("@")
	_, d := lx.Next()
	require.NotNil(t, d)
	assert.Equal(t, diag.LEXER_INVALID_CHAR, d.Code)
}

func TestLexer_UnicodeIdentifier(t *testing.T) {
	toks := lexAll(t, "café")
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "café", toks[0].Lexeme)
}
