package esvalidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esvalidate/esvalidate/internal/diag"
)

// TestValidate_EndToEndScenarios exercises the six literal end-to-end
// scenarios described in the project's testable properties verbatim.
func TestValidate_EndToEndScenarios(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
		code    diag.ErrorKind
	}{
		{"basic declaration and expression", "let x = 10; x + 1;", false, diag.NONE},
		{"ASI after return", "function f() { return\n42 }", false, diag.NONE},
		{"restricted throw newline is an error", "throw\nnew Error()", true, diag.PARSER_UNEXPECTED_TOKEN},
		{"regex after assign", "var a = /abc/gi;", false, diag.NONE},
		{"chained division", "var a = 1 / 2 / 3;", false, diag.NONE},
		{"label-like form missing separator", "{ a: 1 b: 2 }", true, diag.PARSER_MISSING_SEMICOLON},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(c.name, []byte(c.src))
			if !c.wantErr {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			d, ok := err.(*diag.Diagnostic)
			require.True(t, ok)
			assert.Equal(t, c.code, d.Code)
		})
	}
}

func TestValidateWithDepthLimit_OverridesDefault(t *testing.T) {
	src := ""
	for i := 0; i < 10; i++ {
		src += "{"
	}
	for i := 0; i < 10; i++ {
		src += "}"
	}
	err := ValidateWithDepthLimit("t", []byte(src), 5)
	require.NotNil(t, err)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, diag.PARSER_UNEXPECTED_TOKEN, d.Code)
}

func TestTokens_ReturnsFullStreamEndingInEOF(t *testing.T) {
	toks, d := Tokens([]byte("let x = 1;"))
	require.Nil(t, d)
	require.NotEmpty(t, toks)
	assert.Equal(t, "EOF", toks[len(toks)-1].Kind)
}

func TestTokens_StopsAtFirstLexicalError(t *testing.T) {
	toks, d := Tokens([]byte("let x = @;"))
	require.NotNil(t, d)
	assert.Equal(t, diag.LEXER_INVALID_CHAR, d.Code)
	for _, tok := range toks {
		assert.NotEqual(t, "ERROR", tok.Kind)
	}
}
