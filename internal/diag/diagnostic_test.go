package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_TruncatesOverlongMessage(t *testing.T) {
	d := New(LEXER_INVALID_CHAR, Position{Line: 1, Column: 1}, "%s", strings.Repeat("x", 400))
	assert.LessOrEqual(t, len(d.Message), 255)
}

func TestDiagnostic_ErrorIncludesPositionAndMessage(t *testing.T) {
	d := New(PARSER_MISSING_SEMICOLON, Position{Line: 3, Column: 7}, "missing semicolon before %s", "IDENTIFIER")
	assert.Contains(t, d.Error(), "line 3, column 7")
	assert.Contains(t, d.Error(), "missing semicolon before IDENTIFIER")
}

func TestErrorKind_StringCoversEnumeration(t *testing.T) {
	kinds := []ErrorKind{
		NONE, LEXER_INVALID_CHAR, LEXER_UNTERMINATED_STRING, LEXER_UNTERMINATED_REGEX,
		LEXER_INVALID_NUMBER, LEXER_INVALID_UNICODE_ESCAPE, PARSER_UNEXPECTED_TOKEN,
		PARSER_EXPECTED_TOKEN, PARSER_INVALID_ASSIGNMENT, PARSER_MISSING_SEMICOLON,
		PARSER_UNEXPECTED_EOF, FILE_READ, OUT_OF_MEMORY,
	}
	for _, k := range kinds {
		assert.NotEqual(t, "UNKNOWN", k.String())
	}
}

func TestPosition_String(t *testing.T) {
	p := Position{Line: 5, Column: 2, Offset: 40}
	assert.Equal(t, "line 5, column 2", p.String())
}
