package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KeywordsAndIdentifiers(t *testing.T) {
	cases := []struct {
		lexeme string
		want   Kind
	}{
		{"var", VAR},
		{"let", LET},
		{"const", CONST},
		{"return", RETURN},
		{"throw", THROW},
		{"async", ASYNC},
		{"await", AWAIT},
		{"of", OF},
		{"static", STATIC},
		{"get", GET},
		{"set", SET},
		{"true", TRUE},
		{"false", FALSE},
		{"null", NULL},
		{"undefined", UNDEFINED},
		{"foo", IDENTIFIER},
		{"_bar", IDENTIFIER},
		{"$baz", IDENTIFIER},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Lookup(c.lexeme), "lexeme %q", c.lexeme)
	}
}

func TestIsContextualKeyword(t *testing.T) {
	for _, k := range []Kind{ASYNC, AWAIT, OF, STATIC, GET, SET} {
		assert.True(t, IsContextualKeyword(k))
	}
	for _, k := range []Kind{VAR, IDENTIFIER, RETURN, IF} {
		assert.False(t, IsContextualKeyword(k))
	}
}

func TestIsIdentifierLike(t *testing.T) {
	assert.True(t, IsIdentifierLike(IDENTIFIER))
	assert.True(t, IsIdentifierLike(ASYNC))
	assert.False(t, IsIdentifierLike(RETURN))
	assert.False(t, IsIdentifierLike(VAR))
}

func TestKind_StringRendersCanonicalSpelling(t *testing.T) {
	assert.Equal(t, "var", VAR.String())
	assert.Equal(t, "(", LPAREN.String())
	assert.Equal(t, ">>>=", USHR_ASSIGN.String())
	assert.Equal(t, "EOF", EOF.String())
}
