package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepl_PrintBannerIncludesBannerAndVersion(t *testing.T) {
	r := New("BANNER", "v1.2.3", "----", "esvalidate> ", 1000)
	var buf bytes.Buffer
	r.PrintBanner(&buf)
	out := buf.String()
	assert.Contains(t, out, "BANNER")
	assert.Contains(t, out, "v1.2.3")
}

func TestRepl_ValidateLineAcceptsValidSource(t *testing.T) {
	r := New("B", "v1", "-", "> ", 1000)
	var buf bytes.Buffer
	r.validateLine(&buf, "let x = 1;")
	assert.Contains(t, buf.String(), "Syntax is valid")
}

func TestRepl_ValidateLineRejectsInvalidSource(t *testing.T) {
	r := New("B", "v1", "-", "> ", 1000)
	var buf bytes.Buffer
	r.validateLine(&buf, "let x = @;")
	assert.Contains(t, buf.String(), "Syntax error detected")
}
