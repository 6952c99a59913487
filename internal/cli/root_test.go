package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esvalidate/esvalidate/internal/diag"
)

func TestResolveSource_PrefersStringFlagOverFile(t *testing.T) {
	oldString := stringSource
	defer func() { stringSource = oldString }()

	stringSource = "let x = 1;"
	name, src, err := resolveSource(nil)
	require.NoError(t, err)
	assert.Equal(t, "<string>", name)
	assert.Equal(t, "let x = 1;", string(src))
}

func TestResolveSource_ReadsNamedFile(t *testing.T) {
	oldString := stringSource
	stringSource = ""
	defer func() { stringSource = oldString }()

	path := filepath.Join(t.TempDir(), "sample.js")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1;"), 0o644))

	name, src, err := resolveSource([]string{path})
	require.NoError(t, err)
	assert.Equal(t, path, name)
	assert.Equal(t, "let x = 1;", string(src))
}

func TestResolveSource_MissingFileIsAnError(t *testing.T) {
	oldString := stringSource
	stringSource = ""
	defer func() { stringSource = oldString }()

	_, _, err := resolveSource([]string{filepath.Join(t.TempDir(), "missing.js")})
	assert.Error(t, err)
}

func TestReportDiagnostic_ReturnsTheDiagnosticAsError(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	d := diag.New(diag.PARSER_MISSING_SEMICOLON, diag.Position{Line: 2, Column: 5}, "missing semicolon")
	err := reportDiagnostic(log, d)
	assert.Same(t, d, err)
}
