package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kconflint/kconflint/pkg/config"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Kconfig")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLintFile(t *testing.T) {
	path := writeTestFile(t, "config TEST\n\tbool \"Test\"  \n")

	diags := LintFile(path, config.Zephyr())
	require.Len(t, diags, 1)
	assert.Equal(t, path, diags[0].Path)
	assert.Equal(t, 2, diags[0].Line)
	assert.Contains(t, diags[0].Message, "Trailing whitespace")
}

func TestLintFileNotFound(t *testing.T) {
	diags := LintFile(filepath.Join(t.TempDir(), "missing", "Kconfig"), config.Zephyr())
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, config.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "Failed to read file")
}

func TestLintFileEmpty(t *testing.T) {
	path := writeTestFile(t, "")
	assert.Empty(t, LintFile(path, config.Zephyr()))
}

func TestFormatFile(t *testing.T) {
	path := writeTestFile(t, "#Bad comment\nconfig TEST\n  bool \"Test\"\n")

	formatted, diags := FormatFile(path, config.Zephyr())
	require.Len(t, formatted, 3)
	assert.Equal(t, "# Bad comment\n", formatted[0])
	assert.Equal(t, "\tbool \"Test\"\n", formatted[2])
	assert.NotEmpty(t, diags)
}

func TestFormatFileNotFound(t *testing.T) {
	formatted, diags := FormatFile(filepath.Join(t.TempDir(), "missing", "Kconfig"), config.Zephyr())
	assert.Empty(t, formatted)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Failed to read file")
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single line", "config TEST\n", []string{"config TEST\n"}},
		{"no trailing newline", "config TEST", []string{"config TEST"}},
		{"multiple lines", "a\nb\n", []string{"a\n", "b\n"}},
		{"blank line preserved", "a\n\nb\n", []string{"a\n", "\n", "b\n"}},
		{"crlf", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines([]byte(tt.content)))
		})
	}
}

func TestReadLines(t *testing.T) {
	path := writeTestFile(t, "config TEST\n\tbool \"Test\"\n")
	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"config TEST\n", "\tbool \"Test\"\n"}, lines)
}
