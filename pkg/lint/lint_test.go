package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kconflint/kconflint/pkg/config"
)

func TestLintValidZephyrFile(t *testing.T) {
	lines := []string{
		"# Network configuration\n",
		"\n",
		"config NETWORKING\n",
		"\tbool \"Enable networking\"\n",
		"\thelp\n",
		"\t  Enable network stack support.\n",
		"\n",
		"config NET_IPV4\n",
		"\tbool \"IPv4 support\"\n",
		"\tdepends on NETWORKING\n",
		"\thelp\n",
		"\t  Enable IPv4 protocol support.\n",
	}

	diags := Lint(lines, config.Zephyr())
	assert.Empty(t, diags)
}

func TestLintValidESPIDFFile(t *testing.T) {
	lines := []string{
		"menu \"Network\"\n",
		"    config NET_ENABLED\n",
		"        bool \"Enable networking\"\n",
		"        help\n",
		"            Enable network stack.\n",
		"endmenu\n",
	}

	diags := Lint(lines, config.ESPIDF())
	assert.Empty(t, diags)
}

func TestLintTrailingWhitespace(t *testing.T) {
	lines := []string{
		"config TEST\n",
		"\tbool \"Test\"  \n",
	}

	diags := Lint(lines, config.Zephyr())
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)
	assert.Equal(t, 13, diags[0].Column)
	assert.Contains(t, diags[0].Message, "Trailing whitespace")
	assert.Equal(t, config.SeverityWarning, diags[0].Severity)
}

func TestLintLineTooLong(t *testing.T) {
	diags := Lint([]string{"# " + strings.Repeat("x", 100) + "\n"}, config.Zephyr())
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "exceeds 100 characters")
}

func TestLintCustomLineLength(t *testing.T) {
	style := config.Zephyr()
	style.MaxLineLength = 50

	diags := Lint([]string{"# " + strings.Repeat("x", 60) + "\n"}, style)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "exceeds 50 characters")
}

func TestLintIndentCharacter(t *testing.T) {
	tests := []struct {
		name  string
		style config.Style
		lines []string
		want  string
	}{
		{
			name:  "spaces under tab style",
			style: config.Zephyr(),
			lines: []string{"config TEST\n", "    bool \"Test\"\n"},
			want:  "Use tabs for indentation",
		},
		{
			name:  "tabs under space style",
			style: config.ESPIDF(),
			lines: []string{"config TEST\n", "\tbool \"Test\"\n"},
			want:  "Use spaces for indentation",
		},
		{
			name:  "mixed tabs and spaces",
			style: config.Zephyr(),
			lines: []string{"config TEST\n", "\t  bool \"Test\"\n"},
			want:  "Mixed tabs and spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Lint(tt.lines, tt.style)
			require.Len(t, diags, 1)
			assert.Contains(t, diags[0].Message, tt.want)
		})
	}
}

func TestLintMixedReplacesSingleCharacterViolation(t *testing.T) {
	diags := Lint([]string{"config TEST\n", "\t  bool \"Test\"\n"}, config.Zephyr())
	require.Len(t, diags, 1)
	assert.NotContains(t, diags[0].Message, "Use tabs")
}

func TestLintIndentWidthMultiple(t *testing.T) {
	diags := Lint([]string{"config TEST\n", "  bool \"Test\"\n"}, config.ESPIDF())
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if strings.Contains(d.Message, "multiple of 4") {
			found = true
		}
	}
	assert.True(t, found, "expected a multiple-of-4 diagnostic, got %v", diags)
}

func TestLintCommentSpacing(t *testing.T) {
	diags := Lint([]string{"#Bad comment\n"}, config.Zephyr())
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "space after #")
}

func TestLintBareHashIsValid(t *testing.T) {
	diags := Lint([]string{"#\n"}, config.Zephyr())
	assert.Empty(t, diags)
}

func TestLintHelpTextIndentation(t *testing.T) {
	lines := []string{
		"config TEST\n",
		"\tbool \"Test\"\n",
		"\thelp\n",
		"\tWrong indentation.\n",
	}

	diags := Lint(lines, config.Zephyr())
	require.Len(t, diags, 1)
	assert.Equal(t, 4, diags[0].Line)
	assert.Contains(t, diags[0].Message, "Help text should be indented")
}

func TestLintHelpKeywordNotCheckedAsBody(t *testing.T) {
	lines := []string{
		"config TEST\n",
		"\tbool \"Test\"\n",
		"\thelp\n",
		"\t  Text.\n",
	}

	diags := Lint(lines, config.Zephyr())
	assert.Empty(t, diags)
}

func TestLintHelpBodyKeywordLikeText(t *testing.T) {
	lines := []string{
		"config TEST\n",
		"\tbool \"Test\"\n",
		"\thelp\n",
		"\t  If unsure, say N.\n",
		"\t  default behavior is off.\n",
	}

	diags := Lint(lines, config.Zephyr())
	assert.Empty(t, diags)
}

func TestLintUppercaseNames(t *testing.T) {
	lines := []string{
		"config LowercaseConfig\n",
		"    bool \"Test\"\n",
	}

	diags := Lint(lines, config.ESPIDF())
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "must be uppercase")
}

func TestLintNameLength(t *testing.T) {
	style := config.Zephyr()
	style.MaxNameLength = 10

	diags := Lint([]string{"config " + strings.Repeat("A", 20) + "\n"}, style)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "exceeds 10 characters")
}

func TestLintPrefixLength(t *testing.T) {
	diags := Lint([]string{"config AB_TEST\n"}, config.ESPIDF())
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "at least 3 characters")
}

func TestLintNameWithoutUnderscoreSkipsPrefixCheck(t *testing.T) {
	diags := Lint([]string{"config TESTING\n"}, config.ESPIDF())
	for _, d := range diags {
		assert.NotContains(t, strings.ToLower(d.Message), "prefix")
	}
}

func TestLintMalformedDeclaration(t *testing.T) {
	diags := Lint([]string{"config\n"}, config.ESPIDF())
	assert.Empty(t, diags)
}

func TestLintConsecutiveBlankLines(t *testing.T) {
	style := config.Zephyr()
	style.ConsolidateBlankLines = true

	lines := []string{
		"config TEST1\n",
		"\n",
		"\n",
		"\n",
		"config TEST2\n",
	}

	diags := Lint(lines, style)
	require.Len(t, diags, 1)
	assert.Equal(t, 3, diags[0].Line, "reported at the second blank of the run")
	assert.Contains(t, diags[0].Message, "Multiple consecutive empty lines")
}

func TestLintBlankLinesIgnoredWhenNotConsolidating(t *testing.T) {
	lines := []string{
		"config TEST1\n",
		"\n",
		"\n",
		"config TEST2\n",
	}

	diags := Lint(lines, config.Zephyr())
	assert.Empty(t, diags)
}

func TestLintEmptyInput(t *testing.T) {
	assert.Empty(t, Lint(nil, config.Zephyr()))
	assert.Empty(t, Lint([]string{}, config.ESPIDF()))
}

func TestLintMultipleChecksOnOneLine(t *testing.T) {
	// Spaces under a tab style plus trailing whitespace: both fire, in
	// fixed check order.
	diags := Lint([]string{"config TEST\n", "    bool \"Test\"  \n"}, config.Zephyr())
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, "Trailing whitespace")
	assert.Contains(t, diags[1].Message, "Use tabs")
}

func TestDiagnosticString(t *testing.T) {
	withCol := Diagnostic{Line: 10, Column: 5, Severity: config.SeverityError, Message: "Test message"}
	assert.Equal(t, "Line 10:5: [error] Test message", withCol.String())

	noCol := Diagnostic{Line: 10, Severity: config.SeverityWarning, Message: "Test message"}
	assert.Equal(t, "Line 10: [warning] Test message", noCol.String())
}
