package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kconflint/kconflint/internal/ui/pretty"
	"github.com/kconflint/kconflint/pkg/runner"
)

func TestFormatSummaryOneLine_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{FilesProcessed: 3})

	assert.Equal(t, "No issues found (3 files checked)\n", result)
}

func TestFormatSummaryOneLine_WithIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed:   3,
		FilesWithIssues:  2,
		DiagnosticsTotal: 5,
		DiagnosticsBySeverity: map[string]int{
			"error":   1,
			"warning": 4,
		},
	})

	assert.Equal(t, "5 issues (1 errors, 4 warnings) in 2 files\n", result)
}

func TestFormatSummaryOneLine_SingularForms(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed:        1,
		FilesWithIssues:       1,
		DiagnosticsTotal:      1,
		DiagnosticsBySeverity: map[string]int{"warning": 1},
	})

	assert.Equal(t, "1 issue (1 warnings) in 1 file\n", result)
}

func TestFormatSummaryOneLine_Formatted(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed: 4,
		FilesFormatted: 2,
	})

	assert.Equal(t, "No issues found (4 files checked), 2 files formatted\n", result)
}
