package pretty

import (
	"fmt"
	"strings"

	"github.com/kconflint/kconflint/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 {
		msg := s.Success.Render("No issues found") + s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		if stats.FilesFormatted > 0 {
			msg += ", " + s.Success.Render(formattedClause(stats.FilesFormatted))
		}
		return msg + "\n"
	}

	var parts []string

	issueWord := "issues"
	if stats.DiagnosticsTotal == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.DiagnosticsTotal, issueWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.DiagnosticsTotal, issueWord))
	}

	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	if stats.FilesFormatted > 0 {
		parts = append(parts, s.Success.Render(formattedClause(stats.FilesFormatted)))
	}

	return strings.Join(parts, ", ") + "\n"
}

func formattedClause(n int) string {
	word := wordFiles
	if n == 1 {
		word = wordFile
	}
	return fmt.Sprintf("%d %s formatted", n, word)
}
