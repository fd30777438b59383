package pretty

import (
	"fmt"

	"github.com/kconflint/kconflint/pkg/config"
	"github.com/kconflint/kconflint/pkg/lint"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// The line reads "Line N:C: [severity] message"; the column is omitted
// when the diagnostic has none.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic) string {
	var location string
	if diag.Column > 0 {
		location = fmt.Sprintf("Line %d:%d:", diag.Line, diag.Column)
	} else {
		location = fmt.Sprintf("Line %d:", diag.Line)
	}

	severity := s.FormatSeverity(diag.Severity)

	return fmt.Sprintf("%s [%s] %s",
		s.Location.Render(location),
		severity,
		s.Message.Render(diag.Message),
	)
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
