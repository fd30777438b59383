package lint

import (
	"fmt"
	"os"

	"github.com/kconflint/kconflint/pkg/config"
)

// ReadLines reads a file in its entirety and splits it into lines with
// their terminators preserved.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return SplitLines(content), nil
}

// LintFile lints a single file. A read failure is converted into a
// single synthetic error diagnostic rather than returned as an error,
// so callers can distinguish "no issues" from "could not scan".
func LintFile(path string, style config.Style) []Diagnostic {
	lines, err := os.ReadFile(path)
	if err != nil {
		return []Diagnostic{readFailure(path, err)}
	}
	diags := Lint(SplitLines(lines), style)
	for i := range diags {
		diags[i].Path = path
	}
	return diags
}

// FormatFile formats a single file, returning the corrected lines and
// the diagnostics found in the original content. A read failure yields
// no lines and a single synthetic error diagnostic.
func FormatFile(path string, style config.Style) ([]string, []Diagnostic) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, []Diagnostic{readFailure(path, err)}
	}
	formatted, diags := Format(SplitLines(content), style)
	for i := range diags {
		diags[i].Path = path
	}
	return formatted, diags
}

func readFailure(path string, err error) Diagnostic {
	return Diagnostic{
		Path:     path,
		Line:     1,
		Severity: config.SeverityError,
		Message:  fmt.Sprintf("Failed to read file: %v", err),
	}
}
