package runner

import "github.com/kconflint/kconflint/pkg/lint"

// FileOutcome captures the result of processing one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Diagnostics are the issues found in the original content.
	Diagnostics []lint.Diagnostic

	// Formatted holds the corrected lines in ModeFormat.
	// Nil when linting or when the file could not be read.
	Formatted []string

	// Written reports whether the file was rewritten on disk.
	Written bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[string]int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// FilesFormatted is the number of files rewritten on disk.
	FilesFormatted int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any diagnostics with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity["error"] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Written {
		r.Stats.FilesFormatted++
	}

	diagCount := len(outcome.Diagnostics)
	r.Stats.DiagnosticsTotal += diagCount
	if diagCount > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, diag := range outcome.Diagnostics {
		severity := string(diag.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.DiagnosticsBySeverity[severity]++
	}
}
