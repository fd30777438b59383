package cli

import (
	"errors"

	"github.com/kconflint/kconflint/pkg/runner"
)

// Exit codes for kconflint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates the run completed but found errors.
	ExitIssuesFound = 1

	// ExitWarnings indicates the run found warnings in strict mode.
	ExitWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// issuesError signals that a run found style issues and records the exit
// code the process should terminate with.
type issuesError struct {
	code int
}

func (e *issuesError) Error() string { return ErrIssuesFound.Error() }

// Is keeps errors.Is(err, ErrIssuesFound) working for callers that only
// care whether issues were found.
func (e *issuesError) Is(target error) bool { return target == ErrIssuesFound }

// ExitCode maps a command error to the process exit code. Issue-bearing
// runs carry their own code; any other failure exits 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ie *issuesError
	if errors.As(err, &ie) {
		return ie.code
	}

	return 1
}

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errors := result.Stats.DiagnosticsBySeverity["error"]
	warnings := result.Stats.DiagnosticsBySeverity["warning"]

	if errors > 0 {
		return ExitIssuesFound
	}

	if warnings > 0 {
		if strict {
			return ExitWarnings
		}
		return ExitIssuesFound
	}

	return ExitSuccess
}
