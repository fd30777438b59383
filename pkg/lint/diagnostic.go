package lint

import (
	"fmt"

	"github.com/kconflint/kconflint/pkg/config"
)

// Diagnostic represents a single style issue found in a file. It is
// never mutated after creation; order of accumulation is line order,
// then check order within a line.
type Diagnostic struct {
	// Path is the file the issue was found in. Empty when linting an
	// in-memory line sequence.
	Path string

	// Line is the 1-based line number.
	Line int

	// Column is the 1-based column number, or 0 when the issue has no
	// meaningful column.
	Column int

	// Severity is the importance of the diagnostic. Style violations
	// are warnings; only I/O failures are errors.
	Severity config.Severity

	// Message is the human-readable description of the issue.
	Message string
}

// String renders the diagnostic as "Line <n>[:<col>]: [<severity>] <message>".
func (d Diagnostic) String() string {
	if d.Column > 0 {
		return fmt.Sprintf("Line %d:%d: [%s] %s", d.Line, d.Column, d.Severity, d.Message)
	}
	return fmt.Sprintf("Line %d: [%s] %s", d.Line, d.Severity, d.Message)
}
