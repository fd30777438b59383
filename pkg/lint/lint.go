package lint

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kconflint/kconflint/pkg/config"
)

// Lint checks lines against the style and returns the issues found, in
// line order. Lines carry their original terminators. Lint never
// mutates its input and never aborts on a malformed line.
func Lint(lines []string, style config.Style) []Diagnostic {
	ck := &checker{style: style}
	run(lines, ck)
	return ck.diags
}

// checker is the lint-mode action: it evaluates every style check
// against each line and accumulates diagnostics. The checks are
// independent; several may fire on the same line.
type checker struct {
	style    config.Style
	diags    []Diagnostic
	blankRun int
}

func (ck *checker) visit(lineNum int, c Classified, st State) {
	ck.checkTrailingWhitespace(lineNum, c)
	ck.checkLineLength(lineNum, c)
	ck.checkIndentation(lineNum, c, st)
	ck.checkCommentSpacing(lineNum, c)
	ck.checkHelpIndent(lineNum, c, st)
	ck.checkDeclarationName(lineNum, c)
	ck.checkBlankRun(lineNum, c)
}

func (ck *checker) report(lineNum, col int, message string) {
	ck.diags = append(ck.diags, Diagnostic{
		Line:     lineNum,
		Column:   col,
		Severity: config.SeverityWarning,
		Message:  message,
	})
}

func (ck *checker) checkTrailingWhitespace(lineNum int, c Classified) {
	runStart := len(c.Content)
	for runStart > 0 && (c.Content[runStart-1] == ' ' || c.Content[runStart-1] == '\t') {
		runStart--
	}
	if runStart < len(c.Content) {
		ck.report(lineNum, runStart+1, "Trailing whitespace")
	}
}

func (ck *checker) checkLineLength(lineNum int, c Classified) {
	if ck.style.MaxLineLength <= 0 {
		return
	}
	if length := utf8.RuneCountInString(c.Content); length > ck.style.MaxLineLength {
		ck.report(lineNum, 0,
			fmt.Sprintf("Line exceeds %d characters (found %d)", ck.style.MaxLineLength, length))
	}
}

// checkIndentation validates the indentation character and, in spaces
// mode, the indentation width. Help-text body lines are exempt: their
// expected indent mixes tabs and spaces by construction in tab styles
// and is covered by checkHelpIndent instead.
func (ck *checker) checkIndentation(lineNum int, c Classified, st State) {
	if c.Indent.Text == "" || c.Kind == KindBlank {
		return
	}
	if st.InHelp && c.Kind == KindOther {
		return
	}

	switch {
	case c.Indent.Mixed:
		ck.report(lineNum, 0, "Mixed tabs and spaces in indentation")
		return
	case !ck.style.UseSpaces && c.Indent.Spaces > 0:
		ck.report(lineNum, 0, "Use tabs for indentation")
		return
	case ck.style.UseSpaces && c.Indent.Tabs > 0:
		ck.report(lineNum, 0, "Use spaces for indentation")
		return
	}

	if ck.style.UseSpaces && ck.style.PrimaryIndent > 0 &&
		c.Indent.Spaces%ck.style.PrimaryIndent != 0 {
		ck.report(lineNum, 0,
			fmt.Sprintf("Indentation should be a multiple of %d spaces", ck.style.PrimaryIndent))
	}
}

func (ck *checker) checkCommentSpacing(lineNum int, c Classified) {
	if c.Kind != KindComment {
		return
	}
	// A bare '#' is a valid empty comment.
	if len(c.Stripped) > 1 && c.Stripped[1] != ' ' {
		ck.report(lineNum, 0, "Missing space after #")
	}
}

func (ck *checker) checkHelpIndent(lineNum int, c Classified, st State) {
	if !st.InHelp || c.Kind != KindOther {
		return
	}
	expected := st.HelpMarker.Text + strings.Repeat(" ", ck.style.HelpIndent)
	if c.Indent.Text != expected {
		ck.report(lineNum, 0,
			fmt.Sprintf("Help text should be indented %d spaces beyond the help keyword", ck.style.HelpIndent))
	}
}

func (ck *checker) checkDeclarationName(lineNum int, c Classified) {
	if !c.Kind.IsDeclaration() {
		return
	}
	name := DeclarationName(c.Stripped)
	if name == "" {
		// Malformed declaration; the shape itself is not validated.
		return
	}

	if ck.style.MaxNameLength > 0 && len(name) > ck.style.MaxNameLength {
		ck.report(lineNum, 0,
			fmt.Sprintf("Config name %q exceeds %d characters", name, ck.style.MaxNameLength))
	}

	if ck.style.UppercaseNames && hasLower(name) {
		ck.report(lineNum, 0,
			fmt.Sprintf("Config name %q must be uppercase", name))
	}

	if ck.style.MinPrefixLength > 0 {
		if sep := strings.Index(name, "_"); sep >= 0 && sep < ck.style.MinPrefixLength {
			ck.report(lineNum, 0,
				fmt.Sprintf("Config name prefix %q must be at least %d characters",
					name[:sep], ck.style.MinPrefixLength))
		}
	}
}

// checkBlankRun reports a run of consecutive blank lines exactly once,
// at the second blank line, regardless of run length.
func (ck *checker) checkBlankRun(lineNum int, c Classified) {
	if c.Kind != KindBlank {
		ck.blankRun = 0
		return
	}
	ck.blankRun++
	if ck.style.ConsolidateBlankLines && ck.blankRun == 2 {
		ck.report(lineNum, 0, "Multiple consecutive empty lines")
	}
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}
