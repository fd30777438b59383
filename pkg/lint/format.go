package lint

import (
	"strings"

	"github.com/kconflint/kconflint/pkg/config"
)

// Format rewrites lines to conform to the style and returns the
// corrected lines plus the diagnostics lint mode would have reported
// against the original input. The output is not re-linted. Content and
// line ordering are preserved; only whitespace and comment spacing are
// mutated, and blank-line runs are collapsed when configured.
func Format(lines []string, style config.Style) ([]string, []Diagnostic) {
	f := &formatter{checker: checker{style: style}}
	run(lines, f)
	return f.out, f.diags
}

// formatter is the format-mode action. It embeds the lint checker so a
// single traversal produces both the rewritten lines and the
// diagnostics for the original input.
type formatter struct {
	checker
	out       []string
	prevBlank bool
}

func (f *formatter) visit(lineNum int, c Classified, st State) {
	f.checker.visit(lineNum, c, st)

	if c.Kind == KindBlank {
		if f.style.ConsolidateBlankLines && f.prevBlank {
			return
		}
		f.prevBlank = true
		f.out = append(f.out, c.EOL)
		return
	}
	f.prevBlank = false

	text := c.Stripped
	if c.Kind == KindComment {
		text = fixCommentSpacing(text)
	}

	f.out = append(f.out, f.indentFor(c.Kind, st)+text+c.EOL)
}

// indentFor recomputes a line's leading indentation from its role and
// the current nesting depth, rather than editing what was there.
func (f *formatter) indentFor(kind LineKind, st State) string {
	unit := "\t"
	if f.style.UseSpaces {
		unit = strings.Repeat(" ", f.style.PrimaryIndent)
	}

	base := 0
	if f.style.IndentSubItems {
		base = st.Depth
	}

	switch {
	case kind == KindOption || kind == KindHelp:
		return strings.Repeat(unit, base+1)
	case kind == KindOther && st.InHelp:
		return strings.Repeat(unit, base+1) + strings.Repeat(" ", f.style.HelpIndent)
	case kind == KindOther:
		// Free text inside a declaration body sits at option level.
		return strings.Repeat(unit, base+1)
	default:
		// Declarations, block openers and closers, source and comment
		// directives, and comments all sit at the block level.
		return strings.Repeat(unit, base)
	}
}

// fixCommentSpacing inserts exactly one space after the leading '#' of
// a comment. A bare '#' is left alone.
func fixCommentSpacing(stripped string) string {
	if len(stripped) > 1 && stripped[1] != ' ' {
		return "# " + stripped[1:]
	}
	return stripped
}
