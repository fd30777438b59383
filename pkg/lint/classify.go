// Package lint provides the Kconfig style rule engine: per-line
// classification, structural tracking, and the lint and format modes
// built on top of them.
package lint

import "strings"

// LineKind is the syntactic role of a single Kconfig line, derived from
// its leading keyword only. The classifier is deliberately not a
// grammar: it never validates expressions or resolves symbols.
type LineKind int

const (
	// KindOther is any line not matching a recognized keyword, such as
	// the free-text body of a help block.
	KindOther LineKind = iota

	// KindBlank is a line with no non-whitespace content.
	KindBlank

	// KindComment is a free-text comment starting with '#'.
	KindComment

	// KindCommentDirective is the 'comment "..."' Kconfig directive,
	// which renders a standalone annotation in menus.
	KindCommentDirective

	// KindMenu and friends open and close nesting blocks.
	KindMenu
	KindEndMenu
	KindChoice
	KindEndChoice
	KindIf
	KindEndIf

	// KindConfig declares a new named item. KindMenuConfig is the
	// variant that also creates an implicit bool.
	KindConfig
	KindMenuConfig

	// KindOption is any attribute line belonging to a declaration:
	// type lines, depends on, select, imply, default, range, prompt,
	// and the generic option directive.
	KindOption

	// KindHelp opens a help-text block.
	KindHelp

	// KindSource includes another Kconfig file.
	KindSource
)

var kindNames = map[LineKind]string{
	KindOther:            "other",
	KindBlank:            "blank",
	KindComment:          "comment",
	KindCommentDirective: "comment-directive",
	KindMenu:             "menu",
	KindEndMenu:          "endmenu",
	KindChoice:           "choice",
	KindEndChoice:        "endchoice",
	KindIf:               "if",
	KindEndIf:            "endif",
	KindConfig:           "config",
	KindMenuConfig:       "menuconfig",
	KindOption:           "option",
	KindHelp:             "help",
	KindSource:           "source",
}

// String returns the lowercase name of the kind.
func (k LineKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsBlockOpen reports whether the kind opens a nesting block.
func (k LineKind) IsBlockOpen() bool {
	switch k {
	case KindMenu, KindChoice, KindIf:
		return true
	default:
		return false
	}
}

// IsBlockClose reports whether the kind closes a nesting block.
func (k LineKind) IsBlockClose() bool {
	switch k {
	case KindEndMenu, KindEndChoice, KindEndIf:
		return true
	default:
		return false
	}
}

// IsDeclaration reports whether the kind declares a named item.
func (k LineKind) IsDeclaration() bool {
	return k == KindConfig || k == KindMenuConfig
}

// Indent describes the leading whitespace of a line.
type Indent struct {
	// Text is the leading whitespace run verbatim.
	Text string

	// Tabs and Spaces count the tab and space characters in the run.
	Tabs   int
	Spaces int

	// Mixed is true when the run contains both tabs and spaces.
	Mixed bool
}

// Width returns the number of leading whitespace characters.
func (in Indent) Width() int {
	return len(in.Text)
}

// Classified is the ephemeral per-line classification result. It is
// computed fresh for every line and never persisted.
type Classified struct {
	// Content is the line without its terminator.
	Content string

	// EOL is the original line terminator ("\n", "\r\n", or "" at EOF).
	EOL string

	// Stripped is Content with leading and trailing whitespace removed.
	Stripped string

	// Kind is the detected syntactic role.
	Kind LineKind

	// Indent describes the leading whitespace.
	Indent Indent
}

// keywordKinds maps leading keywords to line kinds. Entries are ordered
// longest keyword first so the most specific match wins (def_bool is an
// option, not a 'default' line). Matching is whole-token: the keyword
// must be followed by whitespace or end of line, so 'config' never
// matches 'configuration'.
//
//nolint:gochecknoglobals // Read-only lookup table.
var keywordKinds = []struct {
	keyword string
	kind    LineKind
}{
	{"def_tristate", KindOption},
	{"menuconfig", KindMenuConfig},
	{"endchoice", KindEndChoice},
	{"def_bool", KindOption},
	{"tristate", KindOption},
	{"endmenu", KindEndMenu},
	{"comment", KindCommentDirective},
	{"default", KindOption},
	{"depends", KindOption},
	{"choice", KindChoice},
	{"config", KindConfig},
	{"source", KindSource},
	{"string", KindOption},
	{"prompt", KindOption},
	{"select", KindOption},
	{"option", KindOption},
	{"endif", KindEndIf},
	{"imply", KindOption},
	{"range", KindOption},
	{"menu", KindMenu},
	{"help", KindHelp},
	{"bool", KindOption},
	{"int", KindOption},
	{"hex", KindOption},
	{"if", KindIf},
}

// Classify determines the syntactic role of a single line. The content
// must not include the line terminator.
func Classify(content string) Classified {
	c := Classified{
		Content:  content,
		Stripped: strings.TrimSpace(content),
		Indent:   leadingIndent(content),
	}
	c.Kind = kindOf(c.Stripped)
	return c
}

// kindOf matches the stripped line against the keyword table.
func kindOf(stripped string) LineKind {
	if stripped == "" {
		return KindBlank
	}
	if strings.HasPrefix(stripped, "#") {
		return KindComment
	}
	for _, entry := range keywordKinds {
		if !strings.HasPrefix(stripped, entry.keyword) {
			continue
		}
		rest := stripped[len(entry.keyword):]
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return entry.kind
		}
	}
	return KindOther
}

// leadingIndent measures the leading whitespace run of a line.
func leadingIndent(content string) Indent {
	end := 0
	var in Indent
	for end < len(content) {
		switch content[end] {
		case '\t':
			in.Tabs++
		case ' ':
			in.Spaces++
		default:
			in.Text = content[:end]
			in.Mixed = in.Tabs > 0 && in.Spaces > 0
			return in
		}
		end++
	}
	in.Text = content
	in.Mixed = in.Tabs > 0 && in.Spaces > 0
	return in
}

// DeclarationName extracts the name token from a declaration line.
// It returns "" for malformed declarations missing a name.
func DeclarationName(stripped string) string {
	fields := strings.Fields(stripped)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
