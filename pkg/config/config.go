// Package config defines core configuration types for kconflint.
// These types are pure data structures with no dependency on the config
// loader or CLI layers.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Style is the set of tunable style rules for a single linting or
// formatting pass. A Style is built once (from a preset, a config file,
// or CLI flags) and treated as read-only afterwards; the engine never
// mutates it, so one Style may be shared across concurrent file passes.
type Style struct {
	// UseSpaces selects spaces for indentation; false means tabs.
	UseSpaces bool `yaml:"use_spaces"`

	// PrimaryIndent is the width of one indentation unit in spaces.
	// Ignored when UseSpaces is false (one unit is one tab).
	PrimaryIndent int `yaml:"primary_indent"`

	// HelpIndent is the number of extra spaces help text is indented
	// beyond the help keyword.
	HelpIndent int `yaml:"help_indent"`

	// MaxLineLength is the maximum allowed line length in characters.
	// 0 disables the check.
	MaxLineLength int `yaml:"max_line_length"`

	// MaxNameLength is the maximum allowed config name length.
	// 0 disables the check.
	MaxNameLength int `yaml:"max_name_length"`

	// UppercaseNames requires config names to be fully uppercase.
	UppercaseNames bool `yaml:"uppercase_names"`

	// MinPrefixLength is the minimum length of the name segment before
	// the first underscore. 0 disables the check. Names without an
	// underscore are exempt.
	MinPrefixLength int `yaml:"min_prefix_length"`

	// IndentSubItems scales indentation with menu/choice/if nesting
	// depth when formatting. When false, nested items keep flat
	// indentation.
	IndentSubItems bool `yaml:"indent_sub_items"`

	// ConsolidateBlankLines collapses runs of blank lines to one when
	// formatting and reports them when linting.
	ConsolidateBlankLines bool `yaml:"consolidate_blank_lines"`
}
