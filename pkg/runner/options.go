// Package runner provides multi-file orchestration for linting and
// formatting Kconfig trees.
package runner

import "github.com/kconflint/kconflint/pkg/config"

// Mode selects what the runner does with each file.
type Mode int

const (
	// ModeLint scans files and collects diagnostics.
	ModeLint Mode = iota

	// ModeFormat rewrites file content; with Options.Write the
	// corrected content is written back to disk.
	ModeFormat
)

// Options controls multi-file behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Patterns is the set of filename glob patterns considered Kconfig
	// files. Defaults to DefaultPatterns().
	Patterns []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Mode selects linting or formatting.
	Mode Mode

	// Write rewrites files in place in ModeFormat.
	Write bool

	// Style is the resolved style configuration for this run.
	Style config.Style
}

// DefaultPatterns returns the default set of Kconfig filename patterns.
// Kconfig files carry no extension by convention, so matching works on
// the base name rather than the suffix.
func DefaultPatterns() []string {
	return []string{"Kconfig", "Kconfig.*", "*.kconfig"}
}

// effectivePatterns returns the patterns to use, defaulting if empty.
func (o Options) effectivePatterns() []string {
	if len(o.Patterns) == 0 {
		return DefaultPatterns()
	}
	return o.Patterns
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
