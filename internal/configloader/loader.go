// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery and hierarchical
// merging of system, user, project and explicit config files.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kconflint/kconflint/pkg/config"
)

// FileConfig mirrors the YAML config file schema. All style fields are
// pointers so that merging can tell "unset" apart from a zero value.
type FileConfig struct {
	// Preset names the base style to start from ("zephyr" or "espidf").
	Preset string `yaml:"preset,omitempty"`

	UseSpaces             *bool `yaml:"use_spaces,omitempty"`
	PrimaryIndent         *int  `yaml:"primary_indent,omitempty"`
	HelpIndent            *int  `yaml:"help_indent,omitempty"`
	MaxLineLength         *int  `yaml:"max_line_length,omitempty"`
	MaxNameLength         *int  `yaml:"max_name_length,omitempty"`
	UppercaseNames        *bool `yaml:"uppercase_names,omitempty"`
	MinPrefixLength       *int  `yaml:"min_prefix_length,omitempty"`
	IndentSubItems        *bool `yaml:"indent_sub_items,omitempty"`
	ConsolidateBlankLines *bool `yaml:"consolidate_blank_lines,omitempty"`

	// Ignore lists glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore,omitempty"`
}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// Preset is a preset name from the CLI. It overrides any preset
	// named in config files.
	Preset string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Style is the final merged style configuration.
	Style config.Style

	// Ignore is the merged set of ignore globs from all config files.
	Ignore []string

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final style by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (applied by the caller on top of the returned Style)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.kconflint.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/kconflint/config.yaml)
//  5. System config (/etc/kconflint/config.yaml)
//  6. Preset defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}
	result.Paths = paths

	// Merge file configs lowest to highest precedence.
	merged := &FileConfig{}

	if !opts.IgnoreSystemConfig && paths.System != "" {
		fc, err := loadConfigFile(paths.System)
		if err != nil {
			return nil, fmt.Errorf("load system config: %w", err)
		}
		merged = merge(merged, fc)
		result.LoadedFrom = append(result.LoadedFrom, paths.System)
	}

	if !opts.IgnoreUserConfig && paths.User != "" {
		fc, err := loadConfigFile(paths.User)
		if err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		merged = merge(merged, fc)
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if !opts.IgnoreProjectConfig && paths.Project != "" {
		fc, err := loadConfigFile(paths.Project)
		if err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		merged = merge(merged, fc)
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if opts.ExplicitPath != "" {
		fc, err := loadConfigFile(opts.ExplicitPath)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		merged = merge(merged, fc)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	// Resolve the base preset: CLI wins over config files.
	presetName := opts.Preset
	if presetName == "" {
		presetName = merged.Preset
	}
	if presetName == "" {
		presetName = config.PresetZephyr
	}

	style, err := config.Preset(presetName)
	if err != nil {
		return nil, err
	}

	result.Style = merged.apply(style)
	result.Ignore = merged.Ignore
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*FileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	fc := &FileConfig{}
	if err := yaml.Unmarshal(content, fc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return fc, nil
}

// merge overlays higher-precedence over base. Set fields in over win;
// Ignore globs accumulate.
func merge(base, over *FileConfig) *FileConfig {
	out := *base

	if over.Preset != "" {
		out.Preset = over.Preset
	}
	if over.UseSpaces != nil {
		out.UseSpaces = over.UseSpaces
	}
	if over.PrimaryIndent != nil {
		out.PrimaryIndent = over.PrimaryIndent
	}
	if over.HelpIndent != nil {
		out.HelpIndent = over.HelpIndent
	}
	if over.MaxLineLength != nil {
		out.MaxLineLength = over.MaxLineLength
	}
	if over.MaxNameLength != nil {
		out.MaxNameLength = over.MaxNameLength
	}
	if over.UppercaseNames != nil {
		out.UppercaseNames = over.UppercaseNames
	}
	if over.MinPrefixLength != nil {
		out.MinPrefixLength = over.MinPrefixLength
	}
	if over.IndentSubItems != nil {
		out.IndentSubItems = over.IndentSubItems
	}
	if over.ConsolidateBlankLines != nil {
		out.ConsolidateBlankLines = over.ConsolidateBlankLines
	}
	out.Ignore = append(out.Ignore, over.Ignore...)

	return &out
}

// apply overlays the file config's set fields onto a preset style.
func (fc *FileConfig) apply(style config.Style) config.Style {
	if fc.UseSpaces != nil {
		style.UseSpaces = *fc.UseSpaces
	}
	if fc.PrimaryIndent != nil {
		style.PrimaryIndent = *fc.PrimaryIndent
	}
	if fc.HelpIndent != nil {
		style.HelpIndent = *fc.HelpIndent
	}
	if fc.MaxLineLength != nil {
		style.MaxLineLength = *fc.MaxLineLength
	}
	if fc.MaxNameLength != nil {
		style.MaxNameLength = *fc.MaxNameLength
	}
	if fc.UppercaseNames != nil {
		style.UppercaseNames = *fc.UppercaseNames
	}
	if fc.MinPrefixLength != nil {
		style.MinPrefixLength = *fc.MinPrefixLength
	}
	if fc.IndentSubItems != nil {
		style.IndentSubItems = *fc.IndentSubItems
	}
	if fc.ConsolidateBlankLines != nil {
		style.ConsolidateBlankLines = *fc.ConsolidateBlankLines
	}
	return style
}
