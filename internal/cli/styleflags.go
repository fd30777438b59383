package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kconflint/kconflint/internal/configloader"
	"github.com/kconflint/kconflint/pkg/config"
)

// styleFlags holds the per-command style override flags. Flag values
// only take effect when the user actually set them, so preset and
// config file values survive untouched flags.
type styleFlags struct {
	preset          string
	useSpaces       bool
	primaryIndent   int
	helpIndent      int
	maxLineLength   int
	maxNameLength   int
	uppercaseNames  bool
	minPrefixLength int
	indentSubItems  bool
	consolidate     bool
	ignore          []string
	jobs            int
}

func addStyleFlags(cmd *cobra.Command, f *styleFlags) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "base style preset: zephyr, espidf")
	cmd.Flags().BoolVar(&f.useSpaces, "use-spaces", false, "indent with spaces instead of tabs")
	cmd.Flags().IntVar(&f.primaryIndent, "primary-indent", 0, "spaces per indentation level (space mode)")
	cmd.Flags().IntVar(&f.helpIndent, "help-indent", 0, "extra spaces for help text beyond the help keyword")
	cmd.Flags().IntVar(&f.maxLineLength, "max-line-length", 0, "maximum line length (0 = unlimited)")
	cmd.Flags().IntVar(&f.maxNameLength, "max-name-length", 0, "maximum config name length (0 = unlimited)")
	cmd.Flags().BoolVar(&f.uppercaseNames, "uppercase-names", false, "require uppercase config names")
	cmd.Flags().IntVar(&f.minPrefixLength, "min-prefix-length", 0, "minimum config name prefix length (0 = off)")
	cmd.Flags().BoolVar(&f.indentSubItems, "indent-sub-items", false, "scale indentation with block nesting depth")
	cmd.Flags().BoolVar(&f.consolidate, "consolidate-empty-lines", false, "collapse runs of empty lines")
	cmd.Flags().StringSliceVar(&f.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&f.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
}

// resolvedRun is the merged configuration a command runs with.
type resolvedRun struct {
	style      config.Style
	ignore     []string
	workDir    string
	loadedFrom []string
}

// resolveStyle merges preset, config files and explicit flag overrides.
func resolveStyle(ctx context.Context, cmd *cobra.Command, f *styleFlags) (*resolvedRun, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Preset:       f.preset,
	})
	if err != nil {
		return nil, err
	}

	style := f.apply(cmd, loadResult.Style)

	return &resolvedRun{
		style:      style,
		ignore:     append(loadResult.Ignore, f.ignore...),
		workDir:    workDir,
		loadedFrom: loadResult.LoadedFrom,
	}, nil
}

// apply overlays flags the user explicitly set onto the base style.
func (f *styleFlags) apply(cmd *cobra.Command, style config.Style) config.Style {
	fl := cmd.Flags()

	if fl.Changed("use-spaces") {
		style.UseSpaces = f.useSpaces
	}
	if fl.Changed("primary-indent") {
		style.PrimaryIndent = f.primaryIndent
	}
	if fl.Changed("help-indent") {
		style.HelpIndent = f.helpIndent
	}
	if fl.Changed("max-line-length") {
		style.MaxLineLength = f.maxLineLength
	}
	if fl.Changed("max-name-length") {
		style.MaxNameLength = f.maxNameLength
	}
	if fl.Changed("uppercase-names") {
		style.UppercaseNames = f.uppercaseNames
	}
	if fl.Changed("min-prefix-length") {
		style.MinPrefixLength = f.minPrefixLength
	}
	if fl.Changed("indent-sub-items") {
		style.IndentSubItems = f.indentSubItems
	}
	if fl.Changed("consolidate-empty-lines") {
		style.ConsolidateBlankLines = f.consolidate
	}

	return style
}
