// Package cli provides the Cobra command structure for kconflint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kconflint/kconflint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root kconflint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "kconflint",
		Short: "A fast style checker and formatter for Kconfig files",
		Long: `kconflint checks Kconfig configuration files for style issues and can
rewrite them into a consistent layout.

It understands the Kconfig block structure (menu, choice, if) and help
text, ships presets matching the Zephyr and ESP-IDF conventions, and can
be tuned per project through a .kconflint.yml file.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newPresetsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
