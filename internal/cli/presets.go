package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kconflint/kconflint/internal/ui/pretty"
	"github.com/kconflint/kconflint/pkg/config"
)

const presetsFallbackWidth = 80

func newPresetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in style presets",
		Long: `List the built-in style presets and their settings.

A preset is selected with --preset on lint and fmt, or with the
"preset" key in .kconflint.yml.`,
		RunE: runPresets,
	}

	return cmd
}

func runPresets(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	width := presetsFallbackWidth
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	if width > presetsFallbackWidth {
		width = presetsFallbackWidth
	}
	divider := strings.Repeat("-", width)

	for i, name := range config.PresetNames() {
		style, err := config.Preset(name)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, styles.Bold.Render(name))
		fmt.Fprintln(out, styles.Dim.Render(divider))

		fmt.Fprintf(out, "  indentation:             %s\n", indentDescription(style))
		fmt.Fprintf(out, "  help indent:             %d spaces beyond the help keyword\n", style.HelpIndent)
		fmt.Fprintf(out, "  max line length:         %s\n", limitDescription(style.MaxLineLength))
		fmt.Fprintf(out, "  max name length:         %s\n", limitDescription(style.MaxNameLength))
		fmt.Fprintf(out, "  uppercase names:         %t\n", style.UppercaseNames)
		fmt.Fprintf(out, "  min prefix length:       %s\n", limitDescription(style.MinPrefixLength))
		fmt.Fprintf(out, "  indent sub-items:        %t\n", style.IndentSubItems)
		fmt.Fprintf(out, "  consolidate empty lines: %t\n", style.ConsolidateBlankLines)
	}

	return nil
}

func indentDescription(style config.Style) string {
	if style.UseSpaces {
		return fmt.Sprintf("%d spaces per level", style.PrimaryIndent)
	}
	return "tabs"
}

func limitDescription(n int) string {
	if n <= 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d", n)
}
