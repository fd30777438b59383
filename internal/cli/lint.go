package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kconflint/kconflint/internal/logging"
	"github.com/kconflint/kconflint/pkg/reporter"
	"github.com/kconflint/kconflint/pkg/runner"
)

// ErrIssuesFound is returned when style issues are found.
var ErrIssuesFound = errors.New("style issues found")

type lintFlags struct {
	styleFlags
	format  string
	strict  bool
	compact bool
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check Kconfig files for style issues",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	addStyleFlags(cmd, &flags.styleFlags)
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "distinguish warnings from errors in the exit code")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")

	return cmd
}

const lintLongDescription = `Check Kconfig files for style issues.

By default, checks every Kconfig file in the current directory and its
subdirectories. Specify paths to check specific files or directories.

Examples:
  kconflint lint                       # Check current directory
  kconflint lint drivers/              # Check drivers directory
  kconflint lint Kconfig.board         # Check single file
  kconflint lint --preset espidf       # Use the ESP-IDF style
  kconflint lint --format json         # Output as JSON for CI
  kconflint lint --max-line-length 80  # Override a single setting`

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	run, err := resolveStyle(ctx, cmd, &flags.styleFlags)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	if len(run.loadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, run.loadedFrom)
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   run.workDir,
		ExcludeGlobs: run.ignore,
		Jobs:         flags.jobs,
		Mode:         runner.ModeLint,
		Style:        run.style,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  run.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return &issuesError{code: code}
	}

	return nil
}
