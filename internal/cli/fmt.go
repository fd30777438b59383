package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kconflint/kconflint/internal/logging"
	"github.com/kconflint/kconflint/pkg/runner"
)

type fmtFlags struct {
	styleFlags
	write bool
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format Kconfig files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	addStyleFlags(cmd, &flags.styleFlags)
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place instead of printing")

	return cmd
}

const fmtLongDescription = `Format Kconfig files into a consistent layout.

Without --write, the corrected content is printed to standard output and
the files are left untouched. With --write, files are rewritten in place;
files already in the correct form are not touched.

Examples:
  kconflint fmt Kconfig                # Print formatted content
  kconflint fmt --write                # Rewrite the current tree
  kconflint fmt -w --preset espidf     # Rewrite using the ESP-IDF style`

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	run, err := resolveStyle(ctx, cmd, &flags.styleFlags)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   run.workDir,
		ExcludeGlobs: run.ignore,
		Jobs:         flags.jobs,
		Mode:         runner.ModeFormat,
		Write:        flags.write,
		Style:        run.style,
	}

	logger.Debug("starting format run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWrite, flags.write,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	out := cmd.OutOrStdout()
	var failed bool

	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("format failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
			failed = true
			continue
		}
		if file.Formatted == nil {
			// Unreadable file: the read failure is in Diagnostics.
			for _, diag := range file.Diagnostics {
				logger.Error(diag.Message, logging.FieldPath, file.Path)
			}
			failed = true
			continue
		}
		if !flags.write {
			fmt.Fprint(out, strings.Join(file.Formatted, ""))
		}
	}

	if flags.write {
		fmt.Fprintf(out, "Formatted %d file(s)\n", result.Stats.FilesFormatted)
	}

	logger.Debug("format run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesFormatted, result.Stats.FilesFormatted,
	)

	if failed {
		return errors.New("some files could not be formatted")
	}

	return nil
}
