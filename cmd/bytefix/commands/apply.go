package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/bytefix/cmd/bytefix/opts"
	"github.com/walteh/bytefix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Patch the target file in place",
		Long: `Apply reads the whole target file, replaces every occurrence of the
corrupted byte sequence with the corrected one, and overwrites the file.
A file with no occurrences is left byte-for-byte unchanged and the run
still succeeds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunApply(cmd.Context(), opts)
		},
	}

	return cmd
}

// RunApply executes the apply operation. It also backs the root command so a
// bare bytefix invocation applies the built-in fix.
func RunApply(ctx context.Context, opts *opts.RootOpts) error {
	op, err := operation.NewApplyOperation(operation.Options{
		Config:     opts.Config,
		UserLogger: opts.UserLogger,
	})
	if err != nil {
		return errors.Errorf("creating apply operation: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	runner := operation.NewRunner(logger, opts.Async)

	if err := runner.Run(ctx, op); err != nil {
		return errors.Errorf("running apply operation: %w", err)
	}

	return nil
}
