package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/bytefix/cmd/bytefix/opts"
	"github.com/walteh/bytefix/pkg/operation"
	"github.com/walteh/bytefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether the target file still needs the fix",
		Long: `Check scans the target file for the corrupted byte sequence without
modifying it. It will:
1. Read the whole target file
2. Apply the patches in memory only
3. Report how many substitutions an apply run would make`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := operation.NewCheckOperation(operation.Options{
				Config:     opts.Config,
				UserLogger: opts.UserLogger,
			})
			if err != nil {
				return errors.Errorf("creating check operation: %w", err)
			}

			logger := zerolog.Ctx(ctx)
			runner := operation.NewRunner(logger, opts.Async)

			if err := runner.Run(ctx, op); err != nil {
				return errors.Errorf("running check operation: %w", err)
			}

			// Print the aligned summary line
			outcome := status.OutcomeClean
			if op.NeedsFix() {
				outcome = status.OutcomeWouldFix
			}
			fmt.Fprintln(cmd.OutOrStdout(), status.FormatPatchOperation(opts.Config.Target, op.PendingPatches(), outcome))

			return nil
		},
	}

	return cmd
}

// TODO(dr.methodical): 🧪 Add tests for check command
