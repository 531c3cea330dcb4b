package operation

import (
	"context"

	"github.com/walteh/bytefix/pkg/patch"
	"github.com/walteh/bytefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewCheckOperation creates the operation that scans the target without
// writing
func NewCheckOperation(opts Options) (*CheckOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &CheckOperation{baseOperation: baseOperation{opts: opts}}, nil
}

// CheckOperation reports whether the target still contains any of the
// corrupted sequences, without modifying it
type CheckOperation struct {
	baseOperation

	needsFix bool
	pending  int
}

// Name implements Operation.Name
func (op *CheckOperation) Name() string {
	return "check"
}

// NeedsFix reports whether the last Execute found pending substitutions
func (op *CheckOperation) NeedsFix() bool {
	return op.needsFix
}

// PendingPatches returns the substitution count the last Execute found
func (op *CheckOperation) PendingPatches() int {
	return op.pending
}

// 🏃 Execute scans the target file and reports what an apply run would do
func (op *CheckOperation) Execute(ctx context.Context) error {
	cfg := op.opts.Config

	rules, err := cfg.Rules()
	if err != nil {
		return errors.Errorf("decoding patch rules: %w", err)
	}

	result, err := patch.CheckFile(ctx, cfg.Target, rules)
	if err != nil {
		op.opts.UserLogger.LogPatchEvent(status.PatchEvent{
			Outcome: status.OutcomeError,
			Path:    cfg.Target,
			Err:     err,
		})
		return errors.Errorf("checking %s: %w", cfg.Target, err)
	}

	op.needsFix = result.WasModified
	op.pending = result.PatchCount
	if result.WasModified {
		op.opts.UserLogger.LogPatchEvent(status.PatchEvent{
			Outcome: status.OutcomeWouldFix,
			Path:    cfg.Target,
			Patches: result.PatchCount,
		})
	} else {
		op.opts.UserLogger.LogPatchEvent(status.PatchEvent{
			Outcome: status.OutcomeClean,
			Path:    cfg.Target,
		})
	}

	return nil
}

// TODO(dr.methodical): 🧪 Add tests for context cancellation
