// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/bytefix/pkg/patch"
	"github.com/walteh/bytefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewApplyOperation creates the operation that patches the target file in
// place
func NewApplyOperation(opts Options) (*ApplyOperation, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &ApplyOperation{baseOperation{opts: opts}}, nil
}

// ApplyOperation patches the target file in place
type ApplyOperation struct {
	baseOperation
}

// Name implements Operation.Name
func (op *ApplyOperation) Name() string {
	return "apply"
}

// 🏃 Execute reads the target, applies every patch, and overwrites the file.
// A run with zero occurrences is a success: the file is already in the wanted
// state, which is reported distinctly from an actual fix.
func (op *ApplyOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	cfg := op.opts.Config

	rules, err := cfg.Rules()
	if err != nil {
		return errors.Errorf("decoding patch rules: %w", err)
	}

	result, err := patch.PatchFile(ctx, cfg.Target, rules)
	if err != nil {
		op.opts.UserLogger.LogPatchEvent(status.PatchEvent{
			Outcome: status.OutcomeError,
			Path:    cfg.Target,
			Err:     err,
		})
		return errors.Errorf("patching %s: %w", cfg.Target, err)
	}

	if !result.WasModified {
		logger.Info().Str("target", cfg.Target).Msg("no occurrences found, file left unchanged")
		op.opts.UserLogger.LogPatchEvent(status.PatchEvent{
			Outcome: status.OutcomeClean,
			Path:    cfg.Target,
		})
		return nil
	}

	op.opts.UserLogger.LogPatchEvent(status.PatchEvent{
		Outcome: status.OutcomeFixed,
		Path:    cfg.Target,
		Patches: result.PatchCount,
	})
	return nil
}
