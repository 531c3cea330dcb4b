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

package patch

import (
	"bytes"
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 PatchFile loads the file at path in binary mode, applies the rules, and
// overwrites the same path in full (truncate-then-write). The read happens
// entirely before the write, so a failure anywhere leaves the file untouched.
// The file's permission bits are preserved. A zero-occurrence run is a
// successful no-op, not an error.
func PatchFile(ctx context.Context, path string, rules []Rule) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	result, mode, err := patchFileContent(ctx, path, rules)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, result.PatchedContent, mode); err != nil {
		return nil, &FileAccessError{Op: "write", Path: path, Err: err}
	}

	logger.Debug().
		Str("path", path).
		Int("patches", result.PatchCount).
		Bool("modified", result.WasModified).
		Msg("patched file")

	return result, nil
}

// 🔍 CheckFile performs the same scan as PatchFile but never writes. The
// returned result reports what PatchFile would do to the file.
func CheckFile(ctx context.Context, path string, rules []Rule) (*Result, error) {
	result, _, err := patchFileContent(ctx, path, rules)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// patchFileContent reads the whole file and applies the rules in memory,
// returning the result and the file's mode for a later rewrite.
func patchFileContent(ctx context.Context, path string, rules []Rule) (*Result, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, &FileAccessError{Op: "stat", Path: path, Err: err}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &FileAccessError{Op: "read", Path: path, Err: err}
	}

	applicable, err := filterRules(path, rules)
	if err != nil {
		return nil, 0, errors.Errorf("filtering rules: %w", err)
	}

	patcher := NewBinaryPatcher()
	if err := patcher.ValidateRules(applicable); err != nil {
		return nil, 0, errors.Errorf("validating rules: %w", err)
	}

	result, err := patcher.Patch(ctx, bytes.NewReader(content), applicable)
	if err != nil {
		return nil, 0, errors.Errorf("patching content: %w", err)
	}

	return result, info.Mode().Perm(), nil
}

// filterRules keeps the rules whose FileFilterGlob matches path. Rules with
// no glob always apply.
func filterRules(path string, rules []Rule) ([]Rule, error) {
	applicable := make([]Rule, 0, len(rules))
	for i, rule := range rules {
		if rule.FileFilterGlob != "" {
			matched, err := doublestar.Match(rule.FileFilterGlob, path)
			if err != nil {
				return nil, errors.Errorf("rule %d: invalid file filter glob %q: %w", i, rule.FileFilterGlob, err)
			}
			if !matched {
				continue
			}
		}
		applicable = append(applicable, rule)
	}
	return applicable, nil
}
