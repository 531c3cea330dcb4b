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

// Package patch implements exact-match byte substitution over whole-file buffers
package patch

import (
	"bytes"
	"context"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule defines a single literal byte substitution
type Rule struct {
	// Find is the exact byte sequence to search for (no wildcards, no encoding awareness)
	Find []byte

	// Replace is the byte sequence emitted in place of each match
	Replace []byte

	// FileFilterGlob optionally restricts which target paths the rule applies to
	FileFilterGlob string
}

// 📦 Result contains the outcome of a patch operation
type Result struct {
	// WasModified indicates if any substitutions were made
	WasModified bool

	// PatchCount is the total number of substitutions made across all rules
	PatchCount int

	// OriginalContent is the content before patching
	OriginalContent []byte

	// PatchedContent is the content after patching
	PatchedContent []byte
}

// 🎯 BytePatcher defines the interface for byte patch operations
type BytePatcher interface {
	// Patch applies a set of rules to the content and returns the result
	Patch(ctx context.Context, content io.Reader, rules []Rule) (*Result, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []Rule) error
}

// BinaryPatcher implements BytePatcher using exact byte-for-byte matching
type BinaryPatcher struct{}

// NewBinaryPatcher creates a new BinaryPatcher
func NewBinaryPatcher() *BinaryPatcher {
	return &BinaryPatcher{}
}

// Patch implements BytePatcher.Patch. Rules apply sequentially, each over the
// output of the previous one.
func (p *BinaryPatcher) Patch(ctx context.Context, content io.Reader, rules []Rule) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &Result{
		OriginalContent: originalContent,
		PatchedContent:  originalContent,
	}

	currentContent := originalContent
	for _, rule := range rules {
		// Skip empty rules
		if len(rule.Find) == 0 {
			continue
		}

		patched, count := replaceAll(currentContent, rule.Find, rule.Replace)
		if count > 0 {
			result.WasModified = true
			result.PatchCount += count
			currentContent = patched
		}

		logger.Debug().
			Int("matches", count).
			Int("find_len", len(rule.Find)).
			Int("replace_len", len(rule.Replace)).
			Msg("applied patch rule")
	}

	result.PatchedContent = currentContent
	return result, nil
}

// ValidateRules implements BytePatcher.ValidateRules
func (p *BinaryPatcher) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if len(rule.Find) == 0 {
			return errors.Errorf("rule %d: find pattern is required", i)
		}
	}
	return nil
}

// replaceAll substitutes every non-overlapping occurrence of find with
// replace, scanning left to right in a single pass. The scan never re-enters
// bytes it already emitted, so a replacement containing find is not matched
// again. Returns the patched buffer and the occurrence count; with zero
// occurrences the input buffer is returned untouched.
func replaceAll(content, find, replace []byte) ([]byte, int) {
	i := bytes.Index(content, find)
	if i < 0 {
		return content, 0
	}

	patched := make([]byte, 0, len(content)+len(replace)-len(find))
	count := 0
	for i >= 0 {
		patched = append(patched, content[:i]...)
		patched = append(patched, replace...)
		content = content[i+len(find):]
		count++
		i = bytes.Index(content, find)
	}
	patched = append(patched, content...)

	return patched, count
}

// TODO(dr.methodical): 🧪 Add benchmarks for large content
