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

// Package config defines the bytefix configuration: one target file and the
// literal byte substitutions to apply to it.
package config

import (
	"strconv"

	"github.com/walteh/bytefix/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// 🔄 PatchArgs represents a single byte substitution. Find and Replace are
// Go-escaped string literals (without the surrounding quotes) so raw bytes
// can be written in any config format, e.g. `.bind(\xc2\xaces)`.
type PatchArgs struct {
	Find           string `json:"find" yaml:"find" hcl:"find"`
	Replace        string `json:"replace" yaml:"replace" hcl:"replace"`
	FileFilterGlob string `json:"file_filter_glob,omitempty" yaml:"file_filter_glob,omitempty" hcl:"file_filter_glob,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	// Target is the path of the single file to patch
	Target string `json:"target" yaml:"target" hcl:"target"`

	// Patches are applied to the target in order
	Patches []PatchArgs `json:"patches" yaml:"patches" hcl:"patch,block"`
}

// 🎯 Default returns the built-in configuration: the known mis-encoding fix
// this tool exists for. Running bytefix with no config file uses exactly
// these constants.
func Default() *Config {
	return &Config{
		Target: "src/infrastructure/repositories/invoice_repository.rs",
		Patches: []PatchArgs{
			{
				// The corrupted bytes are \xc2\xac where the source meant &
				Find:    `.bind(\xc2\xaces)`,
				Replace: `.bind(&es)`,
			},
		},
	}
}

// Rule decodes the escaped literals into a patch.Rule
func (p PatchArgs) Rule() (patch.Rule, error) {
	find, err := decodePattern(p.Find)
	if err != nil {
		return patch.Rule{}, errors.Errorf("decoding find pattern %q: %w", p.Find, err)
	}
	replace, err := decodePattern(p.Replace)
	if err != nil {
		return patch.Rule{}, errors.Errorf("decoding replace pattern %q: %w", p.Replace, err)
	}
	return patch.Rule{
		Find:           find,
		Replace:        replace,
		FileFilterGlob: p.FileFilterGlob,
	}, nil
}

// Rules decodes every configured patch
func (cfg *Config) Rules() ([]patch.Rule, error) {
	rules := make([]patch.Rule, 0, len(cfg.Patches))
	for i, p := range cfg.Patches {
		rule, err := p.Rule()
		if err != nil {
			return nil, errors.Errorf("patch %d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Target == "" {
		return errors.Errorf("target is required")
	}
	if len(cfg.Patches) == 0 {
		return errors.Errorf("at least one patch is required")
	}
	for i, p := range cfg.Patches {
		if p.Find == "" {
			return errors.Errorf("patch %d: find is required", i)
		}
		if _, err := p.Rule(); err != nil {
			return errors.Errorf("patch %d: %w", i, err)
		}
	}
	return nil
}

// decodePattern interprets a Go-escaped string literal as raw bytes. Double
// quotes inside a pattern must be written as \".
func decodePattern(s string) ([]byte, error) {
	decoded, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return nil, errors.Errorf("invalid escape sequence: %w", err)
	}
	return []byte(decoded), nil
}
