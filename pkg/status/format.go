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

// Package status formats and reports patch outcomes to the user.
package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 45 // Base width for the target path
	statusWidth = 15 // Width for status text
)

// 🎯 FormatPatchOperation formats a patch run for display
func FormatPatchOperation(path string, patches int, outcome PatchOutcome) string {
	// Determine prefix symbol
	var prefix string
	switch outcome {
	case OutcomeFixed:
		prefix = color.GreenString("✓")
	case OutcomeWouldFix:
		prefix = color.YellowString("⟳")
	case OutcomeError:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	// Format parts with padding
	namePart := fmt.Sprintf("%-*s", nameWidth, path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, outcomeText(outcome))

	// Build final string with indentation
	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
		patchCountText(patches),
	)
}

// outcomeText returns the plain status column text
func outcomeText(outcome PatchOutcome) string {
	switch outcome {
	case OutcomeFixed:
		return "fixed"
	case OutcomeClean:
		return "clean"
	case OutcomeWouldFix:
		return "needs fix"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// patchCountText returns the substitution count column text
func patchCountText(patches int) string {
	if patches == 1 {
		return "1 substitution"
	}
	return fmt.Sprintf("%d substitutions", patches)
}
