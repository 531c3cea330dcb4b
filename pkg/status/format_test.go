package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// 🧪 TestFormatPatchOperation tests the patch outcome formatter
func TestFormatPatchOperation(t *testing.T) {
	// Disable color so expected strings are stable
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	tests := []struct {
		name        string
		path        string
		patches     int
		outcome     PatchOutcome
		wantSymbol  string
		wantStatus  string
		wantCount   string
		description string
	}{
		{
			name:        "fixed_file",
			path:        "src/main.rs",
			patches:     1,
			outcome:     OutcomeFixed,
			wantSymbol:  "✓",
			wantStatus:  "fixed",
			wantCount:   "1 substitution",
			description: "should show check symbol and singular count",
		},
		{
			name:        "fixed_file_multiple",
			path:        "src/main.rs",
			patches:     3,
			outcome:     OutcomeFixed,
			wantSymbol:  "✓",
			wantStatus:  "fixed",
			wantCount:   "3 substitutions",
			description: "should show plural count",
		},
		{
			name:        "clean_file",
			path:        "src/main.rs",
			patches:     0,
			outcome:     OutcomeClean,
			wantSymbol:  "-",
			wantStatus:  "clean",
			wantCount:   "0 substitutions",
			description: "should show dash for untouched files",
		},
		{
			name:        "would_fix",
			path:        "src/main.rs",
			patches:     2,
			outcome:     OutcomeWouldFix,
			wantSymbol:  "⟳",
			wantStatus:  "needs fix",
			wantCount:   "2 substitutions",
			description: "should show pending symbol for check runs",
		},
		{
			name:        "error",
			path:        "src/main.rs",
			patches:     0,
			outcome:     OutcomeError,
			wantSymbol:  "✗",
			wantStatus:  "error",
			wantCount:   "0 substitutions",
			description: "should show cross for failures",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPatchOperation(tt.path, tt.patches, tt.outcome)

			assert.Contains(t, got, tt.wantSymbol, tt.description)
			assert.Contains(t, got, tt.path, "should contain the target path")
			assert.Contains(t, got, tt.wantStatus, "should contain the status text")
			assert.Contains(t, got, tt.wantCount, "should contain the substitution count")
		})
	}
}

func TestOutcomeText(t *testing.T) {
	assert.Equal(t, "fixed", outcomeText(OutcomeFixed))
	assert.Equal(t, "clean", outcomeText(OutcomeClean))
	assert.Equal(t, "needs fix", outcomeText(OutcomeWouldFix))
	assert.Equal(t, "error", outcomeText(OutcomeError))
	assert.Equal(t, "unknown", outcomeText(PatchOutcome(99)))
}
