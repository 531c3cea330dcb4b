package patch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.rs")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestPatchFile(t *testing.T) {
	rules := []Rule{
		{Find: []byte(".bind(\xc2\xaces)"), Replace: []byte(".bind(&es)")},
	}

	t.Run("patches_in_place", func(t *testing.T) {
		path := writeTestFile(t, []byte("call .bind(\xc2\xaces) more"))

		result, err := PatchFile(context.Background(), path, rules)
		require.NoError(t, err)
		assert.True(t, result.WasModified)
		assert.Equal(t, 1, result.PatchCount)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("call .bind(&es) more"), got, "file should be rewritten with the fix")
	})

	t.Run("noop_still_rewrites_identical_content", func(t *testing.T) {
		original := []byte("already fixed: .bind(&es)")
		path := writeTestFile(t, original)

		result, err := PatchFile(context.Background(), path, rules)
		require.NoError(t, err, "a zero-occurrence run is a success, not an error")
		assert.False(t, result.WasModified)
		assert.Equal(t, 0, result.PatchCount)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, original, got, "content should be byte-for-byte identical")
	})

	t.Run("preserves_file_mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "target.rs")
		require.NoError(t, os.WriteFile(path, []byte("x .bind(\xc2\xaces) y"), 0o755))

		_, err := PatchFile(context.Background(), path, rules)
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("missing_file_is_a_file_access_error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does-not-exist.rs")

		_, err := PatchFile(context.Background(), path, rules)
		require.Error(t, err)

		var accessErr *FileAccessError
		require.ErrorAs(t, err, &accessErr)
		assert.Equal(t, "stat", accessErr.Op)
		assert.Equal(t, path, accessErr.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid_rules_leave_file_untouched", func(t *testing.T) {
		original := []byte("call .bind(\xc2\xaces) more")
		path := writeTestFile(t, original)

		_, err := PatchFile(context.Background(), path, []Rule{{Replace: []byte("x")}})
		require.Error(t, err)

		got, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, original, got, "nothing should be written on a failed run")
	})
}

func TestCheckFile(t *testing.T) {
	rules := []Rule{
		{Find: []byte(".bind(\xc2\xaces)"), Replace: []byte(".bind(&es)")},
	}

	t.Run("reports_without_writing", func(t *testing.T) {
		original := []byte("call .bind(\xc2\xaces) more")
		path := writeTestFile(t, original)

		result, err := CheckFile(context.Background(), path, rules)
		require.NoError(t, err)
		assert.True(t, result.WasModified, "check should report the pending fix")
		assert.Equal(t, []byte("call .bind(&es) more"), result.PatchedContent)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, original, got, "check must never modify the file")
	})

	t.Run("clean_file_reports_unmodified", func(t *testing.T) {
		path := writeTestFile(t, []byte("call .bind(&es) more"))

		result, err := CheckFile(context.Background(), path, rules)
		require.NoError(t, err)
		assert.False(t, result.WasModified)
	})
}

func TestFilterRules(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		rules     []Rule
		wantLen   int
		wantError string
	}{
		{
			name: "no_glob_always_applies",
			path: "src/main.rs",
			rules: []Rule{
				{Find: []byte("a"), Replace: []byte("b")},
			},
			wantLen: 1,
		},
		{
			name: "matching_glob_applies",
			path: "src/infrastructure/repositories/invoice_repository.rs",
			rules: []Rule{
				{Find: []byte("a"), Replace: []byte("b"), FileFilterGlob: "**/*.rs"},
			},
			wantLen: 1,
		},
		{
			name: "non_matching_glob_is_filtered",
			path: "README.md",
			rules: []Rule{
				{Find: []byte("a"), Replace: []byte("b"), FileFilterGlob: "**/*.rs"},
			},
			wantLen: 0,
		},
		{
			name: "invalid_glob_errors",
			path: "src/main.rs",
			rules: []Rule{
				{Find: []byte("a"), Replace: []byte("b"), FileFilterGlob: "[unclosed"},
			},
			wantError: "invalid file filter glob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filterRules(tt.path, tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
