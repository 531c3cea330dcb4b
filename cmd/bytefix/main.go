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

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/bytefix/cmd/bytefix/commands"
	"github.com/walteh/bytefix/cmd/bytefix/opts"
	"github.com/walteh/bytefix/pkg/status"
)

func main() {
	ctx := context.Background()

	// Filled in after flag parsing, shared by all commands
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "bytefix",
		Short: "A tool for fixing a known byte-level corruption in a source file",
		Long: `bytefix performs a one-time binary patch on a single file: it scans the
file's raw bytes for a corrupted byte sequence and replaces it with the
intended one. Run without arguments it applies the built-in fix.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			populated, err := newRootOpts(cmd.Context())
			if err != nil {
				return err
			}
			*rootOpts = *populated
			return nil
		},
		// Running bytefix with no subcommand applies the patch
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunApply(cmd.Context(), rootOpts)
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewApplyCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger := status.NewUserLogger(ctx)
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}

// TODO(dr.methodical): 🧪 Add tests for command line parsing
