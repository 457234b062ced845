// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "telingo",
	Short: "A rewriter for temporal formulas in logic programs.",
	Long: `Rewrite the temporal formulas embedded in logic programs (as "&tel{ ... }"
	theory atoms) into a flat form suitable for grounding one step at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !GetFlag(cmd, "version") {
			_ = cmd.Help()
			return
		}
		//
		out := cmd.OutOrStdout()
		fmt.Fprint(out, "telingo ")
		//
		if Version != "" {
			// Built via "make"
			fmt.Fprintf(out, "%s", Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			// Built via "go install"
			fmt.Fprintf(out, "%s", info.Main.Version)
		} else {
			// Unknown, perhaps "go run"
			fmt.Fprintf(out, "(unknown version)")
		}
		//
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("config", "c", "", "read configuration from a YAML file")
	rootCmd.PersistentFlags().String("theory", "", "name of theory atoms holding temporal formulas")
	rootCmd.PersistentFlags().String("aux", "", "name of predicate used for auxiliary atoms")
	rootCmd.PersistentFlags().UintP("jobs", "j", 0, "number of files parsed in parallel (0 for no limit)")
}
