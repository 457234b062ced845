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
	"io"
	"os"

	"github.com/consensys/go-telingo/pkg/config"
	"github.com/consensys/go-telingo/pkg/tel/compiler"
	"github.com/consensys/go-telingo/pkg/util"
	"github.com/consensys/go-telingo/pkg/util/source"
	"github.com/spf13/cobra"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] file(s)",
	Short: "rewrite the temporal formulas of a logic program.",
	Long: `Rewrite the temporal formulas of a logic program, given as one or more files,
	into shifted form.  Every formula is replaced by a theory atom holding its shifted
	form, followed by theory atoms defining any auxiliary atoms introduced.  Theory
	atoms of other theories are printed unchanged.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := getConfig(cmd)
		files := readSourceFiles(args)
		//
		if errs := rewriteFiles(cmd.OutOrStdout(), cfg, files, GetUint(cmd, "jobs")); len(errs) > 0 {
			printSyntaxErrors(cmd.ErrOrStderr(), errs)
			os.Exit(3)
		}
	},
}

// Rewrite the program made up from a given set of source files, writing the
// resulting theory atoms to a given writer.  Auxiliary atoms are numbered
// across all files, since together they form a single program.
func rewriteFiles(w io.Writer, cfg config.Config, files []source.File, jobs uint) []source.SyntaxError {
	var (
		rewriter = compiler.NewRewriter(cfg)
		next     uint
	)
	//
	programs, errs := parseSourceFiles(files, jobs)
	if len(errs) > 0 {
		return errs
	}
	//
	stats := util.NewPerfStats()
	//
	for _, prog := range programs {
		var (
			results []compiler.Result
			err     error
		)
		//
		if results, next, err = rewriter.RewriteFrom(prog.atoms, next); err != nil {
			return []source.SyntaxError{toSyntaxError(prog.srcfile, err)}
		}
		//
		for _, result := range results {
			for _, atom := range result.Atoms {
				fmt.Fprintf(w, "%s.\n", atom)
			}
		}
	}
	//
	stats.Log("Rewriting temporal formulas")
	//
	return nil
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}
