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
	"github.com/consensys/go-telingo/pkg/util/source"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [flags] file(s)",
	Short: "shift temporal formulas, printing the formulas and definitions.",
	Long: `Shift the temporal formulas of a logic program, given as one or more files.
	For each formula, the shifted formula is printed followed by the definitions of
	any auxiliary atoms introduced (as "head<>body").`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := getConfig(cmd)
		files := readSourceFiles(args)
		//
		if errs := shiftFiles(cmd.OutOrStdout(), cfg, files, GetUint(cmd, "jobs")); len(errs) > 0 {
			printSyntaxErrors(cmd.ErrOrStderr(), errs)
			os.Exit(3)
		}
	},
}

// Shift the temporal formulas of the program made up from a given set of source
// files, writing each shifted formula and its definitions to a given writer.
func shiftFiles(w io.Writer, cfg config.Config, files []source.File, jobs uint) []source.SyntaxError {
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
			if result.Formula == nil {
				continue
			}
			//
			fmt.Fprintln(w, result.Shifted.Formula)
			//
			for _, def := range result.Shifted.Definitions {
				fmt.Fprintf(w, "\t%s\n", def)
			}
		}
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(shiftCmd)
}
