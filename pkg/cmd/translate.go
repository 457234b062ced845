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

var translateCmd = &cobra.Command{
	Use:   "translate [flags] file(s)",
	Short: "translate temporal formulas without shifting them.",
	Long: `Translate the temporal formulas of one or more files, printing each formula
	(fully parenthesised) alongside the theory term it translates back into.  This is
	useful for checking how formulas are parsed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := getConfig(cmd)
		files := readSourceFiles(args)
		//
		if errs := translateFiles(cmd.OutOrStdout(), cfg, files, GetUint(cmd, "jobs")); len(errs) > 0 {
			printSyntaxErrors(cmd.ErrOrStderr(), errs)
			os.Exit(3)
		}
	},
}

// Translate the temporal formulas of a given set of source files, writing each
// formula and its theory term to a given writer.  Unlike rewriting, a formula
// which cannot be translated does not prevent the remainder from being
// translated.
func translateFiles(w io.Writer, cfg config.Config, files []source.File, jobs uint) []source.SyntaxError {
	programs, errs := parseSourceFiles(files, jobs)
	if len(errs) > 0 {
		return errs
	}
	//
	for _, prog := range programs {
		for _, atom := range prog.atoms {
			if !atom.HasName(cfg.Theory) {
				continue
			}
			//
			formula, err := compiler.TheoryAtomToFormula(atom)
			if err != nil {
				errs = append(errs, toSyntaxError(prog.srcfile, err))
				continue
			}
			//
			fmt.Fprintf(w, "%s\n\t%s\n", formula, compiler.FormulaToTheoryTerm(formula))
		}
	}
	//
	return errs
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
