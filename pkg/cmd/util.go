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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-telingo/pkg/config"
	"github.com/consensys/go-telingo/pkg/tel/compiler"
	"github.com/consensys/go-telingo/pkg/theory"
	"github.com/consensys/go-telingo/pkg/util"
	"github.com/consensys/go-telingo/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level and read the configuration, as determined by the
// (persistent) flags of a given command.  Settings given on the command line
// override those read from a configuration file.
func getConfig(cmd *cobra.Command) config.Config {
	var (
		cfg      = config.Default()
		filename = GetString(cmd, "config")
		err      error
	)
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	if filename != "" {
		if cfg, err = config.Load(filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if cmd.Flags().Changed("theory") {
		cfg.Theory = GetString(cmd, "theory")
	}
	//
	if cmd.Flags().Changed("aux") {
		cfg.AuxPredicate = GetString(cmd, "aux")
	}
	//
	if err = cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("using configuration %+v", cfg)
	//
	return cfg
}

// Read the given source files, or exit if an error arises.
func readSourceFiles(filenames []string) []source.File {
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return files
}

// A program holds the theory atoms parsed from a given source file.
type program struct {
	srcfile *source.File
	atoms   []*theory.Atom
}

// Parse the theory atoms from a given set of source files.  Files are parsed in
// parallel, though the resulting programs are in the same order as the files.
// When any file contains syntax errors, these are returned for every file.
func parseSourceFiles(files []source.File, jobs uint) ([]program, []source.SyntaxError) {
	var (
		stats   = util.NewPerfStats()
		indices = make([]int, len(files))
		errs    []source.SyntaxError
	)
	//
	for i := range indices {
		indices[i] = i
	}
	//
	type parsed struct {
		prog program
		errs []source.SyntaxError
	}
	// Syntax errors are collected, rather than failing the job.
	results, err := util.ParMap(indices, int(jobs), func(i int) (parsed, error) {
		srcfile := &files[i]
		atoms, syntaxErrs := theory.Parse(srcfile, theory.TelOperators)
		//
		return parsed{program{srcfile, atoms}, syntaxErrs}, nil
	})
	//
	if err != nil {
		panic("unreachable")
	}
	//
	programs := make([]program, len(results))
	//
	for i, r := range results {
		programs[i] = r.prog
		errs = append(errs, r.errs...)
	}
	//
	stats.Log(fmt.Sprintf("Parsing %d source file(s)", len(files)))
	//
	return programs, errs
}

// Convert an error arising from translating a theory atom in a given source
// file into a syntax error.
func toSyntaxError(srcfile *source.File, err error) source.SyntaxError {
	var cerr *compiler.Error
	//
	if errors.As(err, &cerr) {
		return *srcfile.SyntaxError(cerr.Span(), cerr.Error())
	}
	//
	return *srcfile.SyntaxError(source.NewSpan(0, 0), err.Error())
}

// Print a set of syntax errors, clipped to the width of the terminal.
func printSyntaxErrors(w io.Writer, errs []source.SyntaxError) {
	width := terminalWidth()
	//
	for i := range errs {
		printSyntaxError(w, &errs[i], width)
	}
}

// Print a syntax error with appropriate highlighting.  When a (positive) width
// is given, long lines are clipped around the highlighted region.
func printSyntaxError(w io.Writer, err *source.SyntaxError, width uint) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Fprintf(w, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(w)
	// Clip line (if necessary)
	text, start := []rune(line.String()), 0
	//
	if n := int(width); n > 0 && len(text) > n {
		start = max(0, min(lineOffset-n/2, len(text)-n))
		text = text[start : start+n]
	}
	// Print line
	fmt.Fprintln(w, string(text))
	// Print indent (todo: account for tabs)
	fmt.Fprint(w, strings.Repeat(" ", lineOffset-start))
	// Print highlight
	fmt.Fprintln(w, strings.Repeat("^", max(0, min(length, len(text)-lineOffset+start))))
}

// Determine the width of the terminal attached to stdout, or zero if stdout is
// not a terminal.
func terminalWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return 0
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	//
	return uint(width)
}
