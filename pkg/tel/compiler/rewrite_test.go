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
package compiler

import (
	"testing"

	"github.com/consensys/go-telingo/pkg/config"
	"github.com/consensys/go-telingo/pkg/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Theory form of the offset for step 1
const offset1 = "+(-(1,__t),__S)"

// Theory form of strong next over a given atom
func strongNextTerm(arg string) string {
	return "&(&(>=(" + offset1 + ",0),|(" + arg + ",!=(" + offset1 + ",0))),<=(" + offset1 + ",0))"
}

func Test_Rewrite_01(t *testing.T) {
	results := checkRewrite(t, config.Default(), "&tel{ a }.")
	//
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Formula.String())
	assert.Equal(t, []string{"&tel { a :  }"}, atomStrings(results[0].Atoms))
}

func Test_Rewrite_02(t *testing.T) {
	results := checkRewrite(t, config.Default(), "p :- q. &tel{ >a } :- r. &other{ x }. &tel{ b >* c }.")
	//
	require.Len(t, results, 3)
	// First formula
	assert.Equal(t, "(>a)", results[0].Formula.String())
	assert.Equal(t, []string{"&tel { " + strongNextTerm("a") + " :  }"}, atomStrings(results[0].Atoms))
	// Other theories are passed through
	assert.Nil(t, results[1].Formula)
	assert.Equal(t, []string{"&other { x :  }"}, atomStrings(results[1].Atoms))
	// Second formula
	assert.Equal(t, []string{
		"&tel { __aux(0) :  }",
		"&tel_def { __aux(0),&(c,|(|(b,__final)," + strongNextTerm("__aux(0)") + ")) :  }",
	}, atomStrings(results[2].Atoms))
}

func Test_Rewrite_03(t *testing.T) {
	// Auxiliary atoms are numbered across the whole program
	results := checkRewrite(t, config.Default(), "&tel{ >?a }. &tel{ >?p(X) }.")
	//
	require.Len(t, results, 2)
	assert.Equal(t, "&tel { __aux(0) :  }", results[0].Atoms[0].String())
	assert.Equal(t, "&tel { __aux(1,X) :  }", results[1].Atoms[0].String())
	assert.Equal(t, uint(2), results[1].Shifted.Next)
	assert.Equal(t,
		"&tel_def { __aux(1,X),|(p(X),&(~(__final),"+strongNextTerm("__aux(1,X)")+")) :  }",
		results[1].Atoms[1].String())
}

func Test_Rewrite_04(t *testing.T) {
	cfg := config.Default()
	cfg.Theory = "ltl"
	cfg.DefinitionTheory = "ltl_def"
	cfg.AuxPredicate = "h"
	cfg.TimeMarker = "now"
	cfg.StartMarker = "Start"
	//
	results := checkRewrite(t, cfg, "&tel{ >?a }. &ltl{ >:b & >?c }.")
	//
	require.Len(t, results, 2)
	assert.Nil(t, results[0].Formula)
	assert.Equal(t, []string{
		"&ltl { &(&(>=(+(-(1,now),Start),0),|(b,!=(+(-(1,now),Start),0))),h(0)) :  }",
		"&ltl_def { h(0),|(c,&(~(__final),&(&(>=(+(-(1,now),Start),0),|(h(0),!=(+(-(1,now),Start),0))),<=(+(-(1,now),Start),0)))) :  }",
	}, atomStrings(results[1].Atoms))
}

func Test_Rewrite_From(t *testing.T) {
	rewriter := NewRewriter(config.Default())
	//
	results, next, err := rewriter.RewriteFrom(parseProgram(t, "&tel{ a >? b }. &tel{ c }."), 4)
	//
	require.NoError(t, err)
	assert.Equal(t, uint(5), next)
	assert.Equal(t, "&tel { __aux(4) :  }", results[0].Atoms[0].String())
	assert.Equal(t, "&tel { c :  }", results[1].Atoms[0].String())
}

func Test_Rewrite_Invalid_01(t *testing.T) {
	atoms := parseProgram(t, "&tel{ >a }. &tel{ x>a }.")
	//
	results, err := NewRewriter(config.Default()).Rewrite(atoms)
	//
	require.ErrorIs(t, err, ErrUnsupportedTemporalOperand)
	assert.Nil(t, results)
}

func Test_Rewrite_Invalid_02(t *testing.T) {
	atoms := parseProgram(t, "&tel{ a + b }.")
	//
	_, err := NewRewriter(config.Default()).Rewrite(atoms)
	//
	require.ErrorIs(t, err, ErrMalformedFormula)
	assert.Equal(t, "malformed formula: unknown operator \"+\" with 2 argument(s)", err.Error())
}

func Test_Rewrite_Concurrent(t *testing.T) {
	var (
		rewriter = NewRewriter(config.Default())
		program  = parseProgram(t, "&tel{ >?a }. &tel{ a >? b }. &tel{ >(a & >?b) }.")
		expected = checkRewrite(t, config.Default(), "&tel{ >?a }. &tel{ a >? b }. &tel{ >(a & >?b) }.")
		outputs  = make([][]Result, 8)
		group    errgroup.Group
	)
	//
	for i := range outputs {
		group.Go(func() error {
			var err error
			outputs[i], err = rewriter.Rewrite(program)
			//
			return err
		})
	}
	//
	require.NoError(t, group.Wait())
	//
	for _, output := range outputs {
		require.Len(t, output, len(expected))
		//
		for i := range output {
			assert.Equal(t, atomStrings(expected[i].Atoms), atomStrings(output[i].Atoms))
		}
	}
}

// ==================================================================
// Framework
// ==================================================================

func checkRewrite(t *testing.T, cfg config.Config, input string) []Result {
	results, err := NewRewriter(cfg).Rewrite(parseProgram(t, input))
	require.NoError(t, err)
	//
	return results
}

func parseProgram(t *testing.T, input string) []*theory.Atom {
	atoms, errs := theory.ParseString(input)
	require.Empty(t, errs)
	//
	return atoms
}

func atomStrings(atoms []*theory.Atom) []string {
	var strs []string
	//
	for _, atom := range atoms {
		strs = append(strs, atom.String())
	}
	//
	return strs
}
