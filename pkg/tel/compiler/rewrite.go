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
	"github.com/consensys/go-telingo/pkg/config"
	"github.com/consensys/go-telingo/pkg/tel/ast"
	"github.com/consensys/go-telingo/pkg/theory"
	log "github.com/sirupsen/logrus"
)

// Result describes the outcome of rewriting a single theory atom.  Atoms of
// other theories are passed through unchanged, in which case Formula is nil and
// Atoms holds just the original atom.
type Result struct {
	// Original theory atom.
	Source *theory.Atom
	// Formula translated from the original atom.
	Formula ast.Formula
	// Outcome of shifting the translated formula.
	Shifted ShiftResult
	// Theory atoms replacing the original atom.  The first holds the shifted
	// formula, whilst the remainder hold its definitions.
	Atoms []*theory.Atom
}

// Rewriter rewrites the temporal formulas of a program into shifted form.
type Rewriter struct {
	theory     string
	definition string
	template   *ast.TelAtom
	shifter    *Shifter
}

// NewRewriter constructs a rewriter for a given configuration.
func NewRewriter(cfg config.Config) *Rewriter {
	var (
		template = &ast.TelAtom{Positive: true, Name: cfg.AuxPredicate}
		markers  = Markers{cfg.TimeMarker, cfg.StartMarker, cfg.CountdownMarker}
	)
	//
	return &Rewriter{cfg.Theory, cfg.DefinitionTheory, template, NewShifter(markers)}
}

// Rewrite the theory atoms of a single program, in order.  Auxiliary atoms are
// numbered consecutively across the whole program, so that no two formulas
// share an auxiliary atom.  Rewriting stops at the first atom which cannot be
// translated, in which case no results are returned.  Since the only state is
// local to each call, a Rewriter can be used concurrently on distinct programs.
func (p *Rewriter) Rewrite(atoms []*theory.Atom) ([]Result, error) {
	results, _, err := p.RewriteFrom(atoms, 0)
	//
	return results, err
}

// RewriteFrom rewrites a sequence of theory atoms, numbering auxiliary atoms
// from a given index.  This returns the first index not yet used, such that a
// program split over several sources can be rewritten one source at a time.
func (p *Rewriter) RewriteFrom(atoms []*theory.Atom, next uint) ([]Result, uint, error) {
	results := make([]Result, len(atoms))
	//
	for i, atom := range atoms {
		if !atom.HasName(p.theory) {
			log.Debugf("skipping theory atom %s", atom)
			results[i] = Result{Source: atom, Atoms: []*theory.Atom{atom}}
			//
			continue
		}
		//
		result, err := p.RewriteAtom(atom, next)
		if err != nil {
			return nil, next, err
		}
		//
		results[i] = result
		next = result.Shifted.Next
	}
	//
	return results, next, nil
}

// RewriteAtom rewrites a single theory atom, numbering any auxiliary atoms from
// a given index.
func (p *Rewriter) RewriteAtom(atom *theory.Atom, next uint) (Result, error) {
	formula, err := TheoryAtomToFormula(atom)
	if err != nil {
		return Result{}, err
	}
	//
	log.Debugf("translated %s into %s", atom, formula)
	//
	shifted, err := p.shifter.Shift(formula, p.template, next)
	if err != nil {
		return Result{}, err
	}
	//
	log.Debugf("shifted %s into %s (%d definitions)", formula, shifted.Formula, len(shifted.Definitions))
	//
	atoms := make([]*theory.Atom, 1+len(shifted.Definitions))
	atoms[0] = NewTheoryAtom(p.theory, FormulaToTheoryTerm(shifted.Formula))
	//
	for i, def := range shifted.Definitions {
		head := TelAtomToTheoryTerm(def.Head, true)
		atoms[i+1] = NewTheoryAtom(p.definition, head, FormulaToTheoryTerm(def.Body))
	}
	//
	return Result{atom, formula, shifted, atoms}, nil
}
