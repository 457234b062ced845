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
package ast

// Variables returns the variables occurring in a given formula, in the order in
// which they are first encountered by a depth-first, left-to-right traversal.
// This includes variables found in the step counts of temporal operators, and
// in the operands of comparisons.  Each variable is reported once, and the
// anonymous variable is never reported.
func Variables(formula Formula) []*Variable {
	collector := variableCollector{seen: make(map[string]bool)}
	collector.formula(formula)
	//
	return collector.vars
}

// TermVariables returns the variables occurring in a given sequence of terms,
// following the same rules as for formulas.
func TermVariables(terms ...Term) []*Variable {
	collector := variableCollector{seen: make(map[string]bool)}
	collector.terms(terms)
	//
	return collector.vars
}

type variableCollector struct {
	vars []*Variable
	seen map[string]bool
}

func (p *variableCollector) formula(formula Formula) {
	switch f := formula.(type) {
	case *TelAtom:
		p.terms(f.Arguments)
	case *Boolean, *Final:
		return
	case *Comparison:
		p.term(f.Lhs)
		p.term(f.Rhs)
	case *Negation:
		p.formula(f.Arg)
	case *Connective:
		for _, arg := range f.Args {
			p.formula(arg)
		}
	case *Unary:
		if f.Steps.HasValue() {
			p.term(f.Steps.Unwrap())
		}
		//
		p.formula(f.Arg)
	case *Binary:
		p.formula(f.Lhs)
		p.formula(f.Rhs)
	default:
		panic("unreachable")
	}
}

func (p *variableCollector) terms(terms []Term) {
	for _, t := range terms {
		p.term(t)
	}
}

func (p *variableCollector) term(term Term) {
	switch t := term.(type) {
	case *Number, *Symbol, *String:
		return
	case *Variable:
		if t.Name != "_" && !p.seen[t.Name] {
			p.seen[t.Name] = true
			p.vars = append(p.vars, t)
		}
	case *Negative:
		p.term(t.Arg)
	case *Arithmetic:
		p.term(t.Lhs)
		p.term(t.Rhs)
	case *Function:
		p.terms(t.Args)
	case *Tuple:
		p.terms(t.Args)
	default:
		panic("unreachable")
	}
}
