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
	"github.com/consensys/go-telingo/pkg/tel/ast"
	"github.com/consensys/go-telingo/pkg/theory"
	"github.com/consensys/go-telingo/pkg/util/source"
)

// TheoryTermToTelAtom translates a theory term denoting a (possibly classically
// negated) atom into a Tel atom.  Any number of leading unary minus operators is
// permitted, each of which flips the sign of the atom.  The resulting atom is
// positive if the number of flips is even and positive holds, or the number of
// flips is odd and positive does not hold.  For example, "- -a" gives "a",
// whilst "-a" with positive=false gives "a".
func TheoryTermToTelAtom(term theory.Term, positive bool) (*ast.TelAtom, error) {
	var (
		span  = term.Span()
		inner = term
		sign  = positive
	)
	// Strip off classical negations
	for {
		if fn, ok := inner.(*theory.Function); ok && fn.Matches("-", 1) {
			inner = fn.Args[0]
			sign = !sign
		} else {
			break
		}
	}
	//
	switch t := inner.(type) {
	case *theory.Symbol:
		if t.Name == ast.FINAL_ATOM {
			return nil, reservedName(span, t.Name)
		}
		//
		return &ast.TelAtom{Location: span, Positive: sign, Name: t.Name}, nil
	case *theory.Function:
		if t.IsOperator() {
			break
		} else if t.Name == ast.FINAL_ATOM {
			return nil, reservedName(span, t.Name)
		}
		//
		args, err := theoryTermsToTerms(t.Args, ErrMalformedAtom)
		if err != nil {
			return nil, err
		}
		//
		return &ast.TelAtom{Location: span, Positive: sign, Name: t.Name, Arguments: args}, nil
	}
	//
	return nil, newError(ErrMalformedAtom, span, "expected atom, found \"%s\"", term)
}

func reservedName(span source.Span, name string) *Error {
	return newError(ErrMalformedAtom, span, "\"%s\" is reserved", name)
}

// TelAtomToTheoryTerm translates a Tel atom back into a theory term.  The atom
// is wrapped in a unary minus when its sign differs from positive.
func TelAtomToTheoryTerm(atom *ast.TelAtom, positive bool) theory.Term {
	var term theory.Term
	//
	if len(atom.Arguments) == 0 {
		term = &theory.Symbol{Location: atom.Location, Name: atom.Name}
	} else {
		term = &theory.Function{Location: atom.Location, Name: atom.Name, Args: termsToTheoryTerms(atom.Arguments)}
	}
	//
	if atom.Positive != positive {
		term = &theory.Function{Location: atom.Location, Name: "-", Args: []theory.Term{term}}
	}
	//
	return term
}
