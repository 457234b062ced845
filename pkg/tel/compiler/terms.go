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

// TheoryTermToTerm converts a theory term into a symbolic term.  Unary minus and
// the binary arithmetic operators become arithmetic terms, whilst applications
// of any other operator (e.g. "a & b") are rejected as malformed.
func TheoryTermToTerm(term theory.Term) (ast.Term, error) {
	return theoryTermToTerm(term, ErrMalformedAtom)
}

// TheoryTermsToTerms converts a sequence of theory terms into symbolic terms,
// failing on the first which cannot be converted.
func TheoryTermsToTerms(terms []theory.Term) ([]ast.Term, error) {
	return theoryTermsToTerms(terms, ErrMalformedAtom)
}

// TermToTheoryTerm converts a symbolic term back into a theory term.  This is
// the inverse of TheoryTermToTerm, except that source spans are not retained.
func TermToTheoryTerm(term ast.Term) theory.Term {
	var span source.Span
	//
	switch t := term.(type) {
	case *ast.Number:
		return &theory.Number{Location: span, Value: t.Value}
	case *ast.Symbol:
		return &theory.Symbol{Location: span, Name: t.Name}
	case *ast.String:
		return &theory.String{Location: span, Value: t.Value}
	case *ast.Variable:
		return &theory.Variable{Location: span, Name: t.Name}
	case *ast.Negative:
		return &theory.Function{Location: span, Name: "-", Args: []theory.Term{TermToTheoryTerm(t.Arg)}}
	case *ast.Arithmetic:
		args := []theory.Term{TermToTheoryTerm(t.Lhs), TermToTheoryTerm(t.Rhs)}
		return &theory.Function{Location: span, Name: t.Op.Symbol(), Args: args}
	case *ast.Function:
		return &theory.Function{Location: span, Name: t.Name, Args: termsToTheoryTerms(t.Args)}
	case *ast.Tuple:
		return &theory.Tuple{Location: span, Args: termsToTheoryTerms(t.Args)}
	}
	//
	panic("unreachable")
}

func theoryTermToTerm(term theory.Term, kind error) (ast.Term, error) {
	switch t := term.(type) {
	case *theory.Number:
		return &ast.Number{Value: t.Value}, nil
	case *theory.Symbol:
		return &ast.Symbol{Name: t.Name}, nil
	case *theory.String:
		return &ast.String{Value: t.Value}, nil
	case *theory.Variable:
		return &ast.Variable{Name: t.Name}, nil
	case *theory.Tuple:
		args, err := theoryTermsToTerms(t.Args, kind)
		if err != nil {
			return nil, err
		}
		//
		return &ast.Tuple{Args: args}, nil
	case *theory.Function:
		args, err := theoryTermsToTerms(t.Args, kind)
		//
		if err != nil {
			return nil, err
		} else if !t.IsOperator() {
			return &ast.Function{Name: t.Name, Args: args}, nil
		} else if t.Matches("-", 1) {
			return &ast.Negative{Arg: args[0]}, nil
		} else if op, ok := ast.ArithmeticOpFor(t.Name); ok && len(args) == 2 {
			return &ast.Arithmetic{Op: op, Lhs: args[0], Rhs: args[1]}, nil
		}
		//
		return nil, newError(kind, t.Span(), "unexpected operator \"%s\" in term \"%s\"", t.Name, t)
	}
	//
	panic("unreachable")
}

func theoryTermsToTerms(terms []theory.Term, kind error) ([]ast.Term, error) {
	nterms := make([]ast.Term, len(terms))
	//
	for i, t := range terms {
		var err error
		//
		if nterms[i], err = theoryTermToTerm(t, kind); err != nil {
			return nil, err
		}
	}
	//
	return nterms, nil
}

func termsToTheoryTerms(terms []ast.Term) []theory.Term {
	nterms := make([]theory.Term, len(terms))
	//
	for i, t := range terms {
		nterms[i] = TermToTheoryTerm(t)
	}
	//
	return nterms
}
