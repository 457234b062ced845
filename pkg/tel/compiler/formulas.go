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
	"slices"

	"github.com/consensys/go-telingo/pkg/tel/ast"
	"github.com/consensys/go-telingo/pkg/theory"
	"github.com/consensys/go-telingo/pkg/util"
	"github.com/consensys/go-telingo/pkg/util/source"
)

// DEFAULT_THEORY is the name of the theory atom under which temporal formulas
// are written, as in "&tel{ >a }".
const DEFAULT_THEORY = "tel"

// UNARY_OPERATORS identifies the operators which may be applied to one formula.
var UNARY_OPERATORS = []string{"&", "~", ">>", ">", ">:", ">?", ">*"}

// BINARY_OPERATORS identifies the operators which may be applied to two
// formulas (or to a step count and a formula).
var BINARY_OPERATORS = []string{"&", "|", ">", ">:", ">?", ">*", ";>", ";>:"}

// TheoryAtomToFormula translates a theory atom into a temporal formula.  The
// atom must have exactly one element, whose tuple holds exactly one term and
// whose condition is empty.  As a special case, an atom without any elements
// is translated as an atom given by its name.  Guards are not permitted.
func TheoryAtomToFormula(atom *theory.Atom) (ast.Formula, error) {
	if atom.Guard != nil {
		return nil, newError(ErrMalformedFormula, atom.Guard.Term.Span(), "unexpected guard \"%s\"", atom.Guard)
	} else if len(atom.Elements) == 0 {
		return theoryTermToAtomFormula(atom.Name)
	} else if len(atom.Elements) != 1 {
		return nil, newError(ErrMalformedFormula, atom.Span(), "expected one element, found %d", len(atom.Elements))
	}
	//
	element := atom.Elements[0]
	//
	if len(element.Tuple) != 1 {
		return nil, newError(ErrMalformedFormula, atom.Span(), "expected one term, found %d", len(element.Tuple))
	} else if len(element.Condition) != 0 {
		return nil, newError(ErrMalformedFormula, element.Condition[0].Span(), "unexpected condition")
	}
	//
	return TheoryTermToFormula(element.Tuple[0])
}

// TheoryTermToFormula translates a theory term into a temporal formula,
// dispatching on the name and arity of operator applications.  Terms which are
// not operator applications (other than classical negation) are translated as
// atoms.
func TheoryTermToFormula(term theory.Term) (ast.Formula, error) {
	fn, ok := term.(*theory.Function)
	// Check for atoms
	if !ok || !fn.IsOperator() || fn.Matches("-", 1) {
		return theoryTermToAtomFormula(term)
	}
	// Operators are checked before their operands are translated
	switch {
	case len(fn.Args) == 1 && slices.Contains(UNARY_OPERATORS, fn.Name):
		return theoryUnaryToFormula(fn)
	case len(fn.Args) == 2 && slices.Contains(BINARY_OPERATORS, fn.Name):
		return theoryBinaryToFormula(fn)
	}
	//
	return nil, malformedOperator(fn)
}

func theoryTermToAtomFormula(term theory.Term) (ast.Formula, error) {
	atom, err := TheoryTermToTelAtom(term, true)
	if err != nil {
		return nil, err
	}
	//
	return atom, nil
}

func theoryUnaryToFormula(fn *theory.Function) (ast.Formula, error) {
	span := fn.Span()
	// Constants
	if fn.Name == "&" {
		if sym, ok := fn.Args[0].(*theory.Symbol); ok {
			switch sym.Name {
			case "true":
				return &ast.Boolean{Location: span, Value: true}, nil
			case "false":
				return &ast.Boolean{Location: span, Value: false}, nil
			case "final":
				return &ast.Final{Location: span}, nil
			}
		}
		//
		return nil, malformedOperator(fn)
	}
	//
	arg, err := TheoryTermToFormula(fn.Args[0])
	if err != nil {
		return nil, err
	}
	//
	switch fn.Name {
	case "~":
		return &ast.Negation{Location: span, Arg: arg}, nil
	case ">>":
		final := &ast.Connective{Location: span, Op: ast.OR, Args: []ast.Formula{&ast.Final{Location: span}, arg}}
		return &ast.Unary{Location: span, Op: ast.ALWAYS, Steps: util.None[ast.Term](), Arg: final}, nil
	}
	//
	if op, ok := unaryOperatorFor(fn.Name); ok {
		return &ast.Unary{Location: span, Op: op, Steps: util.None[ast.Term](), Arg: arg}, nil
	}
	//
	return nil, malformedOperator(fn)
}

func theoryBinaryToFormula(fn *theory.Function) (ast.Formula, error) {
	span := fn.Span()
	// Bounded operators carry their step count as the first argument
	if op, ok := unaryOperatorFor(fn.Name); ok && isStepCount(op, fn.Args[0]) {
		steps, err := theoryTermToTerm(fn.Args[0], ErrMalformedFormula)
		if err != nil {
			return nil, err
		}
		//
		arg, err := TheoryTermToFormula(fn.Args[1])
		if err != nil {
			return nil, err
		}
		//
		return &ast.Unary{Location: span, Op: op, Steps: util.Some(steps), Arg: arg}, nil
	}
	//
	lhs, err := TheoryTermToFormula(fn.Args[0])
	if err != nil {
		return nil, err
	}
	//
	rhs, err := TheoryTermToFormula(fn.Args[1])
	if err != nil {
		return nil, err
	}
	//
	switch fn.Name {
	case "&":
		return &ast.Connective{Location: span, Op: ast.AND, Args: []ast.Formula{lhs, rhs}}, nil
	case "|":
		return &ast.Connective{Location: span, Op: ast.OR, Args: []ast.Formula{lhs, rhs}}, nil
	case ">?":
		return &ast.Binary{Location: span, Op: ast.UNTIL, Lhs: lhs, Rhs: rhs}, nil
	case ">*":
		return &ast.Binary{Location: span, Op: ast.RELEASE, Lhs: lhs, Rhs: rhs}, nil
	case ";>":
		return sequence(span, ast.NEXT, lhs, rhs), nil
	case ";>:":
		return sequence(span, ast.WEAK_NEXT, lhs, rhs), nil
	}
	//
	return nil, malformedOperator(fn)
}

// Construct "lhs & (>rhs)" or "lhs & (>:rhs)".
func sequence(span source.Span, op ast.UnaryOp, lhs ast.Formula, rhs ast.Formula) ast.Formula {
	next := &ast.Unary{Location: span, Op: op, Steps: util.None[ast.Term](), Arg: rhs}
	return &ast.Connective{Location: span, Op: ast.AND, Args: []ast.Formula{lhs, next}}
}

// Check whether the first argument of a binary temporal operator is a step
// count.  For next operators this is always the case, whilst for eventually and
// always it must look arithmetic (otherwise we have until or release).
func isStepCount(op ast.UnaryOp, term theory.Term) bool {
	if op == ast.NEXT || op == ast.WEAK_NEXT {
		return true
	}
	//
	return isArithmeticTheoryTerm(term)
}

func isArithmeticTheoryTerm(term theory.Term) bool {
	switch t := term.(type) {
	case *theory.Number, *theory.Variable:
		return true
	case *theory.Function:
		if t.Matches("-", 1) {
			return isArithmeticTheoryTerm(t.Args[0])
		} else if _, ok := ast.ArithmeticOpFor(t.Name); ok && len(t.Args) == 2 {
			return isArithmeticTheoryTerm(t.Args[0]) && isArithmeticTheoryTerm(t.Args[1])
		}
	}
	//
	return false
}

func unaryOperatorFor(name string) (ast.UnaryOp, bool) {
	for _, op := range []ast.UnaryOp{ast.NEXT, ast.WEAK_NEXT, ast.EVENTUALLY, ast.ALWAYS} {
		if op.Symbol() == name {
			return op, true
		}
	}
	//
	return 0, false
}

func malformedOperator(fn *theory.Function) *Error {
	return newError(ErrMalformedFormula, fn.Span(), "unknown operator \"%s\" with %d argument(s)", fn.Name, len(fn.Args))
}

// FormulaToTheoryTerm translates a temporal formula back into a theory term.
// This is the structural inverse of TheoryTermToFormula, except that source
// spans are not retained for terms and n-ary connectives are folded left into
// binary applications.  Comparisons, which only arise from shifting, are emitted
// as applications of the comparison operator.
func FormulaToTheoryTerm(formula ast.Formula) theory.Term {
	span := formula.Span()
	//
	switch f := formula.(type) {
	case *ast.TelAtom:
		return TelAtomToTheoryTerm(f, true)
	case *ast.Boolean:
		value := "false"
		if f.Value {
			value = "true"
		}
		//
		return operator(span, "&", &theory.Symbol{Location: span, Name: value})
	case *ast.Final:
		return &theory.Symbol{Location: span, Name: ast.FINAL_ATOM}
	case *ast.Comparison:
		return operator(span, f.Op.Symbol(), TermToTheoryTerm(f.Lhs), TermToTheoryTerm(f.Rhs))
	case *ast.Negation:
		return operator(span, "~", FormulaToTheoryTerm(f.Arg))
	case *ast.Connective:
		term := FormulaToTheoryTerm(f.Args[0])
		//
		for _, arg := range f.Args[1:] {
			term = operator(span, f.Op.Symbol(), term, FormulaToTheoryTerm(arg))
		}
		//
		return term
	case *ast.Unary:
		if f.Steps.HasValue() {
			return operator(span, f.Op.Symbol(), TermToTheoryTerm(f.Steps.Unwrap()), FormulaToTheoryTerm(f.Arg))
		}
		//
		return operator(span, f.Op.Symbol(), FormulaToTheoryTerm(f.Arg))
	case *ast.Binary:
		return operator(span, f.Op.Symbol(), FormulaToTheoryTerm(f.Lhs), FormulaToTheoryTerm(f.Rhs))
	}
	//
	panic("unreachable")
}

func operator(span source.Span, name string, args ...theory.Term) theory.Term {
	return &theory.Function{Location: span, Name: name, Args: args}
}

// TheoryTermToTheoryAtom wraps a theory term as the sole element of a "tel"
// theory atom, such as "&tel { >(a) :  }".
func TheoryTermToTheoryAtom(term theory.Term) *theory.Atom {
	return NewTheoryAtom(DEFAULT_THEORY, term)
}

// NewTheoryAtom wraps one or more theory terms as the (sole) element of a theory
// atom with a given name, an empty condition and no guard.
func NewTheoryAtom(name string, terms ...theory.Term) *theory.Atom {
	return theory.NewAtom(name, terms...)
}
