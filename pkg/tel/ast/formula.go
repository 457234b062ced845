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

import (
	"strings"

	"github.com/consensys/go-telingo/pkg/util"
	"github.com/consensys/go-telingo/pkg/util/source"
)

// FINAL_ATOM is the reserved name of the 0-ary atom which holds exactly in the
// last step of a trace.  User atoms with this name are rejected on
// translation, so it never clashes with a user predicate.
const FINAL_ATOM = "__final"

// Formula represents a temporal formula.  Formulas are immutable trees: every
// transformation constructs new nodes rather than updating existing ones, so
// subtrees can be shared freely.  The set of node kinds is closed and every
// implementation lives in this file; transformations dispatch over them with a
// type switch.
type Formula interface {
	// Span returns the region of the original text from which this formula was
	// translated.
	Span() source.Span
	// String returns the fully parenthesised textual form of this formula.
	String() string
	// seal the interface.
	isFormula()
}

// ============================================================================
// Atoms
// ============================================================================

// TelAtom represents a (possibly classically negated) atom, such as "p(X)" or
// "-q".
type TelAtom struct {
	Location  source.Span
	Positive  bool
	Name      string
	Arguments []Term
}

// NewAtom constructs a positive atom with the given name and arguments.
func NewAtom(location source.Span, name string, args ...Term) *TelAtom {
	return &TelAtom{location, true, name, args}
}

// Span returns the region of the original text covered by this atom.
func (f *TelAtom) Span() source.Span { return f.Location }

// Negate returns this atom with its sign flipped.  Hence, negating twice gives
// back the original atom.
func (f *TelAtom) Negate() *TelAtom {
	return &TelAtom{f.Location, !f.Positive, f.Name, f.Arguments}
}

// IsFinal checks whether this is the reserved atom marking the final step.
func (f *TelAtom) IsFinal() bool {
	return f.Name == FINAL_ATOM && len(f.Arguments) == 0
}

func (f *TelAtom) String() string {
	var builder strings.Builder
	//
	if !f.Positive {
		builder.WriteString("-")
	}
	//
	builder.WriteString(f.Name)
	//
	if len(f.Arguments) > 0 {
		builder.WriteString("(")
		builder.WriteString(joinTerms(f.Arguments))
		builder.WriteString(")")
	}
	//
	return builder.String()
}

// ============================================================================
// Constants
// ============================================================================

// Boolean represents one of the constants "&true" or "&false".
type Boolean struct {
	Location source.Span
	Value    bool
}

// Span returns the region of the original text covered by this formula.
func (f *Boolean) Span() source.Span { return f.Location }

func (f *Boolean) String() string {
	if f.Value {
		return "&true"
	}
	//
	return "&false"
}

// Final represents the constant "&final", which holds only in the last step.
type Final struct {
	Location source.Span
}

// Span returns the region of the original text covered by this formula.
func (f *Final) Span() source.Span { return f.Location }

func (f *Final) String() string { return FINAL_ATOM }

// ============================================================================
// Comparisons
// ============================================================================

// Comparison represents a comparison between two terms, such as "(X<=3)".
// These do not occur in formulas written by the user; instead, they arise from
// shifting temporal operators.
type Comparison struct {
	Location source.Span
	Op       ComparisonOp
	Lhs      Term
	Rhs      Term
}

// ComparisonOp identifies one of the comparison operators.
type ComparisonOp uint8

const (
	// EQ represents "="
	EQ ComparisonOp = iota
	// NEQ represents "!="
	NEQ
	// LT represents "<"
	LT
	// LEQ represents "<="
	LEQ
	// GT represents ">"
	GT
	// GEQ represents ">="
	GEQ
)

var comparisonSymbols = []string{"=", "!=", "<", "<=", ">", ">="}

// Symbol returns the operator symbol of this comparison.
func (op ComparisonOp) Symbol() string {
	return comparisonSymbols[op]
}

// Span returns the region of the original text covered by this formula.
func (f *Comparison) Span() source.Span { return f.Location }

func (f *Comparison) String() string {
	return "(" + f.Lhs.String() + f.Op.Symbol() + f.Rhs.String() + ")"
}

// ============================================================================
// Connectives
// ============================================================================

// Negation represents default negation, as in "~a".
type Negation struct {
	Location source.Span
	Arg      Formula
}

// Span returns the region of the original text covered by this formula.
func (f *Negation) Span() source.Span { return f.Location }

func (f *Negation) String() string { return "(~" + f.Arg.String() + ")" }

// Connective represents a conjunction or disjunction of two or more formulas.
// Formulas written by the user always have exactly two operands, but shifting
// can produce more.
type Connective struct {
	Location source.Span
	Op       ConnectiveOp
	Args     []Formula
}

// ConnectiveOp identifies one of the logical connectives.
type ConnectiveOp uint8

const (
	// AND represents conjunction "&"
	AND ConnectiveOp = iota
	// OR represents disjunction "|"
	OR
)

// Symbol returns the operator symbol of this connective.
func (op ConnectiveOp) Symbol() string {
	if op == AND {
		return "&"
	}
	//
	return "|"
}

// Span returns the region of the original text covered by this formula.
func (f *Connective) Span() source.Span { return f.Location }

func (f *Connective) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, arg := range f.Args {
		if i != 0 {
			builder.WriteString(f.Op.Symbol())
		}
		//
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ============================================================================
// Temporal Operators
// ============================================================================

// Unary represents a unary temporal operator, such as "(>a)" or "(2>?a)".  The
// step count is optional: when absent, next operators refer to the following
// step whilst eventually and always range over all future steps.
type Unary struct {
	Location source.Span
	Op       UnaryOp
	Steps    util.Option[Term]
	Arg      Formula
}

// UnaryOp identifies one of the unary temporal operators.
type UnaryOp uint8

const (
	// NEXT represents (strong) next ">"
	NEXT UnaryOp = iota
	// WEAK_NEXT represents weak next ">:"
	WEAK_NEXT
	// EVENTUALLY represents eventually ">?"
	EVENTUALLY
	// ALWAYS represents always ">*"
	ALWAYS
)

var unarySymbols = []string{">", ">:", ">?", ">*"}

// Symbol returns the operator symbol of this temporal operator.
func (op UnaryOp) Symbol() string {
	return unarySymbols[op]
}

// Span returns the region of the original text covered by this formula.
func (f *Unary) Span() source.Span { return f.Location }

func (f *Unary) String() string {
	steps := ""
	//
	if f.Steps.HasValue() {
		steps = f.Steps.Unwrap().String()
	}
	//
	return "(" + steps + f.Op.Symbol() + f.Arg.String() + ")"
}

// Binary represents a binary temporal operator, such as "(a>?b)".
type Binary struct {
	Location source.Span
	Op       BinaryOp
	Lhs      Formula
	Rhs      Formula
}

// BinaryOp identifies one of the binary temporal operators.
type BinaryOp uint8

const (
	// UNTIL represents until ">?"
	UNTIL BinaryOp = iota
	// RELEASE represents release ">*"
	RELEASE
)

// Symbol returns the operator symbol of this temporal operator.
func (op BinaryOp) Symbol() string {
	if op == UNTIL {
		return ">?"
	}
	//
	return ">*"
}

// Span returns the region of the original text covered by this formula.
func (f *Binary) Span() source.Span { return f.Location }

func (f *Binary) String() string {
	return "(" + f.Lhs.String() + f.Op.Symbol() + f.Rhs.String() + ")"
}

func (f *TelAtom) isFormula()    {}
func (f *Boolean) isFormula()    {}
func (f *Final) isFormula()      {}
func (f *Comparison) isFormula() {}
func (f *Negation) isFormula()   {}
func (f *Connective) isFormula() {}
func (f *Unary) isFormula()      {}
func (f *Binary) isFormula()     {}

// IsTemporal checks whether a given formula contains any temporal operator.
func IsTemporal(formula Formula) bool {
	switch f := formula.(type) {
	case *TelAtom, *Boolean, *Final, *Comparison:
		return false
	case *Negation:
		return IsTemporal(f.Arg)
	case *Connective:
		return util.ContainsMatching(f.Args, IsTemporal)
	case *Unary, *Binary:
		return true
	}
	//
	panic("unreachable")
}
