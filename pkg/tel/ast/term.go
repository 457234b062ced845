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
	"strconv"
	"strings"
)

// Term represents a symbolic term, as found in the arguments of an atom or as
// the step count of a temporal operator.  Unlike theory terms, symbolic terms
// distinguish arithmetic from other function applications and are printed in
// the usual infix notation (e.g. "-2" or "(X+1)").
type Term interface {
	// String returns the canonical textual form of this term.
	String() string
	// seal the interface.
	isTerm()
}

// Number represents an integer constant.
type Number struct{ Value int }

// Symbol represents a constant identifier, such as "a" or "__t".
type Symbol struct{ Name string }

// String represents a string constant.  The value is held unquoted.
type String struct{ Value string }

// Variable represents a (logic) variable, such as "X" or "__S".
type Variable struct{ Name string }

// Negative represents arithmetic (or classical) negation of a term, as in "-x".
type Negative struct{ Arg Term }

// Arithmetic represents a binary arithmetic operation, such as "(X+1)".
type Arithmetic struct {
	Op  ArithmeticOp
	Lhs Term
	Rhs Term
}

// Function represents a compound term with at least one argument, such as
// "p(a,X)".
type Function struct {
	Name string
	Args []Term
}

// Tuple represents a parenthesised sequence of zero or more terms.
type Tuple struct{ Args []Term }

// ArithmeticOp identifies one of the binary arithmetic operators.
type ArithmeticOp uint8

const (
	// ADD represents integer addition
	ADD ArithmeticOp = iota
	// SUB represents integer subtraction
	SUB
	// MUL represents integer multiplication
	MUL
	// DIV represents integer division
	DIV
	// MOD represents integer modulus
	MOD
)

var arithmeticSymbols = []string{"+", "-", "*", "/", "\\"}

// Symbol returns the operator symbol for this arithmetic operation.
func (op ArithmeticOp) Symbol() string {
	return arithmeticSymbols[op]
}

// ArithmeticOpFor looks up the arithmetic operation with the given symbol.
func ArithmeticOpFor(symbol string) (ArithmeticOp, bool) {
	for i, s := range arithmeticSymbols {
		if s == symbol {
			return ArithmeticOp(i), true
		}
	}
	//
	return 0, false
}

func (t *Number) String() string { return strconv.Itoa(t.Value) }

func (t *Symbol) String() string { return t.Name }

func (t *String) String() string { return strconv.Quote(t.Value) }

func (t *Variable) String() string { return t.Name }

func (t *Negative) String() string { return "-" + t.Arg.String() }

func (t *Arithmetic) String() string {
	return "(" + t.Lhs.String() + t.Op.Symbol() + t.Rhs.String() + ")"
}

func (t *Function) String() string {
	return t.Name + "(" + joinTerms(t.Args) + ")"
}

func (t *Tuple) String() string {
	if len(t.Args) == 1 {
		return "(" + t.Args[0].String() + ",)"
	}
	//
	return "(" + joinTerms(t.Args) + ")"
}

func (t *Number) isTerm()     {}
func (t *Symbol) isTerm()     {}
func (t *String) isTerm()     {}
func (t *Variable) isTerm()   {}
func (t *Negative) isTerm()   {}
func (t *Arithmetic) isTerm() {}
func (t *Function) isTerm()   {}
func (t *Tuple) isTerm()      {}

// IsArithmetic checks whether a given term is built only from numbers and
// variables using arithmetic operations.  Such terms can be evaluated once
// their variables are bound, and are therefore valid step counts.
func IsArithmetic(term Term) bool {
	switch t := term.(type) {
	case *Number, *Variable:
		return true
	case *Negative:
		return IsArithmetic(t.Arg)
	case *Arithmetic:
		return IsArithmetic(t.Lhs) && IsArithmetic(t.Rhs)
	default:
		return false
	}
}

func joinTerms[T interface{ String() string }](terms []T) string {
	var builder strings.Builder
	//
	for i, t := range terms {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(t.String())
	}
	//
	return builder.String()
}
