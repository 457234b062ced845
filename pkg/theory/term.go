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
package theory

import (
	"strconv"
	"strings"

	"github.com/consensys/go-telingo/pkg/util/source"
)

// Term represents a theory term, as produced by the host parser for the
// embedded language of a theory atom.  Theory terms are untyped: operator
// applications such as "a & b" are simply functions whose name is the operator.
// The set of term kinds is closed; every implementation lives in this file.
type Term interface {
	// Span returns the region of the original text from which this term was
	// parsed.  Terms constructed programmatically have an empty span.
	Span() source.Span
	// String returns the canonical textual form of this term.
	String() string
	// seal the interface.
	isTheoryTerm()
}

// ============================================================================
// Number
// ============================================================================

// Number represents an integer constant.
type Number struct {
	Location source.Span
	Value    int
}

var _ Term = (*Number)(nil)

// Span returns the region of the original text covered by this term.
func (t *Number) Span() source.Span { return t.Location }

func (t *Number) String() string {
	if t.Value < 0 {
		return "-(" + strconv.Itoa(-t.Value) + ")"
	}
	//
	return strconv.Itoa(t.Value)
}

func (t *Number) isTheoryTerm() {}

// ============================================================================
// Symbol
// ============================================================================

// Symbol represents a constant identifier, such as "a" or "true".
type Symbol struct {
	Location source.Span
	Name     string
}

var _ Term = (*Symbol)(nil)

// Span returns the region of the original text covered by this term.
func (t *Symbol) Span() source.Span { return t.Location }

func (t *Symbol) String() string { return t.Name }

func (t *Symbol) isTheoryTerm() {}

// ============================================================================
// String
// ============================================================================

// String represents a quoted string constant.  The value is held unquoted.
type String struct {
	Location source.Span
	Value    string
}

var _ Term = (*String)(nil)

// Span returns the region of the original text covered by this term.
func (t *String) Span() source.Span { return t.Location }

func (t *String) String() string { return strconv.Quote(t.Value) }

func (t *String) isTheoryTerm() {}

// ============================================================================
// Variable
// ============================================================================

// Variable represents a (logic) variable, such as "X" or "_".
type Variable struct {
	Location source.Span
	Name     string
}

var _ Term = (*Variable)(nil)

// Span returns the region of the original text covered by this term.
func (t *Variable) Span() source.Span { return t.Location }

func (t *Variable) String() string { return t.Name }

// IsAnonymous checks whether this is the anonymous variable "_".
func (t *Variable) IsAnonymous() bool { return t.Name == "_" }

func (t *Variable) isTheoryTerm() {}

// ============================================================================
// Function
// ============================================================================

// Function represents the application of a name to one or more arguments.  The
// name is either an identifier (e.g. "p(X)") or an operator (e.g. "&(a,b)").
type Function struct {
	Location source.Span
	Name     string
	Args     []Term
}

var _ Term = (*Function)(nil)

// Span returns the region of the original text covered by this term.
func (t *Function) Span() source.Span { return t.Location }

// IsOperator checks whether this function is an operator application (e.g.
// "a & b") rather than a regular compound term (e.g. "p(a,b)").
func (t *Function) IsOperator() bool { return IsOperatorName(t.Name) }

// Matches checks whether this function applies a given name to a given number
// of arguments.
func (t *Function) Matches(name string, arity int) bool {
	return t.Name == name && len(t.Args) == arity
}

func (t *Function) String() string {
	return t.Name + "(" + joinTerms(t.Args) + ")"
}

func (t *Function) isTheoryTerm() {}

// ============================================================================
// Tuple
// ============================================================================

// Tuple represents a parenthesised sequence of zero or more terms.
type Tuple struct {
	Location source.Span
	Args     []Term
}

var _ Term = (*Tuple)(nil)

// Span returns the region of the original text covered by this term.
func (t *Tuple) Span() source.Span { return t.Location }

func (t *Tuple) String() string {
	if len(t.Args) == 1 {
		return "(" + t.Args[0].String() + ",)"
	}
	//
	return "(" + joinTerms(t.Args) + ")"
}

func (t *Tuple) isTheoryTerm() {}

// ============================================================================
// Helpers
// ============================================================================

// IsOperatorName checks whether a given name is made up of operator characters
// (e.g. "&" or ">?") rather than being an identifier.
func IsOperatorName(name string) bool {
	return name != "" && strings.ContainsRune(OPERATOR_CHARS, []rune(name)[0])
}

func joinTerms(terms []Term) string {
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
