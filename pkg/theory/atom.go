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
	"strings"

	"github.com/consensys/go-telingo/pkg/util/source"
)

// Atom represents a theory atom of the form "&name { elements } guard".  Each
// element pairs a tuple of terms with a (possibly empty) condition.
type Atom struct {
	Location source.Span
	// Name of this atom, such as "tel".
	Name Term
	// Elements of this atom.
	Elements []Element
	// Optional guard, such as ">= 2".  This is nil when no guard is given.
	Guard *Guard
}

// NewAtom constructs a theory atom with a single element holding the given
// terms, with an empty condition and no guard.
func NewAtom(name string, terms ...Term) *Atom {
	var span source.Span
	//
	return &Atom{span, &Symbol{span, name}, []Element{{Tuple: terms}}, nil}
}

// Span returns the region of the original text covered by this atom.
func (a *Atom) Span() source.Span { return a.Location }

// HasName checks whether this atom has a given (identifier) name.
func (a *Atom) HasName(name string) bool {
	if sym, ok := a.Name.(*Symbol); ok {
		return sym.Name == name
	}
	//
	return false
}

func (a *Atom) String() string {
	var builder strings.Builder
	//
	builder.WriteString("&")
	builder.WriteString(a.Name.String())
	builder.WriteString(" { ")
	//
	for i, e := range a.Elements {
		if i != 0 {
			builder.WriteString("; ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	builder.WriteString(" }")
	//
	if a.Guard != nil {
		builder.WriteString(" ")
		builder.WriteString(a.Guard.String())
	}
	//
	return builder.String()
}

// Element represents a single element of a theory atom.
type Element struct {
	// Terms making up this element.
	Tuple []Term
	// Condition under which this element is included.
	Condition []Term
}

func (e Element) String() string {
	return joinTerms(e.Tuple) + " : " + joinTerms(e.Condition)
}

// Guard represents the comparison attached to a theory atom, such as "= 1".
type Guard struct {
	Operator string
	Term     Term
}

func (g *Guard) String() string {
	return g.Operator + " " + g.Term.String()
}
