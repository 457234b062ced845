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

// OPERATOR_CHARS identifies the characters from which operators are formed.
// Operators are always lexed greedily, hence ">?" is a single operator whilst
// "> ?" is two.
const OPERATOR_CHARS = "/!<=>+-*\\?&@|:;~^."

// Associativity determines how a sequence of binary operators of the same
// priority is grouped.
type Associativity uint8

const (
	// LEFT associativity groups "a op b op c" as "(a op b) op c".
	LEFT Associativity = iota
	// RIGHT associativity groups "a op b op c" as "a op (b op c)".
	RIGHT
)

// Operator describes a single entry of a theory's operator table.
type Operator struct {
	Priority      uint
	Associativity Associativity
}

// OperatorTable defines the unary and binary operators permitted in theory terms
// of a given theory, along with their priorities.
type OperatorTable struct {
	unary  map[string]Operator
	binary map[string]Operator
}

// NewOperatorTable constructs an initially empty operator table.
func NewOperatorTable() *OperatorTable {
	return &OperatorTable{make(map[string]Operator), make(map[string]Operator)}
}

// Unary registers a prefix operator with a given priority.
func (p *OperatorTable) Unary(priority uint, names ...string) *OperatorTable {
	for _, n := range names {
		p.unary[n] = Operator{priority, RIGHT}
	}
	//
	return p
}

// Binary registers an infix operator with a given priority and associativity.
func (p *OperatorTable) Binary(priority uint, assoc Associativity, names ...string) *OperatorTable {
	for _, n := range names {
		p.binary[n] = Operator{priority, assoc}
	}
	//
	return p
}

// UnaryOperator looks up a given prefix operator.
func (p *OperatorTable) UnaryOperator(name string) (Operator, bool) {
	op, ok := p.unary[name]
	return op, ok
}

// BinaryOperator looks up a given infix operator.
func (p *OperatorTable) BinaryOperator(name string) (Operator, bool) {
	op, ok := p.binary[name]
	return op, ok
}

// TelOperators is the operator table for formulas occurring in the head of a
// rule under the temporal theory.
var TelOperators = NewOperatorTable().
	Unary(7, "&", "-").
	Binary(6, LEFT, "+", "-").
	Unary(5, "~", ">", ">:", ">?", ">*", ">>").
	Binary(5, RIGHT, ">", ">:").
	Binary(4, LEFT, ">?", ">*").
	Binary(3, LEFT, "&").
	Binary(2, LEFT, "|").
	Binary(0, RIGHT, ";>", ";>:")
