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
	"unicode"

	"github.com/consensys/go-telingo/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals a line comment
const COMMENT uint = 2

// NUMBER signals an integer number
const NUMBER uint = 3

// IDENTIFIER signals a constant or function name
const IDENTIFIER uint = 4

// VARIABLE signals a variable name
const VARIABLE uint = 5

// STRING signals a quoted string
const STRING uint = 6

// LBRACE signals "left brace"
const LBRACE uint = 7

// RBRACE signals "right brace"
const RBRACE uint = 8

// LCURLY signals "left curly brace"
const LCURLY uint = 9

// RCURLY signals "right curly brace"
const RCURLY uint = 10

// COMMA signals a comma
const COMMA uint = 11

// OPERATOR signals a (greedily matched) sequence of operator characters
const OPERATOR uint = 12

// UNKNOWN signals any other character.  Such characters can appear in ordinary
// program text between theory atoms, which is skipped.
const UNKNOWN uint = 13

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.OneOf(' ', '\t', '\r', '\n'))

// Rule for describing comments
var comment lex.Scanner[rune] = lex.SequenceNullableLast(lex.Unit('%'), lex.Until('\n'))

// Rule for describing numbers
var number lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// Rule for describing operators
var operator lex.Scanner[rune] = lex.Many(lex.OneOf([]rune(OPERATOR_CHARS)...))

// Rule for describing identifiers, such as "a" or "__final".
var identifier lex.Scanner[rune] = lex.Word('_', unicode.IsLower, isWordRune)

// Rule for describing variables, such as "X", "_Y" or "_".
var variable lex.Scanner[rune] = lex.Or(lex.Word('_', unicode.IsUpper, isWordRune), lex.Unit('_'))

// Rule for describing any single character
var anything lex.Scanner[rune] = func(items []rune) uint { return uint(min(1, len(items))) }

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('{'), LCURLY),
	lex.Rule(lex.Unit('}'), RCURLY),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(comment, COMMENT),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(variable, VARIABLE),
	lex.Rule(lex.Quoted('"', '\\'), STRING),
	lex.Rule(operator, OPERATOR),
	lex.Rule(lex.Eof[rune](), END_OF),
	lex.Rule(anything, UNKNOWN),
}

// isWordRune accepts alphanumeric characters, underscores and primes.
func isWordRune(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsIdentifier checks whether a given name would be lexed as an identifier, and
// hence can be used as the name of a symbol or predicate.
func IsIdentifier(name string) bool {
	runes := []rune(name)
	return len(runes) != 0 && identifier(runes) == uint(len(runes))
}

// IsVariable checks whether a given name would be lexed as a (non-anonymous)
// variable.
func IsVariable(name string) bool {
	runes := []rune(name)
	return name != "_" && len(runes) != 0 && variable(runes) == uint(len(runes))
}
