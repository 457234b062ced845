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
package lex

import (
	"slices"

	"github.com/consensys/go-telingo/pkg/util/source"
)

// Token associates a kind with a given range of characters in the input being
// tokenised.
type Token struct {
	Kind uint
	Span source.Span
}

// Text returns the characters of the input covered by this token.
func (t Token) Text(input []rune) string {
	return string(input[t.Span.Start():min(len(input), t.Span.End())])
}

// LexRule associates the items matched by a scanner with a token kind.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching items to a given kind.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer tokenises an input sequence.  At each position every rule is tried and
// the longest match wins, with ties going to the rule given first.  Tokens
// whose kind has been marked as skipped are consumed but never reported.
type Lexer[T any] struct {
	items   []T
	index   int
	rules   []LexRule[T]
	skipped []uint
	next    *Token
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{items: input, rules: rules}
}

// Skip marks zero or more token kinds as insignificant (e.g. whitespace or
// comments), and returns the lexer.
func (p *Lexer[T]) Skip(kinds ...uint) *Lexer[T] {
	p.skipped = append(p.skipped, kinds...)
	return p
}

// Index returns the current position within the input.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining determines how many items of the input were not consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext checks whether or not another token can be produced.
func (p *Lexer[T]) HasNext() bool {
	for p.next == nil {
		token, ok := p.match()
		if !ok {
			return false
		}
		//
		p.advance(token)
		//
		if !slices.Contains(p.skipped, token.Kind) {
			p.next = &token
		}
	}
	//
	return true
}

// Next returns the next token and advances the lexer.  This should only be
// called after HasNext has returned true.
func (p *Lexer[T]) Next() Token {
	if !p.HasNext() {
		panic("no more tokens")
	}
	//
	next := *p.next
	p.next = nil
	//
	return next
}

// Collect lexes all remaining tokens in one go.  Lexing stops at the first
// position no rule matches, which is then reflected by Remaining().
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

// Find the longest match for any rule at the current position.  The end of
// file is matched exactly once, at which point the position moves past the
// input.
func (p *Lexer[T]) match() (Token, bool) {
	var (
		best    uint
		tag     uint
		matched bool
	)
	//
	if p.index > len(p.items) {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > best {
			best, tag, matched = n, r.tag, true
		}
	}
	//
	if !matched {
		return Token{}, false
	}
	//
	end := min(len(p.items), p.index+int(best))
	//
	return Token{tag, source.NewSpan(p.index, end)}, true
}

func (p *Lexer[T]) advance(token Token) {
	if p.index == len(p.items) {
		// EOF
		p.index++
	} else {
		p.index = token.Span.End()
	}
}
