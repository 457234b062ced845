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
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/consensys/go-telingo/pkg/util/source"
	"github.com/consensys/go-telingo/pkg/util/source/lex"
)

// GUARDS captures the comparison operators permitted in the guard of a theory
// atom.
var GUARDS = []string{"=", "!=", "<", "<=", ">", ">="}

// SEPARATORS captures the operator tokens which terminate a theory term,
// rather than continuing it.
var SEPARATORS = []string{":", ";", "."}

// ParseString parses theory atoms from a given string using the operator table
// of the temporal theory.  This is mostly useful for testing.
func ParseString(input string) ([]*Atom, []source.SyntaxError) {
	return Parse(source.NewSourceFile("<input>", []byte(input)), TelOperators)
}

// Parse all theory atoms (e.g. "&tel{ >a }") occurring in a given source file.
// Everything else in the file (i.e. ordinary rules and directives) is skipped.
// Theory terms are parsed according to the given operator table.  When a theory
// atom cannot be parsed, parsing resumes after the end of the enclosing
// statement so that as many errors as possible are reported.
func Parse(srcfile *source.File, table *OperatorTable) ([]*Atom, []source.SyntaxError) {
	var (
		atoms  []*Atom
		errors []source.SyntaxError
		lexer  = lex.NewLexer[rune](srcfile.Contents(), rules...).Skip(WHITESPACE, COMMENT)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")

		return nil, []source.SyntaxError{*err}
	}
	//
	parser := &Parser{srcfile, table, tokens, 0}
	//
	for !parser.follows(END_OF) {
		if !parser.followsAtom() {
			parser.index++
			continue
		}
		//
		atom, errs := parser.parseAtom()
		//
		if len(errs) == 0 {
			atoms = append(atoms, atom)
		} else {
			errors = append(errors, errs...)
			parser.skipStatement()
		}
	}
	//
	return atoms, errors
}

// Parser provides a parser for theory atoms and the theory terms they contain.
type Parser struct {
	srcfile *source.File
	table   *OperatorTable
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func (p *Parser) parseAtom() (*Atom, []source.SyntaxError) {
	var (
		start    = p.expect(OPERATOR)
		elements []Element
	)
	// NOTE: the ampersand can be glued onto preceding operator characters (e.g.
	// ":-&tel{}"), in which case only the last character belongs to this atom.
	from := start.Span.End() - 1
	name := p.expect(IDENTIFIER)
	p.expect(LCURLY)
	//
	if !p.follows(RCURLY) {
		for {
			element, errs := p.parseElement()
			if len(errs) != 0 {
				return nil, errs
			}
			//
			elements = append(elements, element)
			//
			if !p.matchOperator(";") {
				break
			}
		}
	}
	//
	end := p.lookahead()
	if !p.match(RCURLY) {
		return nil, p.syntaxErrors(end, "expected '}'")
	}
	//
	var (
		to    = end.Span.End()
		guard *Guard
	)
	// Check for optional guard
	if p.follows(OPERATOR) && slices.Contains(GUARDS, p.string(p.lookahead())) {
		op := p.string(p.expect(OPERATOR))
		//
		term, errs := p.parseTerm(0)
		if len(errs) != 0 {
			return nil, errs
		}
		//
		guard, to = &Guard{op, term}, term.Span().End()
	}
	//
	symbol := &Symbol{name.Span, p.string(name)}
	//
	return &Atom{source.NewSpan(from, to), symbol, elements, guard}, nil
}

func (p *Parser) parseElement() (Element, []source.SyntaxError) {
	var element Element
	//
	terms, errs := p.parseTerms()
	if len(errs) != 0 {
		return element, errs
	}
	//
	element.Tuple = terms
	//
	if p.matchOperator(":") && !p.follows(RCURLY) && !p.followsOperator(";") {
		element.Condition, errs = p.parseTerms()
	}
	//
	return element, errs
}

// Parse a comma-separated sequence of one or more terms.
func (p *Parser) parseTerms() ([]Term, []source.SyntaxError) {
	var terms []Term
	//
	for {
		term, errs := p.parseTerm(0)
		if len(errs) != 0 {
			return nil, errs
		}
		//
		terms = append(terms, term)
		//
		if !p.match(COMMA) {
			return terms, nil
		}
	}
}

// Parse a term whose binary operators all have at least a given priority.
func (p *Parser) parseTerm(priority uint) (Term, []source.SyntaxError) {
	lhs, errs := p.parseUnaryTerm()
	//
	for len(errs) == 0 && p.follows(OPERATOR) {
		var (
			token = p.lookahead()
			name  = p.string(token)
			rhs   Term
		)
		//
		op, ok := p.table.BinaryOperator(name)
		//
		if !ok && !slices.Contains(SEPARATORS, name) && !slices.Contains(GUARDS, name) {
			return nil, p.syntaxErrors(token, fmt.Sprintf("unknown binary operator \"%s\"", name))
		} else if !ok || op.Priority < priority {
			break
		}
		// Consume operator
		p.index++
		//
		if op.Associativity == LEFT {
			rhs, errs = p.parseTerm(op.Priority + 1)
		} else {
			rhs, errs = p.parseTerm(op.Priority)
		}
		//
		if len(errs) == 0 {
			lhs = &Function{lhs.Span().Join(rhs.Span()), name, []Term{lhs, rhs}}
		}
	}
	//
	return lhs, errs
}

func (p *Parser) parseUnaryTerm() (Term, []source.SyntaxError) {
	if !p.follows(OPERATOR) {
		return p.parsePrimaryTerm()
	}
	//
	token := p.expect(OPERATOR)
	name := p.string(token)
	//
	op, ok := p.table.UnaryOperator(name)
	if !ok {
		return nil, p.syntaxErrors(token, fmt.Sprintf("unknown unary operator \"%s\"", name))
	}
	//
	arg, errs := p.parseTerm(op.Priority)
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return &Function{token.Span.Join(arg.Span()), name, []Term{arg}}, nil
}

func (p *Parser) parsePrimaryTerm() (Term, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case NUMBER:
		return p.parseNumber()
	case VARIABLE:
		p.index++
		return &Variable{token.Span, p.string(token)}, nil
	case STRING:
		p.index++
		return &String{token.Span, unquote(p.string(token))}, nil
	case IDENTIFIER:
		return p.parseFunction()
	case LBRACE:
		return p.parseBracketedTerm()
	}
	//
	return nil, p.syntaxErrors(token, "expected term")
}

func (p *Parser) parseNumber() (Term, []source.SyntaxError) {
	token := p.expect(NUMBER)
	//
	value, err := strconv.Atoi(p.string(token))
	if err != nil {
		return nil, p.syntaxErrors(token, "invalid number")
	}
	//
	return &Number{token.Span, value}, nil
}

func (p *Parser) parseFunction() (Term, []source.SyntaxError) {
	token := p.expect(IDENTIFIER)
	name := p.string(token)
	// Check for arguments
	if !p.match(LBRACE) {
		return &Symbol{token.Span, name}, nil
	}
	//
	end := p.lookahead()
	if p.match(RBRACE) {
		return &Symbol{token.Span.Join(end.Span), name}, nil
	}
	//
	args, errs := p.parseTerms()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	end = p.lookahead()
	if !p.match(RBRACE) {
		return nil, p.syntaxErrors(end, "expected ')'")
	}
	//
	return &Function{token.Span.Join(end.Span), name, args}, nil
}

// Parse either a tuple, such as "(a,b)" or "(a,)", or a bracketed term, such
// as "(a)".
func (p *Parser) parseBracketedTerm() (Term, []source.SyntaxError) {
	var (
		start = p.expect(LBRACE)
		args  []Term
		tuple = false
	)
	//
	for !p.follows(RBRACE) {
		arg, errs := p.parseTerm(0)
		if len(errs) != 0 {
			return nil, errs
		}
		//
		args = append(args, arg)
		//
		if !p.match(COMMA) {
			break
		}
		//
		tuple = true
	}
	//
	end := p.lookahead()
	if !p.match(RBRACE) {
		return nil, p.syntaxErrors(end, "expected ')'")
	} else if len(args) == 1 && !tuple {
		return args[0], nil
	}
	//
	return &Tuple{start.Span.Join(end.Span), args}, nil
}

// Skip over the remainder of the current statement, which is terminated by a
// "." operator.
func (p *Parser) skipStatement() {
	for !p.follows(END_OF) {
		token := p.tokens[p.index]
		p.index++
		//
		if token.Kind == OPERATOR && strings.HasSuffix(p.string(token), ".") {
			return
		}
	}
}

// Check whether the next tokens begin a theory atom, that is "&" followed by an
// identifier and an opening curly brace.
func (p *Parser) followsAtom() bool {
	if p.index+2 >= len(p.tokens) {
		return false
	}
	//
	amp, name, curly := p.tokens[p.index], p.tokens[p.index+1], p.tokens[p.index+2]
	//
	return amp.Kind == OPERATOR && strings.HasSuffix(p.string(amp), "&") &&
		name.Kind == IDENTIFIER && curly.Kind == LCURLY
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// FollowsOperator checks whether a given operator is next.
func (p *Parser) followsOperator(op string) bool {
	return p.follows(OPERATOR) && p.string(p.lookahead()) == op
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) matchOperator(op string) bool {
	if p.followsOperator(op) {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}

func unquote(text string) string {
	if s, err := strconv.Unquote(text); err == nil {
		return s
	}
	// Fall back on the raw contents
	return text[1 : len(text)-1]
}
