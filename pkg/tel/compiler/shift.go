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
	"github.com/consensys/go-telingo/pkg/util"
	"github.com/consensys/go-telingo/pkg/util/source"
)

// Markers identifies the reserved names used by shifted formulas.  A shifted
// formula is evaluated at every step of a trace, where the time marker refers
// to the current step and the start marker to the step at which the original
// formula is anchored.
type Markers struct {
	// Symbol denoting the current step (e.g. "__t").
	Time string
	// Variable denoting the step at which a formula is anchored (e.g. "__S").
	Start string
	// Variable used to count down the steps remaining for a bounded eventually
	// operator (e.g. "__K").
	Countdown string
}

// DefaultMarkers returns the standard set of markers.
func DefaultMarkers() Markers {
	return Markers{"__t", "__S", "__K"}
}

// Definition pairs an auxiliary atom with the (shifted) formula it stands for.
type Definition struct {
	Head *ast.TelAtom
	Body ast.Formula
}

func (d Definition) String() string {
	return d.Head.String() + "<>" + d.Body.String()
}

// ShiftResult holds the outcome of shifting a formula.  Definitions are given in
// the order in which their auxiliary atoms were introduced, whilst Next holds
// the first auxiliary index not yet used.
type ShiftResult struct {
	Formula     ast.Formula
	Definitions []Definition
	Next        uint
}

// Shift a formula using the default markers.  See Shifter.Shift for details.
func Shift(formula ast.Formula, template *ast.TelAtom, next uint) (ShiftResult, error) {
	return NewShifter(DefaultMarkers()).Shift(formula, template, next)
}

// Shifter rewrites temporal formulas into a flat form which refers to time only
// through comparisons over the markers, along with definitions for any
// auxiliary atoms introduced along the way.  A Shifter holds no mutable state
// and, hence, can be shared freely.
type Shifter struct {
	markers Markers
}

// NewShifter constructs a new shifter for a given set of markers.
func NewShifter(markers Markers) *Shifter {
	return &Shifter{markers}
}

// Shift rewrites a given formula, introducing auxiliary atoms based on a given
// template as necessary.  Each auxiliary atom copies the sign, name and
// arguments of the template, followed by a unique index (starting from next),
// followed by the free variables of the subformula it stands for.  Shifting is
// deterministic: the result depends only on the formula, the template and the
// starting index.
func (p *Shifter) Shift(formula ast.Formula, template *ast.TelAtom, next uint) (ShiftResult, error) {
	state := shiftState{p.markers, template, next, nil}
	//
	shifted, err := state.shift(formula)
	if err != nil {
		return ShiftResult{}, err
	}
	//
	return ShiftResult{shifted, state.definitions, state.next}, nil
}

// Accumulates the definitions (and auxiliary indices) for a single call to
// Shift.
type shiftState struct {
	markers     Markers
	template    *ast.TelAtom
	next        uint
	definitions []Definition
}

func (p *shiftState) shift(formula ast.Formula) (ast.Formula, error) {
	switch f := formula.(type) {
	case *ast.TelAtom, *ast.Boolean, *ast.Comparison:
		return f, nil
	case *ast.Final:
		return finalAtom(f.Location), nil
	case *ast.Negation:
		arg, err := p.shift(f.Arg)
		if err != nil {
			return nil, err
		}
		//
		return &ast.Negation{Location: f.Location, Arg: arg}, nil
	case *ast.Connective:
		args := make([]ast.Formula, len(f.Args))
		//
		for i, arg := range f.Args {
			var err error
			//
			if args[i], err = p.shift(arg); err != nil {
				return nil, err
			}
		}
		//
		return &ast.Connective{Location: f.Location, Op: f.Op, Args: args}, nil
	case *ast.Unary:
		return p.shiftUnary(f)
	case *ast.Binary:
		return p.shiftBinary(f)
	}
	//
	panic("unreachable")
}

func (p *shiftState) shiftUnary(f *ast.Unary) (ast.Formula, error) {
	if f.Steps.HasValue() && !ast.IsArithmetic(f.Steps.Unwrap()) {
		return nil, newError(ErrUnsupportedTemporalOperand, f.Location,
			"step count \"%s\" is not arithmetic", f.Steps.Unwrap())
	}
	//
	switch f.Op {
	case ast.NEXT, ast.WEAK_NEXT:
		return p.shiftNext(f)
	case ast.ALWAYS:
		return p.shiftAlways(f)
	case ast.EVENTUALLY:
		return p.shiftEventually(f)
	}
	//
	panic("unreachable")
}

// Next "n>G" holds exactly at step n, giving "(o>=0)&(G|(o!=0))&(o<=0)".  Weak
// next drops the upper bound, since it is also satisfied when step n does not
// exist.
func (p *shiftState) shiftNext(f *ast.Unary) (ast.Formula, error) {
	arg, err := p.operand(f.Arg)
	if err != nil {
		return nil, err
	}
	//
	var (
		span   = f.Location
		offset = p.offset(f.Steps.UnwrapOr(&ast.Number{Value: 1}))
		lower  = compare(span, ast.GEQ, offset)
		guard  = or(span, arg, compare(span, ast.NEQ, offset))
	)
	//
	if f.Op == ast.WEAK_NEXT {
		return and(span, lower, guard), nil
	}
	//
	return and(span, lower, guard, compare(span, ast.LEQ, offset)), nil
}

// Always ">*G" holds from the start step onwards, whilst "n>*G" holds from the
// start step up to (and including) step n.
func (p *shiftState) shiftAlways(f *ast.Unary) (ast.Formula, error) {
	arg, err := p.operand(f.Arg)
	if err != nil {
		return nil, err
	}
	//
	var (
		span  = f.Location
		start = compare(span, ast.LEQ, p.offset(&ast.Number{Value: 0}))
	)
	//
	if f.Steps.IsEmpty() {
		return and(span, arg, start), nil
	}
	//
	end := compare(span, ast.GEQ, p.offset(f.Steps.Unwrap()))
	//
	return and(span, end, arg, start), nil
}

// Eventually ">?G" is defined recursively as "E <> G | (~__final & >E)".  For
// the bounded case "n>?G", the auxiliary atom carries a countdown variable K
// which must remain positive, giving "E(K) <> G | (K>0 & ~__final & >E(K-1))".
func (p *shiftState) shiftEventually(f *ast.Unary) (ast.Formula, error) {
	var (
		span  = f.Location
		vars  = ast.Variables(f.Arg)
		final = &ast.Negation{Location: span, Arg: &ast.Final{Location: span}}
	)
	//
	if f.Steps.IsEmpty() {
		head := p.fresh(span, vars)
		body := or(span, f.Arg, and(span, final, next(span, head)))
		//
		return head, p.define(head, body)
	}
	//
	var (
		countdown = &ast.Variable{Name: p.markers.Countdown}
		index     = p.reserve()
		head      = p.instance(span, index, countdown, vars)
		previous  = p.instance(span, index, &ast.Arithmetic{Op: ast.SUB, Lhs: countdown, Rhs: &ast.Number{Value: 1}}, vars)
		positive  = &ast.Comparison{Location: span, Op: ast.GT, Lhs: countdown, Rhs: &ast.Number{Value: 0}}
		body      = or(span, f.Arg, and(span, positive, final, next(span, previous)))
	)
	//
	return p.instance(span, index, f.Steps.Unwrap(), vars), p.define(head, body)
}

// Until "A>?B" is defined as "U <> B | (A & ~__final & >U)", whilst release
// "A>*B" is defined as "R <> B & (A | __final | >R)".
func (p *shiftState) shiftBinary(f *ast.Binary) (ast.Formula, error) {
	var (
		span  = f.Location
		head  = p.fresh(span, ast.Variables(f))
		final = &ast.Final{Location: span}
		body  ast.Formula
	)
	//
	switch f.Op {
	case ast.UNTIL:
		body = or(span, f.Rhs, and(span, f.Lhs, &ast.Negation{Location: span, Arg: final}, next(span, head)))
	case ast.RELEASE:
		body = and(span, f.Rhs, or(span, f.Lhs, final, next(span, head)))
	default:
		panic("unreachable")
	}
	//
	return head, p.define(head, body)
}

// Shift the operand of a temporal operator.  Atoms and constants are shifted in
// place, whilst anything else is replaced by a fresh auxiliary atom.
func (p *shiftState) operand(formula ast.Formula) (ast.Formula, error) {
	switch formula.(type) {
	case *ast.TelAtom, *ast.Boolean, *ast.Final:
		return p.shift(formula)
	}
	//
	head := p.fresh(formula.Span(), ast.Variables(formula))
	//
	return head, p.define(head, formula)
}

// Record a definition for a given head.  The definition is reserved before the
// body is shifted, so that definitions appear in the order their heads were
// introduced.
func (p *shiftState) define(head *ast.TelAtom, body ast.Formula) error {
	index := len(p.definitions)
	p.definitions = append(p.definitions, Definition{Head: head})
	//
	shifted, err := p.shift(body)
	if err != nil {
		return err
	}
	//
	p.definitions[index].Body = shifted
	//
	return nil
}

// Allocate a fresh auxiliary index.
func (p *shiftState) reserve() uint {
	index := p.next
	p.next++
	//
	return index
}

// Construct a fresh auxiliary atom over a given set of variables.
func (p *shiftState) fresh(span source.Span, vars []*ast.Variable) *ast.TelAtom {
	return p.instance(span, p.reserve(), nil, vars)
}

// Construct the auxiliary atom for a given index, optionally including a
// countdown term.
func (p *shiftState) instance(span source.Span, index uint, countdown ast.Term,
	vars []*ast.Variable) *ast.TelAtom {
	args := util.Append(p.template.Arguments, ast.Term(&ast.Number{Value: int(index)}))
	//
	if countdown != nil {
		args = append(args, countdown)
	}
	//
	args = util.AppendAll(args, util.Map(vars, func(v *ast.Variable) ast.Term { return v })...)
	//
	return &ast.TelAtom{Location: span, Positive: p.template.Positive, Name: p.template.Name, Arguments: args}
}

// Construct the offset "((n-__t)+__S)", which is zero exactly at step n
// (relative to the start step).
func (p *shiftState) offset(steps ast.Term) ast.Term {
	var (
		time  = &ast.Symbol{Name: p.markers.Time}
		start = &ast.Variable{Name: p.markers.Start}
	)
	//
	return &ast.Arithmetic{Op: ast.ADD, Lhs: &ast.Arithmetic{Op: ast.SUB, Lhs: steps, Rhs: time}, Rhs: start}
}

func finalAtom(span source.Span) *ast.TelAtom {
	return &ast.TelAtom{Location: span, Positive: true, Name: ast.FINAL_ATOM}
}

func compare(span source.Span, op ast.ComparisonOp, offset ast.Term) ast.Formula {
	return &ast.Comparison{Location: span, Op: op, Lhs: offset, Rhs: &ast.Number{Value: 0}}
}

func next(span source.Span, arg ast.Formula) ast.Formula {
	return &ast.Unary{Location: span, Op: ast.NEXT, Steps: util.None[ast.Term](), Arg: arg}
}

func and(span source.Span, args ...ast.Formula) ast.Formula {
	return &ast.Connective{Location: span, Op: ast.AND, Args: args}
}

func or(span source.Span, args ...ast.Formula) ast.Formula {
	return &ast.Connective{Location: span, Op: ast.OR, Args: args}
}
