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
	"testing"

	"github.com/consensys/go-telingo/pkg/util"
)

func Test_Formula_String_01(t *testing.T) {
	checkFormula(t, "a", atom("a"))
}

func Test_Formula_String_02(t *testing.T) {
	checkFormula(t, "-a", atom("a").Negate())
}

func Test_Formula_String_03(t *testing.T) {
	checkFormula(t, "a", atom("a").Negate().Negate())
}

func Test_Formula_String_04(t *testing.T) {
	checkFormula(t, "a(X,-x)", atom("a", variable("X"), &Negative{symbol("x")}))
}

func Test_Formula_String_05(t *testing.T) {
	checkFormula(t, "(>a)", unary(NEXT, nil, atom("a")))
}

func Test_Formula_String_06(t *testing.T) {
	checkFormula(t, "(-2>a)", unary(NEXT, &Number{-2}, atom("a")))
}

func Test_Formula_String_07(t *testing.T) {
	checkFormula(t, "(2>:a)", unary(WEAK_NEXT, &Number{2}, atom("a")))
}

func Test_Formula_String_08(t *testing.T) {
	checkFormula(t, "(a>?b)", &Binary{Op: UNTIL, Lhs: atom("a"), Rhs: atom("b")})
}

func Test_Formula_String_09(t *testing.T) {
	checkFormula(t, "(a>*b)", &Binary{Op: RELEASE, Lhs: atom("a"), Rhs: atom("b")})
}

func Test_Formula_String_10(t *testing.T) {
	checkFormula(t, "(~(~a))", &Negation{Arg: &Negation{Arg: atom("a")}})
}

func Test_Formula_String_11(t *testing.T) {
	checkFormula(t, "(a&(>b))", and(atom("a"), unary(NEXT, nil, atom("b"))))
}

func Test_Formula_String_12(t *testing.T) {
	checkFormula(t, "&true", &Boolean{Value: true})
	checkFormula(t, "&false", &Boolean{Value: false})
	checkFormula(t, "__final", &Final{})
}

func Test_Formula_String_13(t *testing.T) {
	checkFormula(t, "(>*(__final|a))",
		unary(ALWAYS, nil, &Connective{Op: OR, Args: []Formula{&Final{}, atom("a")}}))
}

func Test_Formula_String_14(t *testing.T) {
	o := &Arithmetic{ADD, &Arithmetic{SUB, &Number{1}, symbol("__t")}, variable("__S")}
	//
	checkFormula(t, "(((1-__t)+__S)>=0)", &Comparison{Op: GEQ, Lhs: o, Rhs: &Number{0}})
	checkFormula(t, "(a&b&c)", and(atom("a"), atom("b"), atom("c")))
}

func Test_Formula_IsTemporal(t *testing.T) {
	if IsTemporal(and(atom("a"), &Negation{Arg: atom("b")})) {
		t.Errorf("unexpected temporal formula")
	}
	//
	if !IsTemporal(and(atom("a"), &Negation{Arg: unary(EVENTUALLY, nil, atom("b"))})) {
		t.Errorf("expected temporal formula")
	}
}

func Test_Variables_01(t *testing.T) {
	f := &Connective{Op: OR, Args: []Formula{
		atom("p", variable("X"), variable("Y")),
		atom("a", variable("X"), variable("Z")),
	}}
	//
	checkVariables(t, f, "X", "Y", "Z")
}

func Test_Variables_02(t *testing.T) {
	checkVariables(t, atom("a"))
}

func Test_Variables_03(t *testing.T) {
	// step counts come first
	f := unary(EVENTUALLY, variable("N"), atom("p", variable("_"), variable("X"), variable("N")))
	//
	checkVariables(t, f, "N", "X")
}

func Test_Variables_04(t *testing.T) {
	f := and(
		&Comparison{Op: LT, Lhs: variable("K"), Rhs: &Arithmetic{ADD, variable("M"), &Number{1}}},
		atom("q", &Tuple{[]Term{variable("A"), &Function{"f", []Term{variable("K")}}}}),
	)
	//
	checkVariables(t, f, "K", "M", "A")
}

func Test_IsArithmetic(t *testing.T) {
	if !IsArithmetic(&Negative{&Arithmetic{MUL, variable("X"), &Number{2}}}) {
		t.Errorf("expected arithmetic term")
	}
	//
	if IsArithmetic(symbol("x")) || IsArithmetic(&Function{"f", []Term{&Number{1}}}) {
		t.Errorf("unexpected arithmetic term")
	}
}

func Test_ArithmeticOpFor(t *testing.T) {
	for _, s := range []string{"+", "-", "*", "/", "\\"} {
		if op, ok := ArithmeticOpFor(s); !ok || op.Symbol() != s {
			t.Errorf("missing arithmetic operator \"%s\"", s)
		}
	}
	//
	if _, ok := ArithmeticOpFor("**"); ok {
		t.Errorf("unexpected arithmetic operator \"**\"")
	}
}

// ==================================================================
// Framework
// ==================================================================

func checkFormula(t *testing.T, expected string, formula Formula) {
	if formula.String() != expected {
		t.Errorf("got \"%s\", expected \"%s\"", formula.String(), expected)
	}
}

func checkVariables(t *testing.T, formula Formula, expected ...string) {
	var names []string
	//
	for _, v := range Variables(formula) {
		names = append(names, v.Name)
	}
	//
	if strings.Join(names, ",") != strings.Join(expected, ",") {
		t.Errorf("got variables %v, expected %v", names, expected)
	}
}

func atom(name string, args ...Term) *TelAtom {
	return &TelAtom{Positive: true, Name: name, Arguments: args}
}

func symbol(name string) *Symbol { return &Symbol{name} }

func variable(name string) *Variable { return &Variable{name} }

func and(args ...Formula) *Connective {
	return &Connective{Op: AND, Args: args}
}

func unary(op UnaryOp, steps Term, arg Formula) *Unary {
	if steps == nil {
		return &Unary{Op: op, Steps: util.None[Term](), Arg: arg}
	}
	//
	return &Unary{Op: op, Steps: util.Some(steps), Arg: arg}
}
