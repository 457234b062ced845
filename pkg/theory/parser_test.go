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
	"testing"
)

func Test_Parse_01(t *testing.T) {
	checkParse(t, "&tel{ a }.", "&tel { a :  }")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "&tel{ >a }.", "&tel { >(a) :  }")
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "&tel{ a & b }.", "&tel { &(a,b) :  }")
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "&tel{ a ;> b }.", "&tel { ;>(a,b) :  }")
}

func Test_Parse_05(t *testing.T) {
	checkParse(t, "&tel{ 2>a }.", "&tel { >(2,a) :  }")
}

func Test_Parse_06(t *testing.T) {
	checkParse(t, "&tel{ -2>a }.", "&tel { >(-(2),a) :  }")
}

func Test_Parse_07(t *testing.T) {
	checkParse(t, "&tel{ (-2)>a }.", "&tel { >(-(2),a) :  }")
}

func Test_Parse_08(t *testing.T) {
	checkParse(t, "&tel{ ~ ~a }.", "&tel { ~(~(a)) :  }")
}

func Test_Parse_09(t *testing.T) {
	checkParse(t, "&tel{ >>a }.", "&tel { >>(a) :  }")
}

func Test_Parse_10(t *testing.T) {
	checkParse(t, "&tel{ &final }.", "&tel { &(final) :  }")
}

func Test_Parse_11(t *testing.T) {
	checkParse(t, "&tel{ a(X,-x) }.", "&tel { a(X,-(x)) :  }")
}

func Test_Parse_12(t *testing.T) {
	checkParse(t, "&tel{ ~a & b | c }.", "&tel { |(&(~(a),b),c) :  }")
}

func Test_Parse_13(t *testing.T) {
	// sequences group to the right
	checkParse(t, "&tel{ a ;> b ;>: c }.", "&tel { ;>(a,;>:(b,c)) :  }")
}

func Test_Parse_14(t *testing.T) {
	// until groups to the left
	checkParse(t, "&tel{ a >? b >? c }.", "&tel { >?(>?(a,b),c) :  }")
}

func Test_Parse_15(t *testing.T) {
	checkParse(t, "&tel{ a, (b,c), (d,), () : e }.", "&tel { a,(b,c),(d,),() : e }")
}

func Test_Parse_16(t *testing.T) {
	checkParse(t, "&tel{ a; b : c, d }.", "&tel { a : ; b : c,d }")
}

func Test_Parse_17(t *testing.T) {
	checkParse(t, "&tel{ X+1-Y > \"s\" }.", "&tel { >(-(+(X,1),Y),\"s\") :  }")
}

func Test_Parse_18(t *testing.T) {
	checkParse(t, "&tel{ a } >= 2.", "&tel { a :  } >= 2")
}

func Test_Parse_19(t *testing.T) {
	checkParse(t, "&tel{ }.", "&tel {  }")
}

func Test_Parse_20(t *testing.T) {
	// ordinary program text is skipped
	checkParse(t, "#program base.\np(1..3).\n% &tel{ c }.\nq :- p(X).\n&tel{ a }.", "&tel { a :  }")
}

func Test_Parse_21(t *testing.T) {
	checkParse(t, "&tel{ a }. &tel{ >b }.", "&tel { a :  }", "&tel { >(b) :  }")
}

func Test_Parse_22(t *testing.T) {
	checkParse(t, "a:-&tel{ b }.", "&tel { b :  }")
}

func Test_Parse_Invalid_01(t *testing.T) {
	checkParseError(t, "&tel{ a .", "expected '}'")
}

func Test_Parse_Invalid_02(t *testing.T) {
	checkParseError(t, "&tel{ a <- b }.", "unknown binary operator \"<-\"")
}

func Test_Parse_Invalid_03(t *testing.T) {
	checkParseError(t, "&tel{ <a }.", "unknown unary operator \"<\"")
}

func Test_Parse_Invalid_04(t *testing.T) {
	checkParseError(t, "&tel{ p(a }.", "expected ')'")
}

func Test_Parse_Invalid_05(t *testing.T) {
	checkParseError(t, "&tel{ a & }.", "expected term")
}

func Test_Parse_Recovery(t *testing.T) {
	atoms, errs := ParseString("&tel{ a & }. &tel{ b }. &tel{ c | }.")
	//
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	} else if len(atoms) != 1 || atoms[0].String() != "&tel { b :  }" {
		t.Errorf("unexpected atoms %v", atoms)
	}
}

func Test_Parse_Spans(t *testing.T) {
	input := "x.\n&tel{ a & b }."
	atoms, errs := ParseString(input)
	//
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	//
	atom := atoms[0]
	term := atom.Elements[0].Tuple[0]
	//
	if text := input[atom.Span().Start():atom.Span().End()]; text != "&tel{ a & b }" {
		t.Errorf("unexpected atom span \"%s\"", text)
	}
	//
	if text := input[term.Span().Start():term.Span().End()]; text != "a & b" {
		t.Errorf("unexpected term span \"%s\"", text)
	}
}

func Test_Parse_ErrorLocation(t *testing.T) {
	_, errs := ParseString("a.\n&tel{ a <- b }.")
	//
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	} else if msg := errs[0].Error(); msg != "<input>:2:9: unknown binary operator \"<-\"" {
		t.Errorf("unexpected error \"%s\"", msg)
	}
}

func Test_IsIdentifier(t *testing.T) {
	for _, name := range []string{"a", "tel", "__aux", "a'", "p1"} {
		if !IsIdentifier(name) {
			t.Errorf("\"%s\" should be an identifier", name)
		}
	}
	//
	for _, name := range []string{"", "X", "_", "1a", "a-b", "&"} {
		if IsIdentifier(name) {
			t.Errorf("\"%s\" should not be an identifier", name)
		}
	}
}

func Test_IsVariable(t *testing.T) {
	for _, name := range []string{"X", "__S", "_Y", "Abc1"} {
		if !IsVariable(name) {
			t.Errorf("\"%s\" should be a variable", name)
		}
	}
	//
	for _, name := range []string{"", "_", "x", "__t", "X-1"} {
		if IsVariable(name) {
			t.Errorf("\"%s\" should not be a variable", name)
		}
	}
}

// ==================================================================
// Framework
// ==================================================================

func checkParse(t *testing.T, input string, expected ...string) {
	atoms, errs := ParseString(input)
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	} else if len(atoms) != len(expected) {
		t.Fatalf("expected %d atoms, got %v", len(expected), atoms)
	}
	//
	for i, atom := range atoms {
		if atom.String() != expected[i] {
			t.Errorf("got \"%s\", expected \"%s\"", atom.String(), expected[i])
		}
	}
}

func checkParseError(t *testing.T, input string, expected string) {
	_, errs := ParseString(input)
	//
	if len(errs) == 0 {
		t.Fatalf("expected error \"%s\"", expected)
	} else if !strings.HasSuffix(errs[0].Message(), expected) {
		t.Errorf("got error \"%s\", expected \"%s\"", errs[0].Message(), expected)
	}
}
