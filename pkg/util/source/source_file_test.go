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
package source

import "testing"

func Test_Position_01(t *testing.T) {
	srcfile := NewSourceFile("test.lp", []byte("a.\n&tel{ >b }.\n"))
	//
	checkPosition(t, srcfile, 0, 1, 1)
	checkPosition(t, srcfile, 2, 1, 3)
	checkPosition(t, srcfile, 3, 2, 1)
	checkPosition(t, srcfile, 9, 2, 7)
	// beyond end of file
	checkPosition(t, srcfile, 100, 3, 1)
}

func Test_Position_02(t *testing.T) {
	srcfile := NewSourceFile("test.lp", []byte(""))
	//
	checkPosition(t, srcfile, 0, 1, 1)
}

func Test_Line_01(t *testing.T) {
	srcfile := NewSourceFile("test.lp", []byte("a.\n&tel{ >b }.\nc."))
	line := srcfile.FindFirstEnclosingLine(NewSpan(9, 11))
	//
	if line.Number() != 2 || line.String() != "&tel{ >b }." || line.Start() != 3 || line.Length() != 11 {
		t.Errorf("unexpected line %d \"%s\"", line.Number(), line.String())
	}
	//
	if last := srcfile.Line(3); last.String() != "c." {
		t.Errorf("unexpected line \"%s\"", last.String())
	}
}

func Test_SyntaxError_01(t *testing.T) {
	srcfile := NewSourceFile("test.lp", []byte("a.\n&tel{ x > a }.\n"))
	err := srcfile.SyntaxError(NewSpan(9, 14), "bad step")
	//
	if err.Error() != "test.lp:2:7: bad step" {
		t.Errorf("unexpected error \"%s\"", err.Error())
	}
	//
	if srcfile.Text(err.Span()) != "x > a" {
		t.Errorf("unexpected text \"%s\"", srcfile.Text(err.Span()))
	}
}

func Test_Span_01(t *testing.T) {
	span := NewSpan(2, 4).Join(NewSpan(7, 9))
	//
	if span.Start() != 2 || span.End() != 9 || span.Length() != 7 || span.String() != "2:9" {
		t.Errorf("unexpected span %s", span)
	}
}

func checkPosition(t *testing.T, srcfile *File, offset int, line int, column int) {
	t.Helper()
	//
	if pos := srcfile.Position(offset); pos.Line != line || pos.Column != column {
		t.Errorf("offset %d at %s, expected %d:%d", offset, pos, line, column)
	}
}
