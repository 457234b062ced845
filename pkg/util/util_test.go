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
package util

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/goleak"
)

func Test_ParMap_01(t *testing.T) {
	defer goleak.VerifyNone(t)
	//
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	//
	results, err := ParMap(items, 3, func(i int) (string, error) { return fmt.Sprintf("<%d>", i*i), nil })
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	for i, r := range results {
		if expected := fmt.Sprintf("<%d>", items[i]*items[i]); r != expected {
			t.Errorf("got \"%s\", expected \"%s\"", r, expected)
		}
	}
}

func Test_ParMap_02(t *testing.T) {
	defer goleak.VerifyNone(t)
	//
	failure := errors.New("odd")
	//
	results, err := ParMap([]int{2, 4, 5, 6}, 0, func(i int) (int, error) {
		if i%2 == 1 {
			return 0, failure
		}
		//
		return i / 2, nil
	})
	//
	if !errors.Is(err, failure) {
		t.Errorf("expected error, got %v", err)
	} else if results != nil {
		t.Errorf("unexpected results %v", results)
	}
}

func Test_ParMap_03(t *testing.T) {
	results, err := ParMap([]int{}, 1, func(i int) (int, error) { return i, nil })
	//
	if err != nil || len(results) != 0 {
		t.Errorf("unexpected results %v (%v)", results, err)
	}
}

func Test_Option(t *testing.T) {
	some, none := Some(1), None[int]()
	//
	if !some.HasValue() || some.IsEmpty() || some.Unwrap() != 1 {
		t.Errorf("unexpected option %v", some)
	} else if none.HasValue() || !none.IsEmpty() || none.UnwrapOr(2) != 2 {
		t.Errorf("unexpected option %v", none)
	}
}

func Test_Arrays(t *testing.T) {
	items := []int{1, 2, 3}
	//
	if r := Append(items, 4); len(r) != 4 || r[3] != 4 || len(items) != 3 {
		t.Errorf("unexpected append %v", r)
	}
	//
	if r := AppendAll(items, 4, 5); len(r) != 5 || r[4] != 5 {
		t.Errorf("unexpected append %v", r)
	}
	//
	even := func(i int) bool { return i%2 == 0 }
	//
	if !ContainsMatching(items, even) || ContainsMatching([]int{1, 3}, even) {
		t.Errorf("unexpected match")
	}
	//
	if r := Map(items, func(i int) string { return fmt.Sprint(i) }); r[2] != "3" {
		t.Errorf("unexpected map %v", r)
	}
}
