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

// Variables returns the variables occurring in a given sequence of terms, in
// the order in which they are first encountered by a depth-first, left-to-right
// traversal.  Each variable is reported once, and the anonymous variable is
// never reported.
func Variables(terms ...Term) []*Variable {
	var (
		vars []*Variable
		seen = make(map[string]bool)
	)
	//
	for _, t := range terms {
		vars = collectVariables(t, vars, seen)
	}
	//
	return vars
}

func collectVariables(term Term, vars []*Variable, seen map[string]bool) []*Variable {
	switch t := term.(type) {
	case *Number, *Symbol, *String:
		return vars
	case *Variable:
		if !t.IsAnonymous() && !seen[t.Name] {
			seen[t.Name] = true
			vars = append(vars, t)
		}
		//
		return vars
	case *Function:
		for _, arg := range t.Args {
			vars = collectVariables(arg, vars, seen)
		}
		//
		return vars
	case *Tuple:
		for _, arg := range t.Args {
			vars = collectVariables(arg, vars, seen)
		}
		//
		return vars
	}
	//
	panic("unreachable")
}
