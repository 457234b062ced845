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

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Append creates a new slice containing the result of appending the given item
// onto the end of the given slice.  Observe that, unlike the built-in append()
// function, this will never modify the given slice.
func Append[T any](slice []T, item T) []T {
	n := len(slice)
	// Make space for new slice
	nslice := make([]T, n+1)
	// Copy existing values
	copy(nslice[:n], slice)
	// Set last value
	nslice[n] = item
	// Done
	return nslice
}

// AppendAll creates a new slice containing the result of appending the given
// items onto the end of the given slice.  Observe that, unlike the built-in
// append() function, this will never modify the given slice.
func AppendAll[T any](lhs []T, rhs ...T) []T {
	n := len(lhs)
	// Make space for new slice
	nslice := make([]T, n+len(rhs))
	// Copy existing values
	copy(nslice[:n], lhs)
	copy(nslice[n:], rhs)
	// Done
	return nslice
}

// ContainsMatching checks whether a given array contains an item matching a
// given predicate.
func ContainsMatching[T any](items []T, predicate Predicate[T]) bool {
	for _, r := range items {
		if predicate(r) {
			return true
		}
	}
	//
	return false
}

// Map applies a given function to every element of an array, producing a new
// array of the results.
func Map[S any, T any](items []S, fn func(S) T) []T {
	nitems := make([]T, len(items))
	//
	for i, item := range items {
		nitems[i] = fn(item)
	}
	//
	return nitems
}
