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
	"golang.org/x/sync/errgroup"
)

// ParMap applies a given function to every item of an array in parallel, using
// at most limit go-routines at any one time (or as many as necessary, if limit
// is not positive).  The results are returned in the same order as the items.
// If any application fails then an error is returned, in which case no results
// are returned.
func ParMap[S any, T any](items []S, limit int, fn func(S) (T, error)) ([]T, error) {
	var (
		group   errgroup.Group
		results = make([]T, len(items))
	)
	//
	if limit > 0 {
		group.SetLimit(limit)
	}
	//
	for i, item := range items {
		group.Go(func() error {
			var err error
			results[i], err = fn(item)
			//
			return err
		})
	}
	// Wait for all jobs to complete
	if err := group.Wait(); err != nil {
		return nil, err
	}
	//
	return results, nil
}
