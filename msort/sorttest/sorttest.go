// Copyright 2026 go-mergesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sorttest provides input generators and result checkers shared
// by the sort tests and the msort-bench tool.
//
// Generators take a caller-owned *rand.Rand so runs are reproducible
// from a seed. Checkers return an error describing the first violation
// instead of asserting, so they work both under testing.T and inside
// command-line verification sweeps.
package sorttest

import (
	"fmt"
	"math/rand"
)

// Item is a sortable record that remembers where it started. Index is
// the position in the generated input, which makes stability checkable
// after sorting by Value alone.
type Item struct {
	Value int
	Index int
}

// ByValue orders Items by Value only, ignoring Index.
func ByValue(a, b Item) bool { return a.Value < b.Value }

// Items returns n items whose values are the sequence 0..n-1 disturbed
// by the given number of random swaps, reversed if asked. Index records
// each item's final position in the returned slice.
func Items(r *rand.Rand, n, swaps int, reversed bool) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i].Value = i
	}
	if n > 0 {
		for s := 0; s < swaps; s++ {
			i, j := r.Intn(n), r.Intn(n)
			items[i].Value, items[j].Value = items[j].Value, items[i].Value
		}
	}
	if reversed {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	for i := range items {
		items[i].Index = i
	}
	return items
}

// DupItems returns n items drawing values from a pool of the given
// size, so duplicates are frequent and stability is observable.
func DupItems(r *rand.Rand, n, distinct int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Value: r.Intn(distinct), Index: i}
	}
	return items
}

// NearSorted returns the sequence 0..n-1 with each position replaced by
// a random value with probability factor. Factor 0 is fully sorted,
// factor 1 fully random.
func NearSorted(r *rand.Rand, n int, factor float64) []int {
	x := make([]int, n)
	for i := range x {
		if r.Float64() < factor {
			x[i] = r.Intn(n)
		} else {
			x[i] = i
		}
	}
	return x
}

// NearSortedStrings is NearSorted rendered as zero-padded decimal
// strings, so lexicographic order agrees with numeric order.
func NearSortedStrings(r *rand.Rand, n, width int, factor float64) []string {
	x := make([]string, n)
	for i := range x {
		v := i
		if r.Float64() < factor {
			v = r.Intn(n)
		}
		x[i] = fmt.Sprintf("%0*d", width, v)
	}
	return x
}

// Verify reports the first adjacent pair out of order, or nil if x is
// sorted under less.
func Verify[E any](x []E, less func(a, b E) bool) error {
	for i := 1; i < len(x); i++ {
		if less(x[i], x[i-1]) {
			return fmt.Errorf("out of order at %d: %v before %v", i-1, x[i-1], x[i])
		}
	}
	return nil
}

// VerifyStable checks that items are sorted by Value, that equal values
// kept their original order, and that no item was lost or duplicated.
func VerifyStable(items []Item) error {
	if err := Verify(items, ByValue); err != nil {
		return err
	}
	for i := 1; i < len(items); i++ {
		if items[i].Value == items[i-1].Value && items[i].Index < items[i-1].Index {
			return fmt.Errorf("stability broken at %d: original index %d placed before %d for value %d",
				i, items[i-1].Index, items[i].Index, items[i].Value)
		}
	}
	seen := make([]bool, len(items))
	for i, it := range items {
		if it.Index < 0 || it.Index >= len(items) {
			return fmt.Errorf("item %d has original index %d out of range", i, it.Index)
		}
		if seen[it.Index] {
			return fmt.Errorf("original index %d appears more than once", it.Index)
		}
		seen[it.Index] = true
	}
	return nil
}
