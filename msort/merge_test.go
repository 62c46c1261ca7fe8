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

package msort

import (
	"slices"
	"testing"
)

// countingLess wraps the natural int ordering and counts calls.
func countingLess(cmps *int) lessFunc[int] {
	return func(a, b int) bool {
		*cmps++
		return a < b
	}
}

// TestMergeAlreadyOrdered: two runs already in order settle in a single
// comparison and never touch the scratch buffer.
func TestMergeAlreadyOrdered(t *testing.T) {
	x := []int{1, 2, 3, 4, 5, 6}
	want := slices.Clone(x)

	cmps := 0
	var buf Buffer[int]
	countingLess(&cmps).merge(x, 3, &buf)

	if !slices.Equal(x, want) {
		t.Errorf("merge(ordered) changed the slice: %v", x)
	}
	if cmps != 1 {
		t.Errorf("merge(ordered) used %d comparisons, want 1", cmps)
	}
	if buf.Cap() != 0 {
		t.Errorf("merge(ordered) grew the buffer to %d, want 0", buf.Cap())
	}
}

// TestMergeAlreadyOrderedEqualBoundary: the in-order check is non-strict,
// so runs touching at equal values also settle in one comparison. Strict
// here would merge, and a merge that favors the right run would break
// stability.
func TestMergeAlreadyOrderedEqualBoundary(t *testing.T) {
	x := []int{1, 2, 2, 2, 3}
	want := slices.Clone(x)

	cmps := 0
	var buf Buffer[int]
	countingLess(&cmps).merge(x, 3, &buf)

	if !slices.Equal(x, want) {
		t.Errorf("merge(equal boundary) changed the slice: %v", x)
	}
	if cmps != 1 {
		t.Errorf("merge(equal boundary) used %d comparisons, want 1", cmps)
	}
}

// TestMergeFullySeparated: when the whole right run sorts before the whole
// left run, the merge is two comparisons and a block move.
func TestMergeFullySeparated(t *testing.T) {
	x := []int{5, 6, 7, 1, 2, 3, 4}
	want := []int{1, 2, 3, 4, 5, 6, 7}

	cmps := 0
	var buf Buffer[int]
	countingLess(&cmps).merge(x, 3, &buf)

	if !slices.Equal(x, want) {
		t.Errorf("merge(separated) = %v, want %v", x, want)
	}
	if cmps != 2 {
		t.Errorf("merge(separated) used %d comparisons, want 2", cmps)
	}
	if buf.Cap() != 3 {
		t.Errorf("merge(separated) buffer capacity = %d, want 3 (left run length)", buf.Cap())
	}
}

// TestMergeSeparatedEqualBoundary: the separated check is strict. A right
// run whose last element equals the left run's first must go through the
// interleave so the equal elements keep their original order.
func TestMergeSeparatedEqualBoundary(t *testing.T) {
	x := []pair{{5, 0}, {6, 1}, {1, 2}, {2, 3}, {5, 4}}
	want := []pair{{1, 2}, {2, 3}, {5, 0}, {5, 4}, {6, 1}}

	var buf Buffer[pair]
	lessFunc[pair](pairLess).merge(x, 2, &buf)

	if !slices.Equal(x, want) {
		t.Errorf("merge(equal boundary) = %v, want %v", x, want)
	}
}

// TestMergeInterleave covers the general merge with both exit orders.
func TestMergeInterleave(t *testing.T) {
	tests := []struct {
		name string
		x    []int
		mid  int
		want []int
	}{
		{"zipper", []int{1, 3, 5, 2, 4, 6}, 3, []int{1, 2, 3, 4, 5, 6}},
		{"left_exhausts_first", []int{2, 4, 1, 3, 5}, 2, []int{1, 2, 3, 4, 5}},
		{"right_exhausts_first", []int{1, 4, 6, 2, 3}, 3, []int{1, 2, 3, 4, 6}},
		{"single_each", []int{9, 3}, 1, []int{3, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf Buffer[int]
			lessFunc[int](intLess).merge(tt.x, tt.mid, &buf)
			if !slices.Equal(tt.x, tt.want) {
				t.Errorf("merge = %v, want %v", tt.x, tt.want)
			}
		})
	}
}

// TestMergeStableOnTies: tied elements across the boundary come out left
// run first.
func TestMergeStableOnTies(t *testing.T) {
	x := []pair{{1, 0}, {2, 1}, {2, 2}, {1, 3}, {2, 4}}
	want := []pair{{1, 0}, {1, 3}, {2, 1}, {2, 2}, {2, 4}}

	var buf Buffer[pair]
	lessFunc[pair](pairLess).merge(x, 3, &buf)

	if !slices.Equal(x, want) {
		t.Errorf("merge(ties) = %v, want %v", x, want)
	}
}

// TestInsertHead covers the short-run repair step.
func TestInsertHead(t *testing.T) {
	tests := []struct {
		name string
		x    []int
		want []int
	}{
		{"swap_two", []int{2, 1}, []int{1, 2}},
		{"to_middle", []int{3, 1, 2, 5}, []int{1, 2, 3, 5}},
		{"to_end", []int{9, 1, 2, 3}, []int{1, 2, 3, 9}},
		{"one_step", []int{2, 1, 3, 4}, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lessFunc[int](intLess).insertHead(tt.x)
			if !slices.Equal(tt.x, tt.want) {
				t.Errorf("insertHead = %v, want %v", tt.x, tt.want)
			}
		})
	}
}

// TestInsertHeadStopsAtEqual: the rotated element came from the left of
// the run, so it must land ahead of elements it compares equal to.
func TestInsertHeadStopsAtEqual(t *testing.T) {
	x := []pair{{2, 0}, {1, 1}, {2, 2}, {3, 3}}
	want := []pair{{1, 1}, {2, 0}, {2, 2}, {3, 3}}

	lessFunc[pair](pairLess).insertHead(x)

	if !slices.Equal(x, want) {
		t.Errorf("insertHead(equal) = %v, want %v", x, want)
	}
}

// TestMergeOrderedVariant: the generated ordered merge behaves like the
// func variant.
func TestMergeOrderedVariant(t *testing.T) {
	x := []int{4, 8, 1, 5, 9}
	want := []int{1, 4, 5, 8, 9}

	var buf Buffer[int]
	merge(x, 2, &buf)

	if !slices.Equal(x, want) {
		t.Errorf("merge = %v, want %v", x, want)
	}

	z := []int{5, 2, 3, 4}
	insertHead(z)
	if !slices.Equal(z, []int{2, 3, 4, 5}) {
		t.Errorf("insertHead = %v, want [2 3 4 5]", z)
	}
}
