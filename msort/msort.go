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

//go:generate go run ../cmd/msortgen -output .

// Sort sorts x in ascending order. The sort is adaptive: sorted input is
// recognized in one linear pass with no allocation, and partially sorted
// input costs far less than a from-scratch sort.
//
// For floating-point element types, NaN values compare false against
// everything and end up in unspecified positions; use SortFunc with a
// NaN-aware ordering if that matters.
func Sort[E Ordered](x []E) {
	var buf Buffer[E]
	runSort(x, &buf)
}

// SortFunc sorts x in ascending order as determined by the less function,
// keeping the original order of elements that compare equal. Anything the
// ordering depends on beyond the two elements is captured by the closure.
//
// less must describe a strict weak ordering (in particular, it must not
// report both less(a, b) and less(b, a)). If it does not, the slice ends up
// in an unspecified permutation of its original elements.
func SortFunc[E any](x []E, less func(a, b E) bool) {
	var buf Buffer[E]
	lessFunc[E](less).runSort(x, &buf)
}

// SortCmp sorts x in ascending order as determined by a three-way
// comparison function, keeping the original order of elements that compare
// equal. cmp must return a negative number when a sorts before b, zero when
// they are interchangeable, and a positive number when a sorts after b.
func SortCmp[E any](x []E, cmp func(a, b E) int) {
	SortFunc(x, func(a, b E) bool { return cmp(a, b) < 0 })
}

// IsSorted reports whether x is in ascending order.
func IsSorted[E Ordered](x []E) bool {
	return isSorted(x)
}

// IsSortedFunc reports whether x is in ascending order according to less.
func IsSortedFunc[E any](x []E, less func(a, b E) bool) bool {
	return lessFunc[E](less).isSorted(x)
}
