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

// Package refsort holds deliberately simple stable sorts. Differential
// tests check package msort against them, and msort-bench times them
// for scale.
package refsort

// Leaf size below which TopDown hands over to Insertion.
const insertionCutoff = 16

// Insertion sorts x stably in place, scanning right to left and
// rotating each head element into the sorted tail behind it.
// Quadratic; only for small or nearly sorted input.
func Insertion[E any](x []E, less func(a, b E) bool) {
	for head := len(x) - 2; head >= 0; head-- {
		w := x[head:]
		dest := 1
		for dest < len(w) && less(w[dest], w[0]) {
			dest++
		}
		tmp := w[0]
		copy(w, w[1:dest])
		w[dest-1] = tmp
	}
}

// TopDown is a textbook recursive merge sort over halves. Stable. The
// scratch slice covers half the input and is shared down the
// recursion; merges copy out only the left half.
func TopDown[E any](x []E, less func(a, b E) bool) {
	if len(x) < insertionCutoff {
		Insertion(x, less)
		return
	}
	topDown(x, less, make([]E, len(x)/2))
}

func topDown[E any](x []E, less func(a, b E) bool, scratch []E) {
	if len(x) < insertionCutoff {
		Insertion(x, less)
		return
	}
	mid := len(x) / 2
	topDown(x[:mid], less, scratch)
	topDown(x[mid:], less, scratch)
	mergeHalves(x, mid, less, scratch)
}

// mergeHalves merges the sorted halves x[:mid] and x[mid:], with the
// same two shortcuts as the merge in package msort: already ordered,
// and fully separated.
func mergeHalves[E any](x []E, mid int, less func(a, b E) bool, scratch []E) {
	if !less(x[mid], x[mid-1]) {
		return
	}
	a := scratch[:mid]
	copy(a, x[:mid])
	if less(x[len(x)-1], a[0]) {
		n := copy(x, x[mid:])
		copy(x[n:], a)
		return
	}
	i, dest := 0, 0
	for b := mid; b < len(x); dest++ {
		if !less(x[b], a[i]) {
			x[dest] = a[i]
			i++
			if i == len(a) {
				// The rest of the right half is already in place.
				return
			}
		} else {
			x[dest] = x[b]
			b++
		}
	}
	copy(x[dest:], a[i:])
}
