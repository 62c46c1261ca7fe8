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

// Buffer is reusable scratch storage for merges. The package-level sort
// functions allocate scratch per call; sorting through a Buffer instead
// amortizes that allocation across many calls:
//
//	var buf msort.Buffer[Row]
//	for _, batch := range batches {
//	    buf.SortFunc(batch, byKey)
//	}
//
// The zero value is ready to use. A Buffer holds element copies from the
// last sort until the next call or Reset. It must not be used by concurrent
// sorts; give each goroutine its own Buffer.
type Buffer[E any] struct {
	scratch []E
}

// SortFunc sorts x in ascending order as determined by the less function,
// keeping the original order of equal elements. It is equivalent to the
// package-level SortFunc but reuses the buffer's scratch storage.
func (b *Buffer[E]) SortFunc(x []E, less func(a, b E) bool) {
	lessFunc[E](less).runSort(x, b)
}

// SortCmp is like SortFunc for a three-way comparison function. cmp must
// return a negative number when a sorts before b, zero when they are
// interchangeable, and a positive number when a sorts after b.
func (b *Buffer[E]) SortCmp(x []E, cmp func(a, b E) int) {
	b.SortFunc(x, func(a, b E) bool { return cmp(a, b) < 0 })
}

// Cap returns the element capacity of the scratch storage.
func (b *Buffer[E]) Cap() int { return cap(b.scratch) }

// Reset releases the scratch storage and any element copies it holds.
func (b *Buffer[E]) Reset() { b.scratch = nil }

// copyRun copies run into the scratch storage, growing it if needed. The
// scratch never shrinks, so within one sort it ends up sized to the longest
// left-hand run merged. The returned slice aliases the buffer and is valid
// until the next copyRun.
func (b *Buffer[E]) copyRun(run []E) []E {
	if cap(b.scratch) < len(run) {
		b.scratch = make([]E, len(run))
	}
	s := b.scratch[:len(run)]
	copy(s, run)
	return s
}
