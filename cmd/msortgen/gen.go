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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

// variant describes one rendering of the sort template.
type variant struct {
	// OutFile is the file name written under the output directory.
	OutFile string
	// Preamble declares the comparator the rendered code calls.
	Preamble string
	// Recv is the method receiver clause, including its trailing
	// space, or empty for free functions.
	Recv string
	// TypeParam is the type parameter list for free functions, or
	// empty for methods.
	TypeParam string
	// Less is the expression the rendered code compares through.
	Less string
	// Call prefixes calls to the sibling helpers, "lt." for methods.
	Call string
}

var variants = []variant{
	{
		OutFile: "zsortfunc.go",
		Preamble: `// lessFunc is an ordering predicate. It reports whether a must sort before b.
type lessFunc[E any] func(a, b E) bool`,
		Recv:      "(lt lessFunc[E]) ",
		TypeParam: "",
		Less:      "lt",
		Call:      "lt.",
	},
	{
		OutFile: "zsortordered.go",
		Preamble: `// less is the natural ordering. The compiler inlines it, so the ordered
// variants compare directly instead of through a function value.
func less[E Ordered](a, b E) bool { return a < b }`,
		Recv:      "",
		TypeParam: "[E Ordered]",
		Less:      "less",
		Call:      "",
	},
}

var sortTemplate = template.Must(template.New("msort").Parse(`// Code generated by msortgen. DO NOT EDIT.

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

{{.Preamble}}

// runSort sorts x using an adaptive merge strategy: maximal ascending runs
// are detected right to left, runs shorter than minRun are extended by
// insertion steps, and pending runs are merged under a length invariant
// that keeps the merge tree balanced.
func {{.Recv}}runSort{{.TypeParam}}(x []E, buf *Buffer[E]) {
	if len(x) < 2 {
		return
	}

	var pending runStack
	head := len(x)
	for {
		// Claim the next run, scanning left from the previous one.
		mid := head
		head--
		for head > 0 {
			if {{.Less}}(x[head], x[head-1]) {
				if mid-head < minRun {
					{{.Call}}insertHead(x[head-1 : mid])
				} else {
					break
				}
			}
			head--
		}

		// Restore the stack invariant: every pending run is at most
		// half as long as the run to its right. Once the input is
		// exhausted, the loop collapses everything into a single run.
		for pending.depth() >= 1 {
			tail := pending.top()
			for pending.depth() >= 2 {
				// A new run longer than the run two entries down
				// means the two topmost pending runs are closer
				// in length to each other than to it; merge
				// those first.
				tail2 := pending.second()
				if mid-head <= tail2-tail {
					break
				}
				{{.Call}}merge(x[mid:tail2], tail-mid, buf)
				tail = tail2
				pending.drop()
			}
			if head > 0 && mid-head <= (tail-mid)/2 {
				break
			}
			{{.Call}}merge(x[head:tail], mid-head, buf)
			mid = tail
			pending.drop()
		}
		pending.push(mid)

		if head == 0 {
			return
		}
	}
}

// insertHead moves x[0] into its position within x[1:], which is already
// sorted. The caller has established that x[1] sorts before x[0], so the
// scan for the insertion point starts at x[2]. Equal elements stop the
// scan: the moved element comes from the left of the sorted part and must
// stay ahead of elements it compares equal to.
func {{.Recv}}insertHead{{.TypeParam}}(x []E) {
	dest := 2
	for dest < len(x) && {{.Less}}(x[dest], x[0]) {
		dest++
	}
	tmp := x[0]
	copy(x, x[1:dest])
	x[dest-1] = tmp
}

// merge merges the adjacent sorted runs x[:mid] and x[mid:]. The left run
// is copied to scratch storage and the runs are interleaved back into x;
// on equal elements the left run wins, which keeps the sort stable.
func {{.Recv}}merge{{.TypeParam}}(x []E, mid int, buf *Buffer[E]) {
	// The runs are often already in order; one comparison settles it
	// before any scratch storage is touched. Non-strict, so equal
	// boundary elements stay where they are.
	if !{{.Less}}(x[mid], x[mid-1]) {
		return
	}

	a := buf.copyRun(x[:mid])
	tail := len(x)

	// When every right element sorts before every left element the whole
	// right run moves ahead of the left run in one step. Strict, so this
	// path cannot reorder equal boundary elements.
	if {{.Less}}(x[tail-1], a[0]) {
		n := copy(x, x[mid:])
		copy(x[n:], a)
		return
	}

	i, b, dest := 0, mid, 0
	for {
		if !{{.Less}}(x[b], a[i]) {
			x[dest] = a[i]
			dest++
			i++
			if i == len(a) {
				// The rest of the right run is already in place.
				break
			}
		} else {
			x[dest] = x[b]
			dest++
			b++
			if b == tail {
				copy(x[dest:], a[i:])
				break
			}
		}
	}
}

// isSorted reports whether x is in ascending order.
func {{.Recv}}isSorted{{.TypeParam}}(x []E) bool {
	for i := len(x) - 1; i > 0; i-- {
		if {{.Less}}(x[i], x[i-1]) {
			return false
		}
	}
	return true
}
`))

// render executes the template for one variant and formats the result.
func render(v variant) ([]byte, error) {
	var buf bytes.Buffer
	if err := sortTemplate.Execute(&buf, v); err != nil {
		return nil, err
	}
	formatted, err := imports.Process(v.OutFile, buf.Bytes(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting %s failed: %v\n", v.OutFile, err)
		return buf.Bytes(), nil
	}
	return formatted, nil
}

func run(outputDir string) error {
	for _, v := range variants {
		src, err := render(v)
		if err != nil {
			return fmt.Errorf("render %s: %w", v.OutFile, err)
		}
		path := filepath.Join(outputDir, v.OutFile)
		if err := os.WriteFile(path, src, 0644); err != nil {
			return fmt.Errorf("write %s: %w", v.OutFile, err)
		}
	}
	return nil
}
