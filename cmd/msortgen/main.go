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

// Command msortgen generates the comparator variants of the run-merging
// sort in package msort.
//
// Usage:
//
//	msortgen -output ../../msort
//
// Or via go:generate from the msort package:
//
//	//go:generate go run ../cmd/msortgen -output .
//
// The algorithm is maintained once, as a template. msortgen renders it
// twice: zsortfunc.go carries an explicit less function, zsortordered.go
// is specialized to Ordered element types so the comparison inlines to
// a plain < instead of going through a function value.
package main

import (
	"flag"
	"fmt"
	"os"
)

var outputDir = flag.String("output", ".", "Output directory (default: current directory)")

func main() {
	flag.Parse()

	if err := run(*outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d sort variants\n", len(variants))
}
