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
	"cmp"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-mergesort/internal/refsort"
	"github.com/ajroetker/go-mergesort/msort"
	"github.com/ajroetker/go-mergesort/msort/sorttest"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Sweep inputs from sorted to random and print per-algorithm timings as TSV",
	Long: `Bench generates inputs whose disorder grows from factor 0 (fully
sorted) to factor 1 (fully random), times each configured algorithm on
identical copies, and prints one TSV block per size with a column per
algorithm. Timings are best-of-trials, in nanoseconds.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntSlice("sizes", nil, "element counts to sweep")
	benchCmd.Flags().Int("steps", 0, "number of disorder steps between 0 and 1")
	benchCmd.Flags().Int("trials", 0, "trials per cell, fastest wins")
	benchCmd.Flags().StringSlice("algorithms", nil,
		"algorithms to time: msort, msort-buffer, stdsort, stdstable, refsort, insertion (quadratic, small sizes only)")
	benchCmd.Flags().Bool("strings", false, "sort fixed-width decimal strings instead of ints")
}

func intLess(a, b int) bool { return a < b }

func strLess(a, b string) bool { return a < b }

var knownAlgorithms = map[string]bool{
	"msort":        true,
	"msort-buffer": true,
	"stdsort":      true,
	"stdstable":    true,
	"refsort":      true,
	"insertion":    true,
}

func runBench(cmd *cobra.Command, args []string) error {
	suite, err := loadSuite(cfgPath)
	if err != nil {
		return err
	}
	cfg := suite.Bench

	f := cmd.Flags()
	if f.Changed("sizes") {
		cfg.Sizes, _ = f.GetIntSlice("sizes")
	}
	if f.Changed("steps") {
		cfg.Steps, _ = f.GetInt("steps")
	}
	if f.Changed("trials") {
		cfg.Trials, _ = f.GetInt("trials")
	}
	if f.Changed("algorithms") {
		cfg.Algorithms, _ = f.GetStringSlice("algorithms")
	}
	if f.Changed("strings") {
		cfg.Strings, _ = f.GetBool("strings")
	}

	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("no sizes configured")
	}
	if cfg.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", cfg.Steps)
	}
	if cfg.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", cfg.Trials)
	}
	if len(cfg.Algorithms) == 0 {
		return fmt.Errorf("no algorithms configured")
	}
	for _, algo := range cfg.Algorithms {
		if !knownAlgorithms[algo] {
			return fmt.Errorf("unknown algorithm %q", algo)
		}
	}

	logger.Info("bench sweep",
		zap.Ints("sizes", cfg.Sizes),
		zap.Int("steps", cfg.Steps),
		zap.Int("trials", cfg.Trials),
		zap.Strings("algorithms", cfg.Algorithms),
		zap.Bool("strings", cfg.Strings),
	)

	if cfg.Strings {
		return sweepStrings(os.Stdout, cfg, seed)
	}
	return sweepInts(os.Stdout, cfg, seed)
}

func sweepInts(w io.Writer, cfg BenchConfig, seed int64) error {
	var buf msort.Buffer[int]
	for _, n := range cfg.Sizes {
		fmt.Fprintf(w, "# size=%d trials=%d elements=int\n", n, cfg.Trials)
		fmt.Fprintf(w, "factor\t%s\n", strings.Join(cfg.Algorithms, "\t"))
		for step := 0; step <= cfg.Steps; step++ {
			factor := float64(step) / float64(cfg.Steps)
			r := rand.New(rand.NewSource(seed + int64(n)*31 + int64(step)))
			ref := sorttest.NearSorted(r, n, factor)
			work := make([]int, n)

			fmt.Fprintf(w, "%.2f", factor)
			for _, algo := range cfg.Algorithms {
				best := time.Duration(-1)
				for trial := 0; trial < cfg.Trials; trial++ {
					copy(work, ref)
					start := time.Now()
					sortInts(algo, work, &buf)
					if d := time.Since(start); best < 0 || d < best {
						best = d
					}
				}
				fmt.Fprintf(w, "\t%d", best.Nanoseconds())
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
		logger.Debug("size done", zap.Int("n", n))
	}
	return nil
}

func sweepStrings(w io.Writer, cfg BenchConfig, seed int64) error {
	var buf msort.Buffer[string]
	for _, n := range cfg.Sizes {
		fmt.Fprintf(w, "# size=%d trials=%d elements=string width=%d\n", n, cfg.Trials, cfg.Width)
		fmt.Fprintf(w, "factor\t%s\n", strings.Join(cfg.Algorithms, "\t"))
		for step := 0; step <= cfg.Steps; step++ {
			factor := float64(step) / float64(cfg.Steps)
			r := rand.New(rand.NewSource(seed + int64(n)*31 + int64(step)))
			ref := sorttest.NearSortedStrings(r, n, cfg.Width, factor)
			work := make([]string, n)

			fmt.Fprintf(w, "%.2f", factor)
			for _, algo := range cfg.Algorithms {
				best := time.Duration(-1)
				for trial := 0; trial < cfg.Trials; trial++ {
					copy(work, ref)
					start := time.Now()
					sortStrings(algo, work, &buf)
					if d := time.Since(start); best < 0 || d < best {
						best = d
					}
				}
				fmt.Fprintf(w, "\t%d", best.Nanoseconds())
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
		logger.Debug("size done", zap.Int("n", n))
	}
	return nil
}

func sortInts(algo string, x []int, buf *msort.Buffer[int]) {
	switch algo {
	case "msort":
		msort.Sort(x)
	case "msort-buffer":
		buf.SortFunc(x, intLess)
	case "stdsort":
		slices.Sort(x)
	case "stdstable":
		slices.SortStableFunc(x, cmp.Compare)
	case "refsort":
		refsort.TopDown(x, intLess)
	case "insertion":
		refsort.Insertion(x, intLess)
	}
}

func sortStrings(algo string, x []string, buf *msort.Buffer[string]) {
	switch algo {
	case "msort":
		msort.Sort(x)
	case "msort-buffer":
		buf.SortFunc(x, strLess)
	case "stdsort":
		slices.Sort(x)
	case "stdstable":
		slices.SortStableFunc(x, strings.Compare)
	case "refsort":
		refsort.TopDown(x, strLess)
	case "insertion":
		refsort.Insertion(x, strLess)
	}
}
