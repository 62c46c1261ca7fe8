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
	"fmt"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-mergesort/internal/workerpool"
	"github.com/ajroetker/go-mergesort/msort"
	"github.com/ajroetker/go-mergesort/msort/sorttest"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Sort a grid of adversarial input shapes and check every result",
	Long: `Verify builds a grid of input shapes: sizes doubling up to the
configured maximum, crossed with swap counts, forward and reversed,
plus duplicate-heavy cells. Every cell is sorted and checked for
order, stability, and permutation preservation. Cells run in parallel;
any failure dumps the offending window and the command exits non-zero.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().Int("max-items", 0, "largest input size in the doubling grid")
	verifyCmd.Flags().Int("dup-values", 0, "value-pool size for duplicate-heavy cells")
	verifyCmd.Flags().Int("workers", 0, "parallel workers, 0 for GOMAXPROCS")
}

// gridCell is one verification input shape.
type gridCell struct {
	n        int
	swaps    int
	reversed bool
	dup      bool
}

func (c gridCell) fields() []zap.Field {
	return []zap.Field{
		zap.Int("n", c.n),
		zap.Int("swaps", c.swaps),
		zap.Bool("reversed", c.reversed),
		zap.Bool("duplicates", c.dup),
	}
}

func buildGrid(maxItems int) []gridCell {
	var cells []gridCell
	for n := 1; n <= maxItems; n *= 2 {
		swaps := []int{0}
		for s := 1; s <= n; s *= 2 {
			swaps = append(swaps, s)
		}
		for _, s := range swaps {
			for _, rev := range []bool{false, true} {
				cells = append(cells, gridCell{n: n, swaps: s, reversed: rev})
			}
		}
		cells = append(cells, gridCell{n: n, dup: true})
	}
	return cells
}

func runVerify(cmd *cobra.Command, args []string) error {
	suite, err := loadSuite(cfgPath)
	if err != nil {
		return err
	}
	cfg := suite.Verify

	f := cmd.Flags()
	if f.Changed("max-items") {
		cfg.MaxItems, _ = f.GetInt("max-items")
	}
	if f.Changed("dup-values") {
		cfg.DupValues, _ = f.GetInt("dup-values")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}

	if cfg.MaxItems < 1 {
		return fmt.Errorf("max-items must be at least 1, got %d", cfg.MaxItems)
	}
	if cfg.DupValues < 1 {
		return fmt.Errorf("dup-values must be at least 1, got %d", cfg.DupValues)
	}

	cells := buildGrid(cfg.MaxItems)
	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	logger.Info("verification grid",
		zap.Int("cells", len(cells)),
		zap.Int("max_items", cfg.MaxItems),
		zap.Int("workers", pool.NumWorkers()),
	)

	start := time.Now()
	var failed atomic.Int64
	var dumpMu sync.Mutex

	pool.ParallelForAtomic(len(cells), func(i int) {
		c := cells[i]
		r := rand.New(rand.NewSource(seed + int64(i)))
		input, items, err := checkCell(c, r, cfg.DupValues)
		if err != nil {
			failed.Add(1)
			dumpMu.Lock()
			defer dumpMu.Unlock()
			logger.Error("cell failed", append(c.fields(), zap.Error(err))...)
			dumpWindow(input, items)
		}
	})

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d cells failed", n, len(cells))
	}
	logger.Info("verification passed",
		zap.Int("cells", len(cells)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// checkCell generates the cell's input, sorts it, and verifies the
// result. It returns the original input and the sorted items so a
// failure can be reported with both.
func checkCell(c gridCell, r *rand.Rand, dupValues int) (input, items []sorttest.Item, err error) {
	if c.dup {
		items = sorttest.DupItems(r, c.n, dupValues)
	} else {
		items = sorttest.Items(r, c.n, c.swaps, c.reversed)
	}
	input = make([]sorttest.Item, len(items))
	copy(input, items)

	msort.SortFunc(items, sorttest.ByValue)
	return input, items, sorttest.VerifyStable(items)
}

// dumpWindow prints the neighborhood of the first violation in the
// sorted output, and the corresponding slice of the original input.
func dumpWindow(input, items []sorttest.Item) {
	at := violationIndex(items)
	if at < 0 {
		return
	}
	lo := max(at-8, 0)
	hi := min(at+8, len(items))
	fmt.Fprintf(os.Stderr, "first violation at %d, output window [%d:%d]:\n", at, lo, hi)
	spew.Fdump(os.Stderr, items[lo:hi])
	if len(input) <= 64 {
		fmt.Fprintln(os.Stderr, "full input:")
		spew.Fdump(os.Stderr, input)
	}
}

// violationIndex locates the first ordering or stability violation, or
// -1 if the items check out.
func violationIndex(items []sorttest.Item) int {
	for i := 1; i < len(items); i++ {
		if items[i].Value < items[i-1].Value {
			return i
		}
		if items[i].Value == items[i-1].Value && items[i].Index < items[i-1].Index {
			return i
		}
	}
	return -1
}
