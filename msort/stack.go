package msort

// Tuning constants.
const (
	// minRun: a detected run shorter than this is extended by insertion
	// steps before it can take part in a merge.
	minRun = 4

	// maxPendingRuns bounds the run stack. Pending runs at least double
	// in length from the newest entry down, so 64 boundaries cover any
	// slice a 64-bit length can describe.
	maxPendingRuns = 64
)

// runStack records the boundaries of sorted runs awaiting a merge. Runs are
// discovered right to left, so entry 0 is the end of the slice and each
// entry above it is the end of the next run to the left. The start of the
// run ending at entry i is the end of the run at entry i+1 (or the scan
// position, for the newest run).
type runStack struct {
	end [maxPendingRuns]int
	n   int
}

// push records the end boundary of a new pending run.
func (s *runStack) push(end int) {
	s.end[s.n] = end
	s.n++
}

// drop removes the newest boundary after the runs around it were merged.
func (s *runStack) drop() { s.n-- }

// depth returns the number of pending runs.
func (s *runStack) depth() int { return s.n }

// top returns the end boundary of the newest pending run.
func (s *runStack) top() int { return s.end[s.n-1] }

// second returns the end boundary of the run below the newest one.
func (s *runStack) second() int { return s.end[s.n-2] }
