// Package msort provides a stable, adaptive merge sort for slices.
//
// The sort is comparison based and runs in O(n log n) worst case, but it
// exploits existing order: already-sorted input is verified with a single
// linear scan and no allocation, and partially sorted input is sorted with
// far fewer comparisons and moves than a from-scratch sort.
//
// # Algorithm
//
// The implementation is a merge sort over natural runs, in the spirit of
// TimSort but considerably simpler:
//
//   - Ascending runs are detected right to left; runs shorter than four
//     elements are extended by rotating the next element into place.
//   - Detected runs are held on a small stack and merged only when a run
//     grows longer than half of its right neighbor, which keeps merges
//     balanced without a fixed block size.
//   - A merge first checks whether the runs are already in order (one
//     comparison) or occupy disjoint value ranges (one block move), and
//     falls back to a buffered interleave otherwise.
//   - Scratch storage holds only the left run of each merge, is created
//     lazily on the first merge that needs it, and lives for a single call,
//     so concurrent sorts of different slices need no coordination.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-mergesort/msort"
//
//	func SortScores(scores []float64) {
//	    msort.Sort(scores) // in-place ascending sort
//	}
//
//	func SortRows(rows []Row) {
//	    msort.SortFunc(rows, func(a, b Row) bool { return a.Key < b.Key })
//	}
//
// Sorting is stable: elements that compare equal keep their original order,
// which matters when sorting by one field of a larger record, or when
// sorting repeatedly by different keys.
//
// # Performance
//
// Compared to the standard library, the sweet spot is data with existing
// structure: sorted and near-sorted input, concatenated sorted blocks, and
// reversed blocks all hit the fast paths. For fully random input the cost
// is comparable to sort.SliceStable. Callers that sort many slices of the
// same element type can reuse scratch storage through a Buffer.
package msort
