// Package sort provides comparison sorts that count the work they do.
//
// Every function takes an *opcount.Counter and charges it as it runs, so the
// caller gets a sorted result together with the number of comparisons and
// assignments spent producing it. The sum of the two is used as an energy
// proxy for comparing algorithms without measuring hardware.
//
// # Algorithms
//
//   - MergeSort: top-down divide and conquer. Returns a new slice and leaves
//     the input untouched. Stable.
//   - QuickSort: in-place quicksort with a uniformly random pivot, driven by
//     an explicit work stack of index ranges instead of recursion. Not stable.
//
// # Cost model
//
// Merge charges one comparison per head-to-head step and one assignment per
// element written to the output. Elements drained after one side runs out
// cost one assignment and no comparison.
//
// Partition charges one comparison per element scanned against the pivot,
// SwapCost (3) assignments per swap, including self-swaps, and PivotBindCost
// (1) assignment for reading the pivot value.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-opcount/opcount/contrib/sort"
//
//	var c opcount.Counter
//	sorted := sort.MergeSort(data, &c) // data unchanged
//
//	c.Reset()
//	sort.QuickSort(data, &c) // data sorted in place
//
// # Randomness
//
// Pivot choice uses math/rand/v2 by default. Pass a seeded *rand.Rand to
// QuickSortFunc or Partition when exact counts must be reproducible.
package sort
