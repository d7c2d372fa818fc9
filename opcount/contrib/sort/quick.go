// Copyright 2025 go-highway Authors
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

package sort

import (
	"cmp"
	"fmt"
	"math/rand/v2"

	"github.com/ajroetker/go-opcount/opcount"
)

// Source picks pivot indices. It returns a value in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Range is an inclusive [Low, High] span of indices awaiting partitioning.
type Range struct {
	Low, High int
}

// QuickSort sorts data in place.
func QuickSort[T cmp.Ordered](data []T, c *opcount.Counter) {
	if len(data) == 0 {
		return
	}
	QuickSortFunc(data, c, nil, 0, len(data)-1, cmp.Compare[T])
}

// QuickSortRange sorts data[low:high+1] in place, leaving the rest of data
// untouched. It panics if the range does not lie within data.
func QuickSortRange[T cmp.Ordered](data []T, c *opcount.Counter, low, high int) {
	QuickSortFunc(data, c, nil, low, high, cmp.Compare[T])
}

// QuickSortFunc sorts data[low:high+1] in place, ordering elements with cmp
// and drawing pivots from src. A nil src uses the math/rand/v2 global
// generator. An empty data is a no-op whatever the bounds; otherwise it panics
// if the range does not lie within data.
func QuickSortFunc[T any](data []T, c *opcount.Counter, src Source, low, high int, cmp func(a, b T) int) {
	if len(data) == 0 {
		return
	}
	checkRange(len(data), low, high)
	if src == nil {
		src = globalSource{}
	}

	var stack rangeStack
	stack.push(Range{Low: low, High: high})

	for stack.len() > 0 {
		r := stack.pop()
		if r.Low >= r.High {
			continue
		}

		p := partitionImpl(data, c, src, r.Low, r.High, cmp)

		// Singletons and empty ranges are already in place.
		if p-1 > r.Low {
			stack.push(Range{Low: r.Low, High: p - 1})
		}
		if p+1 < r.High {
			stack.push(Range{Low: p + 1, High: r.High})
		}
	}
}

// Partition rearranges data[low:high+1] around a pivot chosen uniformly from
// that range and returns the pivot's final index. Elements <= pivot end up
// before it and elements > pivot after it. A nil src uses the math/rand/v2
// global generator. It panics if the range does not lie within data.
func Partition[T cmp.Ordered](data []T, c *opcount.Counter, src Source, low, high int) int {
	return PartitionFunc(data, c, src, low, high, cmp.Compare[T])
}

// PartitionFunc is like Partition but orders elements with cmp.
func PartitionFunc[T any](data []T, c *opcount.Counter, src Source, low, high int, cmp func(a, b T) int) int {
	checkRange(len(data), low, high)
	if src == nil {
		src = globalSource{}
	}
	return partitionImpl(data, c, src, low, high, cmp)
}

// partitionImpl is the Lomuto partition with a random pivot moved to high.
func partitionImpl[T any](data []T, c *opcount.Counter, src Source, low, high int, cmp func(a, b T) int) int {
	pivotIndex := low + src.IntN(high-low+1)
	swap(data, c, pivotIndex, high)

	pivot := data[high]
	c.AddAssignments(PivotBindCost)

	i := low - 1
	for j := low; j < high; j++ {
		c.AddComparisons(1)
		if cmp(data[j], pivot) <= 0 {
			i++
			swap(data, c, i, j)
		}
	}

	swap(data, c, i+1, high)
	return i + 1
}

// swap exchanges data[i] and data[j], charging SwapCost even when i == j.
func swap[T any](data []T, c *opcount.Counter, i, j int) {
	data[i], data[j] = data[j], data[i]
	c.AddAssignments(SwapCost)
}

// checkRange panics unless 0 <= low <= high < n.
func checkRange(n, low, high int) {
	if low < 0 || high >= n || low > high {
		panic(fmt.Sprintf("sort: range [%d, %d] out of bounds for length %d", low, high, n))
	}
}
