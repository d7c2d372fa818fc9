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
	"slices"

	"github.com/ajroetker/go-opcount/opcount"
)

// MergeSort returns a sorted copy of data. data is not modified.
func MergeSort[T cmp.Ordered](data []T, c *opcount.Counter) []T {
	return MergeSortFunc(data, c, cmp.Compare[T])
}

// MergeSortFunc is like MergeSort but orders elements with cmp, which must
// implement a strict weak ordering returning a negative number, zero or a
// positive number as in slices.SortFunc. Equal elements keep their input order.
func MergeSortFunc[T any](data []T, c *opcount.Counter, cmp func(a, b T) int) []T {
	out := slices.Clone(data)
	if len(out) <= 1 {
		return out
	}
	buf := make([]T, len(out))
	mergeSortImpl(out, buf, c, cmp)
	return out
}

// mergeSortImpl sorts data using buf (same length) as merge scratch space.
func mergeSortImpl[T any](data, buf []T, c *opcount.Counter, cmp func(a, b T) int) {
	n := len(data)
	if n <= 1 {
		return
	}

	mid := n / 2
	mergeSortImpl(data[:mid], buf[:mid], c, cmp)
	mergeSortImpl(data[mid:], buf[mid:], c, cmp)

	mergeInto(buf, data[:mid], data[mid:], c, cmp)
	copy(data, buf)
}

// Merge merges two sorted slices into a new sorted slice.
func Merge[T cmp.Ordered](left, right []T, c *opcount.Counter) []T {
	return MergeFunc(left, right, c, cmp.Compare[T])
}

// MergeFunc is like Merge but orders elements with cmp. On ties the element
// from left is taken first.
func MergeFunc[T any](left, right []T, c *opcount.Counter, cmp func(a, b T) int) []T {
	dst := make([]T, len(left)+len(right))
	mergeInto(dst, left, right, c, cmp)
	return dst
}

// mergeInto writes the merge of left and right to dst, which must have room
// for len(left)+len(right) elements and must not overlap either input.
func mergeInto[T any](dst, left, right []T, c *opcount.Counter, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		c.AddComparisons(1)
		if cmp(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		c.AddAssignments(1)
		k++
	}

	// Drain the remaining side. No comparisons needed.
	k += copy(dst[k:], left[i:])
	c.AddAssignments(uint64(len(left) - i))
	copy(dst[k:], right[j:])
	c.AddAssignments(uint64(len(right) - j))
}
