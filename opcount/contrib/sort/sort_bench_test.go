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
	"slices"
	"testing"

	"github.com/ajroetker/go-opcount/opcount"
)

func BenchmarkMergeSort_1000(b *testing.B) {
	benchmarkMergeSort(b, 1000)
}

func BenchmarkMergeSort_10000(b *testing.B) {
	benchmarkMergeSort(b, 10000)
}

func BenchmarkMergeSort_100000(b *testing.B) {
	benchmarkMergeSort(b, 100000)
}

func benchmarkMergeSort(b *testing.B, n int) {
	ref := randomInts(n, 1)
	var c opcount.Counter

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reset()
		_ = MergeSort(ref, &c)
	}
	b.ReportMetric(float64(c.EnergyProxy()), "ops/sort")
}

func BenchmarkQuickSort_1000(b *testing.B) {
	benchmarkQuickSort(b, 1000)
}

func BenchmarkQuickSort_10000(b *testing.B) {
	benchmarkQuickSort(b, 10000)
}

func BenchmarkQuickSort_100000(b *testing.B) {
	benchmarkQuickSort(b, 100000)
}

func benchmarkQuickSort(b *testing.B, n int) {
	ref := randomInts(n, 1)
	data := make([]int, n)
	var c opcount.Counter

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		c.Reset()
		QuickSort(data, &c)
	}
	b.ReportMetric(float64(c.EnergyProxy()), "ops/sort")
}

func BenchmarkQuickSortSorted_10000(b *testing.B) {
	n := 10000
	ref := make([]int, n)
	for i := range ref {
		ref[i] = i
	}
	data := make([]int, n)
	var c opcount.Counter

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		c.Reset()
		QuickSort(data, &c)
	}
}

// Standard library comparison benchmark
func BenchmarkStdlib_10000(b *testing.B) {
	ref := randomInts(10000, 1)
	data := make([]int, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}
