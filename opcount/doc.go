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

// Package opcount provides the operation counter shared by the instrumented
// sorting engines in opcount/contrib/sort.
//
// A Counter records two quantities while an algorithm runs:
//   - Comparisons: element-to-element comparisons
//   - Assignments: element reads/writes, with a swap charged as 3 units
//
// Their sum is the energy proxy: a hardware-independent stand-in for the
// energy a sort consumes.
//
// # Example Usage
//
//	var c opcount.Counter
//	out := sort.MergeSort(data, &c)
//	fmt.Println(c.Comparisons, c.Assignments, c.EnergyProxy())
//
// # Ownership
//
// A Counter is not synchronized. Pass a pointer to one Counter through a
// single sort call and read it after the call returns. Concurrent sorts must
// each use their own Counter; combine the snapshots afterwards with Merge.
package opcount
