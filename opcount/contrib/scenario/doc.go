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

// Package scenario generates the input arrays used to exercise the sorting
// engines under named workloads.
//
// # Scenarios
//
//   - random: values drawn uniformly from [0, MaxRandomValue]
//   - sorted: the strictly increasing sequence 0..n-1
//   - reversed: the strictly decreasing sequence n..1
//
// sorted and reversed are pure functions of n. random uses math/rand/v2 unless
// a Source is supplied through GenerateRand.
package scenario
