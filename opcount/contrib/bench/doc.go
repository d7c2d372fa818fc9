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

// Package bench runs repetition sweeps of the instrumented sorting engines
// and summarizes their operation counts and timings.
//
// A sweep is the cross product of input sizes and scenarios. For every
// (size, scenario) cell the Runner repeats a trial Repetitions times: it
// generates a fresh array, sorts it with MergeSort and QuickSort using a
// fresh opcount.Counter each, and times both. Averages per algorithm are
// reported as Results.
//
// An optional Meter brackets each cell to attach externally measured energy
// and emissions. Both algorithms in a cell share the same reading.
//
// Trials within a cell run on a workerpool.Pool; cells run concurrently up to
// Options.Parallel. Each trial owns its arrays and counters, and results are
// aggregated only after all trials of a cell have returned.
package bench
