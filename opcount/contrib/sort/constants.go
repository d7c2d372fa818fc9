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

// Accounting constants. Changing them makes counts incomparable with
// previously recorded runs.
const (
	// SwapCost is the number of assignments charged for one swap.
	SwapCost = 3

	// PivotBindCost is charged when partition reads the pivot value.
	PivotBindCost = 1
)

// rangeStackDepth is the number of ranges the work stack holds inline
// before spilling to the heap.
const rangeStackDepth = 32
