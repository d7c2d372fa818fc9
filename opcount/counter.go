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

package opcount

import "fmt"

// Counter accumulates comparison and assignment counts.
//
// Both fields only grow until Reset is called. The zero value is ready to use.
type Counter struct {
	Comparisons uint64
	Assignments uint64
}

// AddComparisons records k comparisons.
func (c *Counter) AddComparisons(k uint64) {
	c.Comparisons += k
}

// AddAssignments records k assignments.
func (c *Counter) AddAssignments(k uint64) {
	c.Assignments += k
}

// Reset sets both counts to zero.
func (c *Counter) Reset() {
	c.Comparisons = 0
	c.Assignments = 0
}

// Merge adds the counts of o into c.
func (c *Counter) Merge(o Counter) {
	c.Comparisons += o.Comparisons
	c.Assignments += o.Assignments
}

// EnergyProxy returns Comparisons + Assignments.
func (c Counter) EnergyProxy() uint64 {
	return c.Comparisons + c.Assignments
}

// IsZero reports whether no operation has been recorded.
func (c Counter) IsZero() bool {
	return c.Comparisons == 0 && c.Assignments == 0
}

func (c Counter) String() string {
	return fmt.Sprintf("{comparisons=%d, assignments=%d}", c.Comparisons, c.Assignments)
}
