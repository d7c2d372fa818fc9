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

import "testing"

func TestRangeStackLIFO(t *testing.T) {
	var s rangeStack
	if s.len() != 0 {
		t.Fatalf("len() = %d, want 0", s.len())
	}

	n := 3 * rangeStackDepth
	for i := range n {
		s.push(Range{Low: i, High: i + 1})
		if s.len() != i+1 {
			t.Fatalf("after %d pushes len() = %d", i+1, s.len())
		}
	}

	for i := n - 1; i >= 0; i-- {
		r := s.pop()
		if r.Low != i || r.High != i+1 {
			t.Fatalf("pop() = %+v, want {%d %d}", r, i, i+1)
		}
	}
	if s.len() != 0 {
		t.Errorf("len() = %d after draining, want 0", s.len())
	}
}

func TestRangeStackInline(t *testing.T) {
	var s rangeStack
	for i := range rangeStackDepth {
		s.push(Range{Low: i})
	}
	if s.aLen != rangeStackDepth || s.s != nil {
		t.Errorf("stack spilled before exceeding inline depth")
	}
	s.push(Range{Low: rangeStackDepth})
	if s.aLen != -1 || len(s.s) != rangeStackDepth+1 {
		t.Errorf("stack did not spill: aLen=%d len(s)=%d", s.aLen, len(s.s))
	}
}
