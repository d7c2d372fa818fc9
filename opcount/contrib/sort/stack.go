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

// rangeStack is the LIFO work stack used by QuickSortFunc. The first
// rangeStackDepth entries live inline; deeper stacks spill to a slice.
type rangeStack struct {
	a    [rangeStackDepth]Range
	aLen int // -1 when using s
	s    []Range
}

func (rs *rangeStack) push(r Range) {
	switch {
	case rs.aLen == -1:
		rs.s = append(rs.s, r)
	case rs.aLen == len(rs.a):
		rs.s = make([]Range, rs.aLen+1, 2*rs.aLen)
		copy(rs.s, rs.a[:])
		rs.s[rs.aLen] = r
		rs.aLen = -1
	default:
		rs.a[rs.aLen] = r
		rs.aLen++
	}
}

func (rs *rangeStack) pop() Range {
	if rs.aLen == -1 {
		r := rs.s[len(rs.s)-1]
		rs.s = rs.s[:len(rs.s)-1]
		return r
	}
	rs.aLen--
	return rs.a[rs.aLen]
}

func (rs *rangeStack) len() int {
	if rs.aLen == -1 {
		return len(rs.s)
	}
	return rs.aLen
}
