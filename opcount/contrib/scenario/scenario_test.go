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

package scenario

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestGenerateSorted(t *testing.T) {
	got, err := Generate(5, Sorted)
	if err != nil {
		t.Fatalf("Generate(5, sorted): %v", err)
	}
	if want := []int{0, 1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("Generate(5, sorted) = %v, want %v", got, want)
	}
}

func TestGenerateReversed(t *testing.T) {
	got, err := Generate(5, Reversed)
	if err != nil {
		t.Fatalf("Generate(5, reversed): %v", err)
	}
	if want := []int{5, 4, 3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("Generate(5, reversed) = %v, want %v", got, want)
	}
}

func TestGenerateEmpty(t *testing.T) {
	for _, s := range All() {
		got, err := Generate(0, s)
		if err != nil {
			t.Fatalf("Generate(0, %s): %v", s, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("Generate(0, %s) = %#v, want empty slice", s, got)
		}
	}
}

func TestGenerateRandomBounds(t *testing.T) {
	sizes := []int{1, 7, 100, 10000}
	for _, n := range sizes {
		data, err := Generate(n, Random)
		if err != nil {
			t.Fatalf("Generate(%d, random): %v", n, err)
		}
		if len(data) != n {
			t.Fatalf("len = %d, want %d", len(data), n)
		}
		for i, v := range data {
			if v < 0 || v > MaxRandomValue {
				t.Fatalf("data[%d] = %d out of [0, %d]", i, v, MaxRandomValue)
			}
		}
	}
}

func TestGenerateRandSeeded(t *testing.T) {
	a, err := GenerateRand(64, Random, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateRand(64, Random, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Errorf("same seed produced different arrays")
	}
}

// maxSource always returns the largest permitted value.
type maxSource struct{}

func (maxSource) IntN(n int) int { return n - 1 }

func TestGenerateRandInclusiveUpperBound(t *testing.T) {
	data, err := GenerateRand(3, Random, maxSource{})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range data {
		if v != MaxRandomValue {
			t.Errorf("got %d, want %d", v, MaxRandomValue)
		}
	}
}

func TestGenerateSortedIsDeterministic(t *testing.T) {
	for _, s := range []Scenario{Sorted, Reversed} {
		a, _ := Generate(1000, s)
		b, _ := Generate(1000, s)
		if !slices.Equal(a, b) {
			t.Errorf("%s: repeated calls differ", s)
		}
	}
}

func TestGenerateInvalidScenario(t *testing.T) {
	_, err := Generate(5, Scenario("shuffled"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Generate(shuffled) err = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerateNegativeSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Generate(-1) did not panic")
		}
	}()
	_, _ = Generate(-1, Sorted)
}

func TestParse(t *testing.T) {
	for _, s := range All() {
		got, err := Parse(string(s))
		if err != nil || got != s {
			t.Errorf("Parse(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := Parse("RANDOM"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Parse(RANDOM) err = %v, want ErrInvalidArgument", err)
	}
	if _, err := Parse(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Parse(\"\") err = %v, want ErrInvalidArgument", err)
	}
}
