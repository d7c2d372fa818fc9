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
	"fmt"
	"math/rand/v2"
)

// MaxRandomValue is the inclusive upper bound of values produced by Random.
const MaxRandomValue = 10_000_000

// ErrInvalidArgument is returned for an unrecognized scenario name.
var ErrInvalidArgument = errors.New("invalid argument")

// Scenario names an input-generation mode.
type Scenario string

const (
	Random   Scenario = "random"
	Sorted   Scenario = "sorted"
	Reversed Scenario = "reversed"
)

// All returns the recognized scenarios in reporting order.
func All() []Scenario {
	return []Scenario{Random, Sorted, Reversed}
}

// Valid reports whether s is a recognized scenario.
func (s Scenario) Valid() bool {
	switch s {
	case Random, Sorted, Reversed:
		return true
	}
	return false
}

func (s Scenario) String() string { return string(s) }

// Parse converts a scenario name.
func Parse(name string) (Scenario, error) {
	s := Scenario(name)
	if !s.Valid() {
		return "", fmt.Errorf("unknown scenario %q: %w", name, ErrInvalidArgument)
	}
	return s, nil
}

// Source draws random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generate returns an array of length n for scenario s.
// It panics if n is negative.
func Generate(n int, s Scenario) ([]int, error) {
	return GenerateRand(n, s, nil)
}

// GenerateRand is like Generate but draws random values from src.
// A nil src uses the math/rand/v2 global generator.
func GenerateRand(n int, s Scenario, src Source) ([]int, error) {
	if n < 0 {
		panic(fmt.Sprintf("scenario: negative size %d", n))
	}
	if !s.Valid() {
		return nil, fmt.Errorf("unknown scenario %q: %w", string(s), ErrInvalidArgument)
	}

	data := make([]int, n)
	switch s {
	case Random:
		if src == nil {
			src = globalSource{}
		}
		for i := range data {
			data[i] = src.IntN(MaxRandomValue + 1)
		}
	case Sorted:
		for i := range data {
			data[i] = i
		}
	case Reversed:
		for i := range data {
			data[i] = n - i
		}
	}
	return data, nil
}
