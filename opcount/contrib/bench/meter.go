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

package bench

import "context"

// JoulesPerKWh converts kilowatt-hours to joules.
const JoulesPerKWh = 3_600_000

// Meter measures the energy consumed while a cell runs.
type Meter interface {
	// Start begins a measurement identified by label.
	Start(ctx context.Context, label string) (Tracker, error)
}

// Tracker is a measurement in progress.
type Tracker interface {
	// Stop ends the measurement. It is called exactly once.
	Stop() (Reading, error)
}

// Reading is the outcome of a measurement. Nil fields were not measured.
type Reading struct {
	EnergyKWh   *float64
	EmissionsKg *float64
}

// Joules returns the energy in joules, or nil if it was not measured.
func (r Reading) Joules() *float64 {
	if r.EnergyKWh == nil {
		return nil
	}
	j := *r.EnergyKWh * JoulesPerKWh
	return &j
}

// NopMeter measures nothing.
type NopMeter struct{}

func (NopMeter) Start(context.Context, string) (Tracker, error) { return nopTracker{}, nil }

type nopTracker struct{}

func (nopTracker) Stop() (Reading, error) { return Reading{}, nil }
