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

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-opcount/opcount"
	"github.com/ajroetker/go-opcount/opcount/contrib/scenario"
	"github.com/ajroetker/go-opcount/opcount/contrib/sort"
	"github.com/ajroetker/go-opcount/opcount/contrib/workerpool"
)

var (
	// ErrInvalidOptions is returned by NewRunner for unusable Options.
	ErrInvalidOptions = errors.New("invalid bench options")

	// ErrVerification is returned when Options.Verify is set and a sort
	// produced something other than a sorted permutation of its input.
	ErrVerification = errors.New("sort verification failed")
)

// Algorithm names a sorting engine.
type Algorithm string

const (
	MergeSort Algorithm = "MergeSort"
	QuickSort Algorithm = "QuickSort"
)

// Cell is one (size, scenario) point of a sweep.
type Cell struct {
	N        int
	Scenario scenario.Scenario
}

func (c Cell) String() string { return fmt.Sprintf("%s/%d", c.Scenario, c.N) }

// Sample is one algorithm's measurement within a trial.
type Sample struct {
	Counts  opcount.Counter
	Elapsed time.Duration
}

// Trial holds both algorithms' samples for one generated array.
type Trial struct {
	Merge Sample
	Quick Sample
}

// Result is the per-algorithm average over a cell's repetitions.
type Result struct {
	Algorithm      Algorithm         `json:"algo" yaml:"algo"`
	N              int               `json:"n" yaml:"n"`
	Scenario       scenario.Scenario `json:"mode" yaml:"mode"`
	Repetitions    int               `json:"repetitions" yaml:"repetitions"`
	AvgTimeMs      float64           `json:"avg_time_ms" yaml:"avg_time_ms"`
	AvgComparisons float64           `json:"avg_comp" yaml:"avg_comp"`
	AvgAssignments float64           `json:"avg_assign" yaml:"avg_assign"`
	EnergyProxy    float64           `json:"energy_proxy" yaml:"energy_proxy"`
	EnergyJoule    *float64          `json:"energy_joule" yaml:"energy_joule"`
	EmissionsKg    *float64          `json:"emissions_kg" yaml:"emissions_kg"`
}

// Options configures a Runner.
type Options struct {
	Sizes       []int
	Scenarios   []scenario.Scenario // empty means scenario.All()
	Repetitions int

	// Workers is the number of trials of a cell run concurrently.
	// Values above 1 make timings noisier; counts are unaffected.
	Workers int

	// Parallel is the number of cells run concurrently. Overlapping cells
	// share the host, so Meter readings overlap too.
	Parallel int

	// Seed, when set, makes generated arrays and pivot choices reproducible.
	Seed *uint64

	// Verify checks every sort output against the input.
	Verify bool

	Meter  Meter
	Logger *zap.Logger
}

func (o Options) normalize() (Options, error) {
	if len(o.Sizes) == 0 {
		return o, fmt.Errorf("%w: no sizes", ErrInvalidOptions)
	}
	for _, n := range o.Sizes {
		if n < 0 {
			return o, fmt.Errorf("%w: negative size %d", ErrInvalidOptions, n)
		}
	}
	o.Sizes = lo.Uniq(o.Sizes)

	if len(o.Scenarios) == 0 {
		o.Scenarios = scenario.All()
	}
	for _, s := range o.Scenarios {
		if !s.Valid() {
			return o, fmt.Errorf("%w: scenario %q: %w", ErrInvalidOptions, s, scenario.ErrInvalidArgument)
		}
	}
	o.Scenarios = lo.Uniq(o.Scenarios)

	if o.Repetitions < 1 {
		return o, fmt.Errorf("%w: repetitions must be >= 1, got %d", ErrInvalidOptions, o.Repetitions)
	}
	o.Workers = max(o.Workers, 1)
	o.Parallel = max(o.Parallel, 1)

	if o.Meter == nil {
		o.Meter = NopMeter{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o, nil
}

// Runner executes sweeps. It is safe to call Run and RunCell concurrently.
type Runner struct {
	opts Options
	pool *workerpool.Pool
	log  *zap.Logger
}

// NewRunner validates opts and starts the trial pool. Call Close when done.
func NewRunner(opts Options) (*Runner, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return &Runner{
		opts: opts,
		pool: workerpool.New(opts.Workers),
		log:  opts.Logger,
	}, nil
}

// Close stops the trial pool.
func (r *Runner) Close() {
	r.pool.Close()
}

// Options returns the normalized options.
func (r *Runner) Options() Options {
	return r.opts
}

// Cells returns the sweep in reporting order: sizes outer, scenarios inner.
func (r *Runner) Cells() []Cell {
	cells := make([]Cell, 0, len(r.opts.Sizes)*len(r.opts.Scenarios))
	for _, n := range r.opts.Sizes {
		for _, s := range r.opts.Scenarios {
			cells = append(cells, Cell{N: n, Scenario: s})
		}
	}
	return cells
}

// Run executes every cell and returns two Results per cell, MergeSort first,
// in Cells order.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	cells := r.Cells()
	results := make([]Result, 2*len(cells))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Parallel)
	for i, cell := range cells {
		g.Go(func() error {
			m, q, err := r.RunCell(gctx, cell)
			if err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}
			results[2*i], results[2*i+1] = m, q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunCell runs Repetitions trials of one cell and returns the averaged
// MergeSort and QuickSort results.
func (r *Runner) RunCell(ctx context.Context, cell Cell) (merge, quick Result, err error) {
	if cell.N < 0 || !cell.Scenario.Valid() {
		return merge, quick, fmt.Errorf("%w: cell %s", ErrInvalidOptions, cell)
	}

	label := fmt.Sprintf("DivideConquer_%s_%d", cell.Scenario, cell.N)
	tracker, err := r.opts.Meter.Start(ctx, label)
	if err != nil {
		return merge, quick, fmt.Errorf("start meter: %w", err)
	}

	start := time.Now()
	trials := make([]Trial, r.opts.Repetitions)
	runErr := r.pool.Run(ctx, len(trials), func(ctx context.Context, i int) error {
		t, err := r.runTrial(cell, i)
		trials[i] = t
		return err
	})

	reading, stopErr := tracker.Stop()
	if runErr != nil {
		return merge, quick, runErr
	}
	if stopErr != nil {
		return merge, quick, fmt.Errorf("stop meter: %w", stopErr)
	}

	merge = summarize(MergeSort, cell, lo.Map(trials, func(t Trial, _ int) Sample { return t.Merge }), reading)
	quick = summarize(QuickSort, cell, lo.Map(trials, func(t Trial, _ int) Sample { return t.Quick }), reading)

	r.log.Info("cell finished",
		zap.Int("n", cell.N),
		zap.Stringer("scenario", cell.Scenario),
		zap.Int("repetitions", r.opts.Repetitions),
		zap.Duration("elapsed", time.Since(start)),
		zap.Float64("merge_energy_proxy", merge.EnergyProxy),
		zap.Float64("quick_energy_proxy", quick.EnergyProxy),
	)
	return merge, quick, nil
}

// runTrial generates one array and sorts it with both engines.
func (r *Runner) runTrial(cell Cell, trial int) (Trial, error) {
	var (
		genSrc   scenario.Source
		pivotSrc sort.Source
	)
	if rng := r.trialRand(cell, trial); rng != nil {
		genSrc, pivotSrc = rng, rng
	}

	base, err := scenario.GenerateRand(cell.N, cell.Scenario, genSrc)
	if err != nil {
		return Trial{}, err
	}

	var t Trial

	start := time.Now()
	merged := sort.MergeSort(base, &t.Merge.Counts)
	t.Merge.Elapsed = time.Since(start)

	quick := slices.Clone(base)
	start = time.Now()
	sort.QuickSortFunc(quick, &t.Quick.Counts, pivotSrc, 0, len(quick)-1, cmp.Compare[int])
	t.Quick.Elapsed = time.Since(start)

	if r.opts.Verify {
		if err := verify(base, merged); err != nil {
			return t, fmt.Errorf("%s %s trial %d: %w", MergeSort, cell, trial, err)
		}
		if err := verify(base, quick); err != nil {
			return t, fmt.Errorf("%s %s trial %d: %w", QuickSort, cell, trial, err)
		}
	}

	r.log.Debug("trial finished",
		zap.Stringer("cell", cell),
		zap.Int("trial", trial),
		zap.Stringer("merge", t.Merge.Counts),
		zap.Stringer("quick", t.Quick.Counts),
	)
	return t, nil
}

// trialRand returns the per-trial generator for seeded runs, else nil.
// Each (cell, trial) gets its own PCG stream so results do not depend on
// which worker runs the trial.
func (r *Runner) trialRand(cell Cell, trial int) *rand.Rand {
	if r.opts.Seed == nil {
		return nil
	}
	stream := uint64(cell.N)<<20 ^ uint64(slices.Index(scenario.All(), cell.Scenario))<<16 ^ uint64(trial)
	return rand.New(rand.NewPCG(*r.opts.Seed, stream))
}

// verify checks that got is a sorted permutation of in.
func verify(in, got []int) error {
	if !slices.IsSorted(got) {
		return fmt.Errorf("%w: output not sorted", ErrVerification)
	}
	want := slices.Clone(in)
	slices.Sort(want)
	if !slices.Equal(want, got) {
		return fmt.Errorf("%w: output is not a permutation of the input", ErrVerification)
	}
	return nil
}

func summarize(algo Algorithm, cell Cell, samples []Sample, reading Reading) Result {
	reps := float64(len(samples))
	comps := lo.SumBy(samples, func(s Sample) uint64 { return s.Counts.Comparisons })
	assigns := lo.SumBy(samples, func(s Sample) uint64 { return s.Counts.Assignments })
	elapsed := lo.SumBy(samples, func(s Sample) time.Duration { return s.Elapsed })

	return Result{
		Algorithm:      algo,
		N:              cell.N,
		Scenario:       cell.Scenario,
		Repetitions:    len(samples),
		AvgTimeMs:      float64(elapsed) / float64(time.Millisecond) / reps,
		AvgComparisons: float64(comps) / reps,
		AvgAssignments: float64(assigns) / reps,
		EnergyProxy:    float64(comps+assigns) / reps,
		EnergyJoule:    reading.Joules(),
		EmissionsKg:    reading.EmissionsKg,
	}
}
