// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable pool for running
// independent benchmark trials in parallel. A Pool is created once per
// experiment and reused for every (size, scenario) cell, so repetition sweeps
// do not pay goroutine spawn cost per cell.
//
// Trials must not share mutable state: give each trial its own input copy and
// its own opcount.Counter, and aggregate after Run returns.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	samples := make([]opcount.Counter, reps)
//	err := pool.Run(ctx, reps, func(ctx context.Context, i int) error {
//	    data := slices.Clone(input)
//	    sort.QuickSort(data, &samples[i])
//	    return nil
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a Run call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Calling Close multiple times is safe.
// Run calls made after Close execute on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run calls fn for every trial index in [0, n) and blocks until all claimed
// trials finish. Workers claim indices atomically, so uneven trial cost is
// balanced across workers.
//
// The first error returned by fn cancels the context passed to the other
// trials, stops unclaimed trials from starting, and is returned. If ctx is
// cancelled first, Run returns ctx.Err().
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	var nextIdx atomic.Int64
	claim := func() {
		for {
			if ctx.Err() != nil {
				return
			}
			idx := int(nextIdx.Add(1)) - 1
			if idx >= n {
				return
			}
			if err := fn(ctx, idx); err != nil {
				fail(err)
				return
			}
		}
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		claim()
	} else {
		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			p.workC <- workItem{fn: claim, barrier: &wg}
		}
		wg.Wait()
	}

	if firstErr != nil {
		return firstErr
	}
	return context.Cause(ctx)
}
