// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestRun(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	err := pool.Run(context.Background(), n, func(_ context.Context, i int) error {
		results[i] = i * 2
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestRunEachIndexOnce(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 10000
	hits := make([]atomic.Int32, n)
	err := pool.Run(context.Background(), n, func(_ context.Context, i int) error {
		hits[i].Add(1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d ran %d times", i, got)
		}
	}
}

func TestRunZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	err := pool.Run(context.Background(), 0, func(context.Context, int) error {
		called = true
		return nil
	})
	if err != nil || called {
		t.Errorf("Run(0) err=%v called=%v", err, called)
	}
}

func TestRunFirstError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	boom := errors.New("boom")
	err := pool.Run(context.Background(), 1000, func(ctx context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run err = %v, want boom", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	err := pool.Run(ctx, 100, func(context.Context, int) error {
		ran.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run err = %v, want context.Canceled", err)
	}
	if ran.Load() != 0 {
		t.Errorf("%d trials ran under a cancelled context", ran.Load())
	}
}

func TestRunReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for iter := 0; iter < 50; iter++ {
		var sum atomic.Int64
		err := pool.Run(context.Background(), 100, func(_ context.Context, i int) error {
			sum.Add(int64(i))
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if sum.Load() != 4950 {
			t.Fatalf("iter %d: sum = %d, want 4950", iter, sum.Load())
		}
	}
}

func TestRunAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	n := 10
	results := make([]int, n)
	err := pool.Run(context.Background(), n, func(_ context.Context, i int) error {
		results[i] = i + 1
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := range results {
		if results[i] != i+1 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i+1)
		}
	}
}

func TestRunSingleWorkerSequential(t *testing.T) {
	pool := New(1)
	defer pool.Close()

	var order []int
	err := pool.Run(context.Background(), 5, func(_ context.Context, i int) error {
		order = append(order, i)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want 0..4", order)
		}
	}
}
