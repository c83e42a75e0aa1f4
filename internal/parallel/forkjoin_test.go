package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestLimiterTryAcquire(t *testing.T) {
	t.Parallel()
	l := NewLimiter(2)
	if l.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2", l.Cap())
	}
	if !l.TryAcquire() || !l.TryAcquire() {
		t.Fatal("expected two free slots")
	}
	if l.TryAcquire() {
		t.Fatal("third acquire should fail")
	}
	l.Release()
	if !l.TryAcquire() {
		t.Fatal("slot should be free after Release")
	}
}

func TestNilLimiterRunsInline(t *testing.T) {
	t.Parallel()
	var l *Limiter
	if l.TryAcquire() {
		t.Fatal("nil limiter must never grant a slot")
	}
	var order []string
	ForkJoin(l, func() { order = append(order, "left") }, func() { order = append(order, "right") })
	if len(order) != 2 || order[0] != "left" || order[1] != "right" {
		t.Errorf("inline order = %v, want [left right]", order)
	}
}

func TestForkJoinRunsBoth(t *testing.T) {
	t.Parallel()
	l := NewLimiter(0)
	var count atomic.Int32
	var recurse func(depth int)
	recurse = func(depth int) {
		if depth == 0 {
			count.Add(1)
			return
		}
		ForkJoin(l, func() { recurse(depth - 1) }, func() { recurse(depth - 1) })
	}
	recurse(8)
	if got := count.Load(); got != 256 {
		t.Errorf("leaf count = %d, want 256", got)
	}
}

func TestForkJoinPropagatesPanic(t *testing.T) {
	t.Parallel()
	l := NewLimiter(1)
	defer func() {
		if recover() == nil {
			t.Error("expected panic from forked task")
		}
	}()
	ForkJoin(l, func() { panic("boom") }, func() {})
}

func TestRunReturnsFirstError(t *testing.T) {
	t.Parallel()
	want := errors.New("failed")
	err := Run(
		func() error { return nil },
		func() error { return want },
		func() error { return nil },
	)
	if !errors.Is(err, want) {
		t.Errorf("Run() = %v, want %v", err, want)
	}
	if err := Run(); err != nil {
		t.Errorf("Run() with no tasks = %v, want nil", err)
	}
}
