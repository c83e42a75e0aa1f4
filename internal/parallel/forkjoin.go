package parallel

import (
	"fmt"
	"runtime"
	"sync"
)

// Limiter bounds the number of extra goroutines a recursive computation may
// spawn. Callers that fail to acquire a slot run the work inline, so the
// recursion never blocks waiting for a token.
type Limiter struct {
	tokens chan struct{}
}

// NewLimiter creates a Limiter with n slots. n <= 0 selects GOMAXPROCS.
func NewLimiter(n int) *Limiter {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &Limiter{tokens: make(chan struct{}, n)}
}

// TryAcquire takes a slot without blocking.
func (l *Limiter) TryAcquire() bool {
	if l == nil {
		return false
	}
	select {
	case l.tokens <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release returns a slot taken by TryAcquire.
func (l *Limiter) Release() {
	<-l.tokens
}

// Cap returns the number of slots.
func (l *Limiter) Cap() int {
	if l == nil {
		return 0
	}
	return cap(l.tokens)
}

// ForkJoin runs left on a new goroutine when a slot is available and right on
// the calling goroutine, then waits for both. Without a slot both run inline,
// left first. A panic in the forked goroutine is re-raised on the caller.
func ForkJoin(l *Limiter, left, right func()) {
	if !l.TryAcquire() {
		left()
		right()
		return
	}

	var wg sync.WaitGroup
	var recovered any
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer l.Release()
		defer func() {
			if r := recover(); r != nil {
				recovered = r
			}
		}()
		left()
	}()
	right()
	wg.Wait()
	if recovered != nil {
		panic(fmt.Sprintf("parallel: forked task panicked: %v", recovered))
	}
}

// Run executes every task concurrently and returns the first error.
func Run(tasks ...func() error) error {
	var ec ErrorCollector
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func() {
			defer wg.Done()
			ec.SetError(task())
		}()
	}
	wg.Wait()
	return ec.Err()
}
