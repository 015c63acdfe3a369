// internal/sampler/sampler.go
// Package sampler times single invocations of a function under test.
package sampler

import (
	"sync/atomic"
	"time"
)

// Func is the contract for every function under test: pure, deterministic and free of
// observable side effects.
type Func func(input []byte) bool

var (
	// sink receives every result so the call can never be proven dead.
	sink atomic.Bool
	// barrier is only touched by fence.
	barrier atomic.Uint64
)

// fence is a full barrier. Go's atomic read-modify-write operations are sequentially
// consistent and the compiler does not move memory operations across them.
//
//go:noinline
func fence() {
	barrier.Add(1)
}

// consume publishes a result through the sink.
//
//go:noinline
func consume(result bool) {
	sink.Store(result)
}

// Sample invokes fn exactly once on input and returns the elapsed monotonic time.
// The clock reads are bracketed by barriers so neither the compiler nor the CPU can
// move them across the call. The result is never negative.
//
//go:noinline
func Sample(fn Func, input []byte) time.Duration {
	fence()
	start := time.Now()
	fence()
	consume(fn(input))
	fence()
	end := time.Now()
	fence()

	// Sub uses the monotonic readings carried by both values.
	elapsed := end.Sub(start)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Last reports the most recent result written to the sink.
func Last() bool {
	return sink.Load()
}
