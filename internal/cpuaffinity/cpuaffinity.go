// internal/cpuaffinity/cpuaffinity.go
// Package cpuaffinity pins the calling goroutine's OS thread to a single CPU for the
// duration of a measurement.
package cpuaffinity

import "errors"

var (
	// ErrUnsupported is returned on platforms without thread affinity control.
	ErrUnsupported = errors.ErrUnsupported
	// ErrInvalidCPU is returned when the requested CPU is not in the allowed set.
	ErrInvalidCPU = errors.New("cpu not available to this process")
)

// Disabled is the CPU value that skips pinning.
const Disabled = -1

// Release undoes a Pin. It must run on the same goroutine that called Pin.
type Release func()

func noop() {}
