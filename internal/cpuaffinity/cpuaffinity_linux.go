//go:build linux

package cpuaffinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Pin locks the goroutine to its OS thread and restricts that thread to cpu.
// Passing Disabled returns a no-op Release.
func Pin(cpu int) (Release, error) {
	if cpu == Disabled {
		return noop, nil
	}

	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return noop, fmt.Errorf("read affinity: %w", err)
	}
	if cpu < 0 || !prev.IsSet(cpu) {
		runtime.UnlockOSThread()
		return noop, fmt.Errorf("%w: %d", ErrInvalidCPU, cpu)
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return noop, fmt.Errorf("pin to cpu %d: %w", cpu, err)
	}

	return func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}, nil
}

// Allowed returns the CPUs the current thread may run on.
func Allowed() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("read affinity: %w", err)
	}
	var cpus []int
	for cpu := 0; len(cpus) < set.Count(); cpu++ {
		if set.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}
	return cpus, nil
}
