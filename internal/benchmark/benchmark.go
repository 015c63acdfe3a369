// internal/benchmark/benchmark.go
// Package benchmark drives repeated generate-then-sample cycles and reduces the results.
package benchmark

import (
	"errors"
	"fmt"

	"github.com/mwiater/palbench/internal/inputgen"
	"github.com/mwiater/palbench/internal/metrics"
	"github.com/mwiater/palbench/internal/sampler"
)

// ErrInvalidArgument is returned for zero run counts, negative sizes and unknown modes.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	generateInput = inputgen.Generate
	sampleOnce    = sampler.Sample
)

// Run times fn runCount times, each time on a freshly generated input of inputSize bytes.
// The returned samples are in chronological order; sort them before metrics.Reduce.
//
// The loop is strictly sequential and keeps no state between iterations other than the
// result slice: every input is owned by its iteration and dropped after sampling.
func Run(fn sampler.Func, runCount, inputSize int, mode inputgen.Mode) (metrics.SampleSet, error) {
	if err := validate(fn, runCount, inputSize, mode); err != nil {
		return nil, err
	}

	samples := make(metrics.SampleSet, 0, runCount)
	for i := 0; i < runCount; i++ {
		input, err := generateInput(inputSize, mode)
		if err != nil {
			return nil, fmt.Errorf("generate input %d: %w", i, err)
		}
		samples = append(samples, sampleOnce(fn, input))
	}
	return samples, nil
}

func validate(fn sampler.Func, runCount, inputSize int, mode inputgen.Mode) error {
	if fn == nil {
		return fmt.Errorf("%w: nil function under test", ErrInvalidArgument)
	}
	if runCount <= 0 {
		return fmt.Errorf("%w: run count must be at least 1, got %d", ErrInvalidArgument, runCount)
	}
	if inputSize < 0 {
		return fmt.Errorf("%w: input size must not be negative, got %d", ErrInvalidArgument, inputSize)
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: unknown generation mode %s", ErrInvalidArgument, mode)
	}
	return nil
}
