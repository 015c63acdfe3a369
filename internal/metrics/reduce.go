// internal/metrics/reduce.go
// Package metrics reduces benchmark sample sets into summary statistics.
package metrics

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidArgument marks inputs the reducer cannot summarize.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptySampleSet is returned by Reduce when there is nothing to summarize.
	ErrEmptySampleSet = fmt.Errorf("%w: empty sample set", ErrInvalidArgument)
)

// percentileNumerator over percentileDenominator is the rank used for P98.
const (
	percentileNumerator   = 98
	percentileDenominator = 100
)

// Reduce summarizes samples, which must already be sorted ascending.
//
// P98 is a floor nearest-rank estimate: the element at index floor(n*0.98), clamped to
// n-1. It is not interpolated, so results stay comparable with earlier runs.
func Reduce(samples SampleSet) (Summary, error) {
	n := len(samples)
	if n == 0 {
		return Summary{}, ErrEmptySampleSet
	}

	return Summary{
		Min:     samples[0],
		Max:     samples[n-1],
		Average: average(samples),
		P98:     samples[PercentileIndex(n)],
		Count:   n,
	}, nil
}

// PercentileIndex returns the zero-based index of the 98th percentile in a sorted set of n samples.
func PercentileIndex(n int) int {
	if n <= 0 {
		return 0
	}
	idx := n / percentileDenominator * percentileNumerator
	idx += n % percentileDenominator * percentileNumerator / percentileDenominator
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// average divides each sample before summing, carrying remainders separately, so the
// accumulators stay within int64 for any realistic count and duration.
func average(samples SampleSet) time.Duration {
	n := time.Duration(len(samples))
	var quotients, remainders time.Duration
	for _, d := range samples {
		quotients += d / n
		remainders += d % n
	}
	return quotients + remainders/n
}
