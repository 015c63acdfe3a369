// internal/metrics/types.go
package metrics

import (
	"slices"
	"time"
)

// SampleSet holds one elapsed time per repetition, in the order the repetitions ran
// until Sort is called.
type SampleSet []time.Duration

// Sort orders the samples ascending in place, as Reduce expects.
func (s SampleSet) Sort() {
	slices.Sort(s)
}

// Sorted returns an ascending copy and leaves s in chronological order.
func (s SampleSet) Sorted() SampleSet {
	out := slices.Clone(s)
	out.Sort()
	return out
}

// Summary is the reduced view of a completed sample set. It is computed once and
// never mutated afterwards.
type Summary struct {
	Min     time.Duration `json:"min_ns" yaml:"min_ns"`
	Max     time.Duration `json:"max_ns" yaml:"max_ns"`
	Average time.Duration `json:"avg_ns" yaml:"avg_ns"`
	P98     time.Duration `json:"p98_ns" yaml:"p98_ns"`
	Count   int           `json:"count" yaml:"count"`
}
