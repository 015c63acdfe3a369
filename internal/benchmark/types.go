// internal/benchmark/types.go
package benchmark

import (
	"github.com/mwiater/palbench/internal/inputgen"
	"github.com/mwiater/palbench/internal/metrics"
)

// Options configures a Runner.
type Options struct {
	InputSize int
	RunCount  int
	Mode      inputgen.Mode
	// PinCPU pins measurements to one CPU; cpuaffinity.Disabled (-1) leaves scheduling alone.
	PinCPU int
	// KeepSamples retains the chronological sample set on each Result.
	KeepSamples bool
}

// Result holds the measurement of one candidate.
type Result struct {
	Candidate string            `json:"candidate" yaml:"candidate"`
	Mode      inputgen.Mode     `json:"mode" yaml:"mode"`
	InputSize int               `json:"input_size" yaml:"input_size"`
	RunCount  int               `json:"run_count" yaml:"run_count"`
	PinnedCPU int               `json:"pinned_cpu" yaml:"pinned_cpu"`
	Summary   metrics.Summary   `json:"summary" yaml:"summary"`
	Samples   metrics.SampleSet `json:"samples_ns,omitempty" yaml:"samples_ns,omitempty"`
}

// ProgressFunc is called after each candidate completes, outside any timed region.
type ProgressFunc func(done, total int, result Result)
