// internal/benchmark/runner.go
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/mwiater/palbench/internal/cpuaffinity"
	"github.com/mwiater/palbench/internal/logging"
	"github.com/mwiater/palbench/internal/metrics"
	"github.com/mwiater/palbench/internal/palindrome"
)

var (
	pinCPU  = cpuaffinity.Pin
	runOnce = Run
)

// Runner measures candidates one after another with a fixed set of Options.
type Runner struct {
	opts       Options
	onProgress ProgressFunc
}

// NewRunner validates opts and returns a Runner.
func NewRunner(opts Options) (*Runner, error) {
	if opts.RunCount <= 0 {
		return nil, fmt.Errorf("%w: run count must be at least 1, got %d", ErrInvalidArgument, opts.RunCount)
	}
	if opts.InputSize < 0 {
		return nil, fmt.Errorf("%w: input size must not be negative, got %d", ErrInvalidArgument, opts.InputSize)
	}
	if !opts.Mode.Valid() {
		return nil, fmt.Errorf("%w: unknown generation mode %s", ErrInvalidArgument, opts.Mode)
	}
	if opts.PinCPU < cpuaffinity.Disabled {
		return nil, fmt.Errorf("%w: cpu %d (use %d to disable pinning)", ErrInvalidArgument, opts.PinCPU, cpuaffinity.Disabled)
	}
	return &Runner{opts: opts}, nil
}

// OnProgress registers fn to be called after every completed candidate.
func (r *Runner) OnProgress(fn ProgressFunc) {
	r.onProgress = fn
}

// Options returns the runner's configuration.
func (r *Runner) Options() Options {
	return r.opts
}

// Measure benchmarks a single candidate and reduces its samples.
// ctx is only consulted before measuring; a started run always completes.
func (r *Runner) Measure(ctx context.Context, candidate palindrome.Candidate) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	pinned := r.opts.PinCPU
	release, err := pinCPU(r.opts.PinCPU)
	switch {
	case errors.Is(err, cpuaffinity.ErrUnsupported):
		logging.LogEvent("[BENCH] cpu pinning unsupported on %s, continuing unpinned", runtime.GOOS)
		pinned = cpuaffinity.Disabled
	case err != nil:
		return Result{}, fmt.Errorf("pin cpu: %w", err)
	}
	defer release()

	logging.LogFields("bench", map[string]any{
		"candidate": candidate.Name,
		"mode":      r.opts.Mode,
		"size":      r.opts.InputSize,
		"runs":      r.opts.RunCount,
		"cpu":       pinned,
	})

	// Start from a clean heap so a collection triggered by earlier work is less likely
	// to land inside this candidate's samples.
	runtime.GC()

	samples, err := runOnce(candidate.Func, r.opts.RunCount, r.opts.InputSize, r.opts.Mode)
	if err != nil {
		return Result{}, fmt.Errorf("run %s: %w", candidate.Name, err)
	}

	summary, err := metrics.Reduce(samples.Sorted())
	if err != nil {
		return Result{}, fmt.Errorf("reduce %s: %w", candidate.Name, err)
	}

	result := Result{
		Candidate: candidate.Name,
		Mode:      r.opts.Mode,
		InputSize: r.opts.InputSize,
		RunCount:  r.opts.RunCount,
		PinnedCPU: pinned,
		Summary:   summary,
	}
	if r.opts.KeepSamples {
		result.Samples = samples
	}

	logging.LogEvent("[BENCH] %s done: min=%s max=%s avg=%s p98=%s",
		candidate.Name, summary.Min, summary.Max, summary.Average, summary.P98)
	return result, nil
}

// Compare measures each candidate in turn. Candidates never share inputs: each Measure
// generates its own.
func (r *Runner) Compare(ctx context.Context, candidates []palindrome.Candidate) ([]Result, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates to compare", ErrInvalidArgument)
	}

	results := make([]Result, 0, len(candidates))
	for i, c := range candidates {
		res, err := r.Measure(ctx, c)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if r.onProgress != nil {
			r.onProgress(i+1, len(candidates), res)
		}
	}
	return results, nil
}
