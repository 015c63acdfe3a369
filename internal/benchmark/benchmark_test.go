package benchmark

import (
	"errors"
	"testing"
	"time"

	"github.com/mwiater/palbench/internal/inputgen"
	"github.com/mwiater/palbench/internal/metrics"
	"github.com/mwiater/palbench/internal/palindrome"
	"github.com/mwiater/palbench/internal/sampler"
)

func TestRunLength(t *testing.T) {
	samples, err := Run(palindrome.CountArray, 5, 10, inputgen.Homogenous)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(samples) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s < 0 {
			t.Fatalf("sample %d negative: %v", i, s)
		}
	}
}

func TestRunInvalidArguments(t *testing.T) {
	cases := []struct {
		name string
		fn   sampler.Func
		runs int
		size int
		mode inputgen.Mode
	}{
		{"zero runs", palindrome.CountArray, 0, 10, inputgen.Random},
		{"negative runs", palindrome.CountArray, -3, 10, inputgen.Random},
		{"negative size", palindrome.CountArray, 1, -1, inputgen.Random},
		{"unknown mode", palindrome.CountArray, 1, 10, inputgen.Mode(17)},
		{"nil func", nil, 1, 10, inputgen.Random},
	}
	for _, tc := range cases {
		_, err := Run(tc.fn, tc.runs, tc.size, tc.mode)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", tc.name, err)
		}
	}
}

func TestRunFreshInputPerIteration(t *testing.T) {
	var inputs [][]byte
	fn := func(b []byte) bool {
		inputs = append(inputs, b)
		return true
	}
	if _, err := Run(fn, 4, 16, inputgen.Spread); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(inputs) != 4 {
		t.Fatalf("expected 4 calls, got %d", len(inputs))
	}
	for i := 1; i < len(inputs); i++ {
		if &inputs[i][0] == &inputs[i-1][0] {
			t.Fatalf("iteration %d reused the previous input buffer", i)
		}
	}
}

func TestRunPreservesChronologicalOrder(t *testing.T) {
	orig := sampleOnce
	t.Cleanup(func() { sampleOnce = orig })

	next := time.Duration(100)
	sampleOnce = func(sampler.Func, []byte) time.Duration {
		next -= 10
		return next
	}

	samples, err := Run(palindrome.CountArray, 3, 1, inputgen.Homogenous)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := metrics.SampleSet{90, 80, 70}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("samples = %v, want %v", samples, want)
		}
	}
}

func TestRunGeneratorFailure(t *testing.T) {
	orig := generateInput
	t.Cleanup(func() { generateInput = orig })

	boom := errors.New("boom")
	generateInput = func(int, inputgen.Mode) ([]byte, error) { return nil, boom }

	if _, err := Run(palindrome.CountArray, 2, 1, inputgen.Random); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}
}

func TestRunEndToEndPercentile(t *testing.T) {
	samples, err := Run(palindrome.ParityBits, 1000, 1024, inputgen.Random)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(samples) != 1000 {
		t.Fatalf("expected 1000 samples, got %d", len(samples))
	}

	samples.Sort()
	summary, err := metrics.Reduce(samples)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if summary.P98 != samples[980] {
		t.Fatalf("p98 %v is not the 981st smallest sample %v", summary.P98, samples[980])
	}
	if summary.Min > summary.Average || summary.Average > summary.Max {
		t.Fatalf("ordering violated: %+v", summary)
	}
}
