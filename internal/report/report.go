// internal/report/report.go
// Package report renders benchmark results and delivers them to their destination.
package report

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mwiater/palbench/internal/benchmark"
)

// Format selects how a Report is rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range Formats() {
		if f == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want text, table, json or yaml)", ErrUnknownFormat, s)
}

// Report is one rendered benchmark invocation.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	GOOS        string
	GOARCH      string
	GoVersion   string
	Results     []benchmark.Result
}

// New wraps results with run metadata.
func New(results []benchmark.Result) Report {
	return Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		GoVersion:   runtime.Version(),
		Results:     results,
	}
}

// document is the structured (json/yaml) form. Durations are integer nanoseconds.
type document struct {
	RunID       string      `json:"run_id" yaml:"run_id"`
	GeneratedAt string      `json:"generated_at" yaml:"generated_at"`
	Platform    platform    `json:"platform" yaml:"platform"`
	Results     []resultDoc `json:"results" yaml:"results"`
}

type platform struct {
	GOOS      string `json:"goos" yaml:"goos"`
	GOARCH    string `json:"goarch" yaml:"goarch"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

type resultDoc struct {
	Candidate string  `json:"candidate" yaml:"candidate"`
	Mode      string  `json:"mode" yaml:"mode"`
	InputSize int     `json:"input_size" yaml:"input_size"`
	RunCount  int     `json:"run_count" yaml:"run_count"`
	PinnedCPU int     `json:"pinned_cpu" yaml:"pinned_cpu"`
	MinNS     int64   `json:"min_ns" yaml:"min_ns"`
	MaxNS     int64   `json:"max_ns" yaml:"max_ns"`
	AvgNS     int64   `json:"avg_ns" yaml:"avg_ns"`
	P98NS     int64   `json:"p98_ns" yaml:"p98_ns"`
	SamplesNS []int64 `json:"samples_ns,omitempty" yaml:"samples_ns,omitempty"`
}

func (r Report) document() document {
	doc := document{
		RunID:       r.RunID,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339Nano),
		Platform:    platform{GOOS: r.GOOS, GOARCH: r.GOARCH, GoVersion: r.GoVersion},
		Results:     make([]resultDoc, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		rd := resultDoc{
			Candidate: res.Candidate,
			Mode:      res.Mode.String(),
			InputSize: res.InputSize,
			RunCount:  res.RunCount,
			PinnedCPU: res.PinnedCPU,
			MinNS:     res.Summary.Min.Nanoseconds(),
			MaxNS:     res.Summary.Max.Nanoseconds(),
			AvgNS:     res.Summary.Average.Nanoseconds(),
			P98NS:     res.Summary.P98.Nanoseconds(),
		}
		if len(res.Samples) > 0 {
			rd.SamplesNS = make([]int64, len(res.Samples))
			for i, s := range res.Samples {
				rd.SamplesNS[i] = s.Nanoseconds()
			}
		}
		doc.Results = append(doc.Results, rd)
	}
	return doc
}
