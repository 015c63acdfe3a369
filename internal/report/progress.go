// internal/report/progress.go
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/mwiater/palbench/internal/benchmark"
)

const progressWidth = 30

// Progress draws a static bar after each completed candidate. It never runs while a
// candidate is being timed.
type Progress struct {
	out io.Writer
	bar progress.Model
}

// NewProgress returns a Progress that writes to out.
func NewProgress(out io.Writer) *Progress {
	return &Progress{
		out: out,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
	}
}

// Line formats the progress after done of total candidates.
func (p *Progress) Line(done, total int, candidate string) string {
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	return fmt.Sprintf("%s %d/%d %s", p.bar.ViewAs(pct), done, total, candidate)
}

// Update implements benchmark.ProgressFunc.
func (p *Progress) Update(done, total int, res benchmark.Result) {
	fmt.Fprintln(p.out, p.Line(done, total, res.Candidate))
}
