// internal/report/render.go
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"

	"github.com/mwiater/palbench/internal/benchmark"
)

// Render writes r to w in the given format. colored enables ANSI styling for text and table.
func Render(w io.Writer, r Report, format Format, colored bool) error {
	switch format {
	case FormatText:
		return renderText(w, r, colored)
	case FormatTable:
		return renderTable(w, r, colored)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r.document()); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.document()); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Bytes renders r into memory so it can be delivered, or redirected, as a whole.
func Bytes(r Report, format Format, colored bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, r, format, colored); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderText prints one block per candidate with the four statistics in nanoseconds.
func renderText(w io.Writer, r Report, colored bool) error {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.Faint)
	if colored {
		header.EnableColor()
		label.EnableColor()
	} else {
		header.DisableColor()
		label.DisableColor()
	}

	for i, res := range r.Results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		lines := []struct {
			name  string
			value int64
		}{
			{"min time", res.Summary.Min.Nanoseconds()},
			{"max time", res.Summary.Max.Nanoseconds()},
			{"avg time", res.Summary.Average.Nanoseconds()},
			{"98th percentile time", res.Summary.P98.Nanoseconds()},
		}
		if _, err := fmt.Fprintln(w, header.Sprintf("metrics for %s based version (ns):", res.Candidate)); err != nil {
			return err
		}
		for _, l := range lines {
			if _, err := fmt.Fprintf(w, "\t%s %d\n", label.Sprint(l.name+":"), l.value); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderTable prints all candidates side by side with their average relative to the fastest.
func renderTable(w io.Writer, r Report, colored bool) error {
	fastest := fastestAverage(r.Results)

	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		rows = append(rows, []string{
			res.Candidate,
			strconv.FormatInt(res.Summary.Min.Nanoseconds(), 10),
			strconv.FormatInt(res.Summary.Max.Nanoseconds(), 10),
			strconv.FormatInt(res.Summary.Average.Nanoseconds(), 10),
			strconv.FormatInt(res.Summary.P98.Nanoseconds(), 10),
			relative(res.Summary.Average.Nanoseconds(), fastest),
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	if colored {
		headerStyle = headerStyle.Foreground(lipgloss.Color("86"))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CANDIDATE", "MIN (ns)", "MAX (ns)", "AVG (ns)", "P98 (ns)", "VS FASTEST").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if len(r.Results) > 0 {
		res := r.Results[0]
		if _, err := fmt.Fprintf(w, "mode=%s input-size=%d run-count=%d\n", res.Mode, res.InputSize, res.RunCount); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func fastestAverage(results []benchmark.Result) int64 {
	var best int64 = -1
	for _, res := range results {
		avg := res.Summary.Average.Nanoseconds()
		if best < 0 || avg < best {
			best = avg
		}
	}
	return best
}

func relative(avg, fastest int64) string {
	if fastest <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", float64(avg)/float64(fastest))
}
