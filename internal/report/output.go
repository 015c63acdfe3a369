// internal/report/output.go
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ErrOutputUnavailable is returned when the requested output file could not be written.
// The report has already been written to the fallback stream when it is returned.
var ErrOutputUnavailable = errors.New("output destination unavailable")

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Deliver writes data to the file at path, or to stdout when path is empty. If the file
// cannot be created or written, data goes to fallback (normally stderr) after a warning
// and ErrOutputUnavailable is returned so the caller can still exit non-zero.
func Deliver(data []byte, path string, stdout, fallback io.Writer, colored bool) error {
	if strings.TrimSpace(path) == "" {
		_, err := stdout.Write(data)
		return err
	}

	err := writeFile(path, data)
	if err == nil {
		return nil
	}

	warn := color.New(color.FgYellow, color.Bold)
	if colored {
		warn.EnableColor()
	} else {
		warn.DisableColor()
	}
	fmt.Fprintln(fallback, warn.Sprintf("opening output file %s failed (%v), printing results to stderr:", path, err))
	if _, ferr := fallback.Write(data); ferr != nil {
		return fmt.Errorf("%w: %v; fallback: %v", ErrOutputUnavailable, err, ferr)
	}
	return fmt.Errorf("%w: %v", ErrOutputUnavailable, err)
}

func writeFile(path string, data []byte) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
