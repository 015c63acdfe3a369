// internal/logging/logging.go
// Package logging routes lifecycle events to an optional log file and, in debug mode, stderr.
// Benchmark results never pass through here.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	stderr  io.Writer = os.Stderr
)

// Init points the standard logger at logPath (created with parents when missing) and,
// when debug is set, at stderr as well. With neither, log output is discarded.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if debug {
		writers = append(writers, stderr)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file, if any, and sends the standard logger back to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent writes a single formatted line.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogFields writes a tagged line of sorted key=value pairs, e.g. "[BENCH] mode=random size=1024".
func LogFields(tag string, fields map[string]any) {
	log.Println(buildFieldsMessage(tag, fields))
}

func buildFieldsMessage(tag string, fields map[string]any) string {
	tagValue := strings.ToUpper(strings.TrimSpace(tag))
	if tagValue == "" {
		tagValue = "EVENT"
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := []string{fmt.Sprintf("[%s]", tagValue)}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, formatValue(fields[k])))
	}
	return strings.Join(parts, " ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(val) == "" {
			return `""`
		}
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
