// internal/logging/logging.go
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to stdout, teeing into the given file
// when logPath is non-empty. Parent directories are created as needed.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

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

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close detaches and closes the log file, if one was opened.
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

// LogEvent writes a formatted event line through the standard logger.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogFilter records one filter application: which tool/column it targeted
// and the payload (spec value, clause, or result summary).
func LogFilter(stage, tool string, column int, payload any) {
	log.Println(buildFilterMessage(stage, tool, column, payload))
}

func buildFilterMessage(stage, tool string, column int, payload any) string {
	st := strings.TrimSpace(stage)
	if st != "" {
		st = strings.ToUpper(st)
	}
	toolValue := strings.TrimSpace(tool)
	if toolValue == "" {
		toolValue = "unknown"
	}
	parts := []string{fmt.Sprintf("[%s]", st)}
	parts = append(parts, fmt.Sprintf("tool=%s", toolValue))
	if column >= 0 {
		parts = append(parts, fmt.Sprintf("column=%d", column))
	}
	parts = append(parts, fmt.Sprintf("payload=%s", formatPayload(payload)))
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
