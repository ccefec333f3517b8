// internal/logging/logging.go
// Package logging wraps the standard library logger with an optional file sink.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes log output to stdout and, when logPath is non-empty, appends it
// to the file at logPath as well, creating parent directories as needed.
// Calling Init again closes any previously opened log file.
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

// Close flushes and closes the log file, if one is open, and restores log
// output to stderr.
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

// LogEvent writes a formatted application event to the log.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogRun writes a single measurement run to the log.
func LogRun(workload string, run, total int, micros float64) {
	log.Println(buildRunMessage(workload, run, total, micros))
}

func buildRunMessage(workload string, run, total int, micros float64) string {
	return fmt.Sprintf("[RUN] workload=%s run=%d/%d elapsed=%.3fµs", workload, run, total, micros)
}
