package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// DocumentOpened logs a successful document open
func (l *Logger) DocumentOpened(path string, words int) {
	l.Info("document opened",
		"path", path,
		"words", words)
}

// DocumentSaved logs a successful document save
func (l *Logger) DocumentSaved(path string, words int) {
	l.Info("document saved",
		"path", path,
		"words", words)
}

// IOError logs a failed file operation
func (l *Logger) IOError(operation, path string, err error) {
	l.Error("file operation failed",
		"operation", operation,
		"path", path,
		"error", err)
}

// MathDegraded logs a math expression that fell back to literal output
func (l *Logger) MathDegraded(expr string, err error) {
	l.Debug("math expression degraded",
		"expr", expr,
		"error", err)
}

// StoreReset logs a metrics store that was reset after corruption
func (l *Logger) StoreReset(path string, err error) {
	l.Warn("metrics store reset",
		"path", path,
		"error", err)
}

// StoreError logs a metrics persistence error
func (l *Logger) StoreError(operation string, err error) {
	l.Error("metrics store error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(libraryDir, previewMode string, debounce time.Duration) {
	l.Debug("config loaded",
		"library_dir", libraryDir,
		"preview_mode", previewMode,
		"debounce", debounce)
}
