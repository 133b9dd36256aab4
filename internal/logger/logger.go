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

// FromEnv creates a stderr logger whose level comes from DOCFORGE_LOG
// (debug, info, warn, error); unset or unknown values mean info.
func FromEnv() *Logger {
	level := log.InfoLevel
	if v := os.Getenv("DOCFORGE_LOG"); v != "" {
		if parsed, err := log.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	return NewWithLevel(os.Stderr, level)
}

// BuildStarted logs the start of a site build
func (l *Logger) BuildStarted(sourceDir, outputDir string) {
	l.Info("build started",
		"source_dir", sourceDir,
		"output_dir", outputDir)
}

// BuildCompleted logs the completion of a site build
func (l *Logger) BuildCompleted(filesRendered int, errors int, duration time.Duration) {
	l.Info("build completed",
		"files_rendered", filesRendered,
		"errors", errors,
		"duration", duration.Round(time.Millisecond))
}

// FileRendered logs a successfully rendered file
func (l *Logger) FileRendered(source, dest string) {
	l.Info("file rendered",
		"source", source,
		"dest", dest)
}

// ConversionError logs a conversion error
func (l *Logger) ConversionError(source string, err error) {
	l.Error("conversion failed",
		"source", source,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(sourceDir, outputDir string) {
	l.Debug("config loaded",
		"source_dir", sourceDir,
		"output_dir", outputDir)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}
