package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata, matching
// the Metadata() method on zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    *slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance.
func New() *Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		logger: slog.New(handler),
		level:  level,
		output: os.Stderr,
	}
}

// SetVerbose toggles debug-level output.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
}

// SetOutput updates the logger's output destination.
// This is thread-safe and updates the underlying slog handler.
// It preserves the current JSON mode and verbosity settings.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler(w))
}

// SetJSON switches between JSON and pretty logging.
// When enabled, logs are output as JSON. When disabled, pretty-printed logs are used.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable

	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(l.newHandler(w))
}

// newHandler builds the handler for the current mode. Callers must hold the lock.
func (l *Logger) newHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: l.level}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// Debug logs a diagnostic message, visible only in verbose mode.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error, rendering wrapped causes and metadata hierarchically.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// errorEntry is one link of a rendered error chain.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the error chain. zerr errors contribute their
// raw message and metadata and the walk continues through Unwrap; the
// first standard error contributes its full Error() text and ends the walk.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry

	for err != nil {
		m, ok := err.(messager)
		if !ok {
			entries = append(entries, errorEntry{Message: err.Error()})
			break
		}

		entry := errorEntry{Message: m.Message()}
		if md, ok := err.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		err = errors.Unwrap(err)
	}

	return entries
}

// formatErrorEntries renders the chain as a user-facing report:
//
//	Error: <main message>
//	       <metadata>
//
//	  Caused by:
//	    → <cause>
//	      <metadata>
//
// Metadata keys are sorted for deterministic output.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, formatMetadata(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, formatMetadata(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

// formatMetadata renders metadata as indented key: value lines, keys sorted.
func formatMetadata(metadata map[string]any, indent string) []string {
	if len(metadata) == 0 {
		return nil
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		value := fmt.Sprintf("%v", metadata[k])
		valueLines := strings.Split(value, "\n")
		lines = append(lines, indent+k+": "+valueLines[0])
		for _, line := range valueLines[1:] {
			lines = append(lines, indent+strings.Repeat(" ", len(k)+2)+line)
		}
	}
	return lines
}
