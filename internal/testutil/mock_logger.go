// Package testutil provides shared test doubles used across packages.
package testutil

import (
	"sync"

	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
)

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []logging.Field
}

// RecordingLogger is a Logger implementation that captures every call for
// later assertion.  Safe for concurrent use.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
	with    []logging.Field
}

// NewRecordingLogger returns an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(level, msg string, fields []logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := append(append([]logging.Field{}, l.with...), fields...)
	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, Fields: all})
}

func (l *RecordingLogger) Debug(msg string, fields ...logging.Field) { l.record("debug", msg, fields) }
func (l *RecordingLogger) Info(msg string, fields ...logging.Field)  { l.record("info", msg, fields) }
func (l *RecordingLogger) Warn(msg string, fields ...logging.Field)  { l.record("warn", msg, fields) }
func (l *RecordingLogger) Error(msg string, fields ...logging.Field) { l.record("error", msg, fields) }
func (l *RecordingLogger) Fatal(msg string, fields ...logging.Field) { l.record("fatal", msg, fields) }

func (l *RecordingLogger) With(fields ...logging.Field) logging.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &RecordingLogger{with: append(append([]logging.Field{}, l.with...), fields...), entries: l.entries}
}

func (l *RecordingLogger) Named(string) logging.Logger { return l }

// Entries returns a copy of all captured entries.
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// HasMessage reports whether any captured entry carries the given message.
func (l *RecordingLogger) HasMessage(msg string) bool {
	for _, e := range l.Entries() {
		if e.Message == msg {
			return true
		}
	}
	return false
}
