// Package logger is a standardized event logging framework for the shell.
// Logging is best-effort: a failed write never interrupts the pipeline.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/abhii767/Minishell/core/execute"
)

// LogRecorder is a callback that stores entries in an external datastore.
type LogRecorder func(le *LogEntry) error

// LogEntry captures one event. Command fields are empty for session events.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	Event           string `json:"event"`
	Raw             string `json:"raw,omitempty"`
	Translated      string `json:"translated,omitempty"`
	Expanded        string `json:"expanded,omitempty"`
	Outcome         string `json:"outcome,omitempty"`
	ExitCode        int    `json:"exit_code,omitempty"`
	Error           string `json:"error,omitempty"`
}

const (
	eventSessionStart = "session_start"
	eventCommandRun   = "command_run"
)

// Logger records shell events. A nil Logger discards everything.
type Logger struct {
	Record LogRecorder

	// Now is the time source, overridable for deterministic tests.
	Now func() time.Time
}

// NewJSONLinesLogger creates a Logger that exports entries in newline
// delimited JSON object format.
func NewJSONLinesLogger(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

func (l *Logger) record(le *LogEntry) {
	if l == nil || l.Record == nil {
		return
	}

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	le.TimestampMicros = now().UnixNano() / int64(time.Microsecond)

	// Best effort.
	_ = l.Record(le)
}

// SessionStart records the start of an interactive session.
func (l *Logger) SessionStart(platform string) {
	l.record(&LogEntry{
		Event: eventSessionStart,
		Raw:   platform,
	})
}

// CommandRun records one trip through the interpretation pipeline.
func (l *Logger) CommandRun(raw, translated, expanded string, outcome execute.Outcome) {
	le := &LogEntry{
		Event:      eventCommandRun,
		Raw:        raw,
		Translated: translated,
		Expanded:   expanded,
		Outcome:    string(outcome.Status),
		ExitCode:   outcome.ExitCode,
	}
	if outcome.Err != nil {
		le.Error = outcome.Err.Error()
	}
	l.record(le)
}
