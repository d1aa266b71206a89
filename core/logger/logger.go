// Package logger is a newline-delimited JSON event log for interpreter
// sessions.
package logger

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// EventType distinguishes log entries.
type EventType string

const (
	SessionStart   EventType = "session_start"
	CommandStart   EventType = "command_start"
	CommandExit    EventType = "command_exit"
	BackgroundExit EventType = "background_exit"
	BuiltinFail    EventType = "builtin_fail"
	LaunchFail     EventType = "launch_fail"
)

// Event is one log entry.
type Event struct {
	Time       time.Time `json:"time"`
	Type       EventType `json:"type"`
	Args       []string  `json:"args,omitempty"`
	PID        int       `json:"pid,omitempty"`
	Status     int       `json:"status,omitempty"`
	Background bool      `json:"background,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Logger writes Events as JSON lines. The zero-value-adjacent nil
// Logger is valid and discards everything, so callers never guard
// their logging calls. Safe for concurrent use; the background reaper
// logs from its own goroutine.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	now func() time.Time
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

func (l *Logger) record(event Event) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	event.Time = l.now()
	// Encode errors are swallowed: the log must never break the
	// interpreter loop.
	_ = l.enc.Encode(event)
}

// SessionStarted records the start of a prompt loop.
func (l *Logger) SessionStarted() {
	l.record(Event{Type: SessionStart})
}

// CommandStarted records a successful spawn.
func (l *Logger) CommandStarted(args []string, pid int, background bool) {
	l.record(Event{Type: CommandStart, Args: args, PID: pid, Background: background})
}

// CommandExited records a foreground child's exit status.
func (l *Logger) CommandExited(args []string, pid, status int) {
	l.record(Event{Type: CommandExit, Args: args, PID: pid, Status: status})
}

// BackgroundExited records a reaped background child's exit status.
func (l *Logger) BackgroundExited(args []string, pid, status int) {
	l.record(Event{Type: BackgroundExit, Args: args, PID: pid, Status: status})
}

// BuiltinFailed records a builtin that could not apply its effect.
func (l *Logger) BuiltinFailed(args []string, err error) {
	l.record(Event{Type: BuiltinFail, Args: args, Error: err.Error()})
}

// LaunchFailed records a spawn that never produced a child.
func (l *Logger) LaunchFailed(args []string, err error) {
	l.record(Event{Type: LaunchFail, Args: args, Error: err.Error()})
}

// ReadJSONLinesLog parses a newline-delimited JSON log, calling handler
// for each entry.
func ReadJSONLinesLog(r io.Reader, handler func(e *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			return err
		}
		handler(&event)
	}
	return nil
}
