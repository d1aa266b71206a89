package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(buf)
	fixed := time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	l.SessionStarted()
	l.CommandStarted([]string{"ls", "-la"}, 42, true)
	l.CommandExited([]string{"true"}, 43, 0)
	l.BackgroundExited([]string{"sleep", "1"}, 42, 0)
	l.BuiltinFailed([]string{"cd", "/nope"}, errors.New("no such directory"))
	l.LaunchFailed([]string{"zzz"}, errors.New("command not found"))

	var events []*Event
	require.NoError(t, ReadJSONLinesLog(buf, func(e *Event) {
		events = append(events, e)
	}))

	require.Len(t, events, 6)
	assert.Equal(t, SessionStart, events[0].Type)

	assert.Equal(t, CommandStart, events[1].Type)
	assert.Equal(t, []string{"ls", "-la"}, events[1].Args)
	assert.Equal(t, 42, events[1].PID)
	assert.True(t, events[1].Background)
	assert.Equal(t, fixed, events[1].Time)

	assert.Equal(t, CommandExit, events[2].Type)
	assert.Equal(t, BackgroundExit, events[3].Type)

	assert.Equal(t, BuiltinFail, events[4].Type)
	assert.Equal(t, "no such directory", events[4].Error)

	assert.Equal(t, LaunchFail, events[5].Type)
	assert.Equal(t, "command not found", events[5].Error)
}

func TestNilLoggerDiscards(t *testing.T) {
	var l *Logger

	// Must not panic; a session without a configured log uses nil.
	l.SessionStarted()
	l.CommandStarted([]string{"ls"}, 1, false)
	l.CommandExited([]string{"ls"}, 1, 0)
	l.BuiltinFailed([]string{"cd"}, errors.New("nope"))
}

func TestReadJSONLinesLogRejectsGarbage(t *testing.T) {
	err := ReadJSONLinesLog(strings.NewReader("{not json\n"), func(e *Event) {})

	assert.Error(t, err)
}
