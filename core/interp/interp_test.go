package interp

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"
)

// fakeSysops keeps working-directory state in memory so dispatch logic
// runs without a real process or terminal.
type fakeSysops struct {
	cwd  string
	env  map[string]string
	dirs map[string]bool
}

func newFakeSysops() *fakeSysops {
	return &fakeSysops{
		cwd: "/",
		env: map[string]string{EnvHome: "/home/tester"},
		dirs: map[string]bool{
			"/":            true,
			"/home/tester": true,
			"/tmp":         true,
		},
	}
}

func (f *fakeSysops) Chdir(dir string) error {
	if !f.dirs[dir] {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}
	f.cwd = dir
	return nil
}

func (f *fakeSysops) Getenv(key string) string { return f.env[key] }

// fakeLauncher records launches with deterministic PIDs and mimics the
// real launcher's user-visible output.
type fakeLauncher struct {
	err      error
	lastPID  int
	launched []Command
}

func (f *fakeLauncher) Launch(s *Session, cmd Command) error {
	if f.err != nil {
		return f.err
	}
	f.lastPID++
	pid := 1000 + f.lastPID
	f.launched = append(f.launched, cmd)
	s.Events.CommandStarted(cmd.Args, pid, cmd.Background)

	if cmd.Background {
		fmt.Fprintf(s.Stdout, "Started background process with PID %d\n", pid)
		return nil
	}
	fmt.Fprintf(s.Stdout, "ran %s\n", cmd)
	s.Events.CommandExited(cmd.Args, pid, 0)
	return nil
}

// newTestSession returns a session over fakes with stdout and stderr
// combined into the returned buffer.
func newTestSession(t *testing.T) (*Session, *fakeLauncher, *bytes.Buffer) {
	t.Helper()

	launcher := &fakeLauncher{}
	sess := NewSession(newFakeSysops(), launcher)

	buf := &bytes.Buffer{}
	sess.Stdin = io.NopCloser(strings.NewReader(""))
	sess.Stdout = buf
	sess.Stderr = buf
	return sess, launcher, buf
}
