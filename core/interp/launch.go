package interp

import (
	"errors"
	"fmt"
	"os/exec"
)

// Launcher spawns external programs. The interface seam lets session
// tests run without creating real processes.
type Launcher interface {
	// Launch runs cmd as an external program with the session's
	// environment, working directory, and stdio. Foreground commands
	// block until the child exits; background commands return as soon
	// as the child has started.
	Launch(s *Session, cmd Command) error
}

// ExecLauncher launches real processes via os/exec. Program resolution
// follows the operating system's search-path rules: an explicit path is
// tried directly, otherwise PATH is consulted.
type ExecLauncher struct{}

var _ Launcher = ExecLauncher{}

func (ExecLauncher) Launch(s *Session, cmd Command) error {
	child := exec.Command(cmd.Args[0], cmd.Args[1:]...)
	child.Stdin = s.Stdin
	child.Stdout = s.Stdout
	child.Stderr = s.Stderr

	if err := child.Start(); err != nil {
		return err
	}
	pid := child.Process.Pid
	s.Events.CommandStarted(cmd.Args, pid, cmd.Background)

	if cmd.Background {
		fmt.Fprintf(s.Stdout, "Started background process with PID %d\n", pid)
		// Ownership of the child ends here unless reaping is enabled:
		// nothing waits on it again.
		if s.Reap {
			s.reapInBackground(cmd.Args, child)
		}
		return nil
	}

	// Foreground: serialize with the prompt loop. The exit status is
	// recorded in the event log but not surfaced to the user.
	err := child.Wait()
	s.Events.CommandExited(cmd.Args, pid, exitStatus(err))
	return nil
}

// exitStatus maps a Wait error to a numeric status. A child that ran
// and exited nonzero surfaces as *exec.ExitError; anything else is a
// wait-mechanism failure reported as -1.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
