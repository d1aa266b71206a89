package interp

import "os/exec"

// reapInBackground waits on a detached child from its own goroutine and
// records the exit. Without it background children stay unreaped for
// the life of the session and show up as defunct processes; that is the
// interpreter's documented default, so reaping is opt-in via Session.Reap.
func (s *Session) reapInBackground(args []string, child *exec.Cmd) {
	pid := child.Process.Pid
	go func() {
		err := child.Wait()
		s.Events.BackgroundExited(args, pid, exitStatus(err))
	}()
}
