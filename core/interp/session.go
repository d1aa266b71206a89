package interp

import (
	"io"
	"os"

	"github.com/minsh-sh/minsh/core/logger"
)

// EnvHome is the variable consulted when cd is invoked with no target.
const EnvHome = "HOME"

// DefaultPrompt is printed before each read unless configured otherwise.
const DefaultPrompt = "minsh: "

// Sysops is the slice of operating-system state the interpreter reads
// or mutates. The real implementation forwards to the os package; tests
// substitute a fake so dispatch logic runs without changing the test
// process's actual working directory.
type Sysops interface {
	Chdir(dir string) error
	Getenv(key string) string
}

type realSysops struct{}

func (realSysops) Chdir(dir string) error   { return os.Chdir(dir) }
func (realSysops) Getenv(key string) string { return os.Getenv(key) }

// NewSysops returns a Sysops backed by the real operating system.
func NewSysops() Sysops {
	return realSysops{}
}

type homeOverride struct {
	Sysops
	home string
}

func (h homeOverride) Getenv(key string) string {
	if key == EnvHome {
		return h.home
	}
	return h.Sysops.Getenv(key)
}

// OverrideHome returns a Sysops whose home-directory lookup yields home,
// delegating everything else to sys.
func OverrideHome(sys Sysops, home string) Sysops {
	return homeOverride{Sysops: sys, home: home}
}

// Session carries the interpreter's state through one prompt loop.
// It replaces what would otherwise be process globals so builtin and
// launcher logic can be exercised in isolation.
type Session struct {
	// Running is the interpreter run-state; the prompt loop continues
	// while it is true. Only the exit and quit builtins clear it.
	Running bool

	Sys      Sysops
	Launcher Launcher

	// Events receives the session event log. A nil logger discards.
	Events *logger.Logger

	// Reap enables waiting on detached background children. Off by
	// default: the interpreter historically forgets them once started.
	Reap bool

	Prompt string
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

// NewSession returns a running session wired to the process's stdio.
func NewSession(sys Sysops, launcher Launcher) *Session {
	return &Session{
		Running:  true,
		Sys:      sys,
		Launcher: launcher,
		Prompt:   DefaultPrompt,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}
