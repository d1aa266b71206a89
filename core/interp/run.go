package interp

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/abiosoft/readline"
)

// ErrInputClosed is returned by Run when the line source reaches
// end-of-input or fails to produce a line. The CLI exits nonzero on it.
var ErrInputClosed = errors.New("input closed")

// Run drives the prompt loop: read a line, interpret it, repeat until
// the run-state clears or input ends.
func (s *Session) Run() error {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(s.Stdin),
		Stdout: s.Stdout,
		Stderr: s.Stderr,
	}
	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	s.Events.SessionStarted()

	for s.Running {
		rl.SetPrompt(s.Prompt)
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return fmt.Errorf("%w: end of input", ErrInputClosed)

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return fmt.Errorf("%w: %v", ErrInputClosed, err)
		}

		s.Interpret(line)
	}
	return nil
}

// Interpret runs one raw input line through the tokenizer, the builtin
// dispatcher, and finally the process launcher. Empty lines are a
// no-op by design, not an error.
func (s *Session) Interpret(line string) {
	cmd := Tokenize(line)
	if cmd.Empty() {
		return
	}

	if res := Dispatch(s, cmd.Args); res != NotBuiltin {
		return
	}

	if err := s.Launcher.Launch(s, cmd); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			fmt.Fprintf(s.Stderr, "%s: command not found\n", cmd.Name())
		} else {
			fmt.Fprintf(s.Stderr, "%s: %v\n", cmd.Name(), err)
		}
		s.Events.LaunchFailed(cmd.Args, err)
	}
}
