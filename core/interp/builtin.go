package interp

import "fmt"

// DispatchResult reports what the builtin dispatcher did with a command.
type DispatchResult int

const (
	// NotBuiltin means the command name matched no builtin and control
	// should pass to the process launcher.
	NotBuiltin DispatchResult = iota
	// HandledOK means a builtin ran and applied its effect.
	HandledOK
	// HandledFailed means a builtin ran but could not apply its effect;
	// the session state is unchanged.
	HandledFailed
)

// Builtin applies a command to the interpreter's own state rather than
// to a spawned process.
type Builtin interface {
	Main(s *Session, args []string) DispatchResult
}

// BuiltinFunc adapts a plain function to the Builtin interface.
type BuiltinFunc func(s *Session, args []string) DispatchResult

func (f BuiltinFunc) Main(s *Session, args []string) DispatchResult {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// AllBuiltins maps command names to their implementations. Matching is
// exact string equality on the first argument, case-sensitive.
var AllBuiltins = map[string]Builtin{
	"exit":  BuiltinFunc(Exit),
	"quit":  BuiltinFunc(Exit),
	"cd":    BuiltinFunc(Cd),
	"chdir": BuiltinFunc(Cd),
}

// Dispatch routes args[0] to a builtin if one matches. Callers must not
// pass an empty vector; empty commands are filtered before dispatch.
func Dispatch(s *Session, args []string) DispatchResult {
	builtin, ok := AllBuiltins[args[0]]
	if !ok {
		return NotBuiltin
	}
	return builtin.Main(s, args)
}

// Exit clears the session run-state. Handles both exit and quit.
func Exit(s *Session, args []string) DispatchResult {
	s.Running = false
	return HandledOK
}

// Cd changes the working directory, defaulting to the home-directory
// lookup when no target is given. Extra arguments are ignored. On
// failure the directory and run-state are left untouched.
func Cd(s *Session, args []string) DispatchResult {
	switch len(args) {
	case 1:
		args = append(args, s.Sys.Getenv(EnvHome))
		fallthrough
	default:
		if err := s.Sys.Chdir(args[1]); err != nil {
			fmt.Fprintf(s.Stderr, "%s: %v\n", args[0], err)
			s.Events.BuiltinFailed(args, err)
			return HandledFailed
		}
	}
	return HandledOK
}
