package interp

import "strings"

// BackgroundMarker detaches a command from the prompt loop when it
// appears as its own token. Everything after the marker is discarded.
const BackgroundMarker = "#"

// Command is one parsed input line: the argument vector and whether the
// interpreter should wait for the command to finish.
type Command struct {
	// Args holds the command name followed by its arguments. It grows
	// as needed; long lines are never truncated.
	Args []string
	// Background is true when the line ends the command with the
	// background marker.
	Background bool
}

// Empty reports whether there is nothing to execute. Blank lines and
// lines starting with the background marker both parse to an empty
// command; callers skip dispatch entirely for those.
func (c Command) Empty() bool {
	return len(c.Args) == 0
}

// Name returns the command name, or "" for an empty command.
func (c Command) Name() string {
	if c.Empty() {
		return ""
	}
	return c.Args[0]
}

// String reconstructs a line that tokenizes back to the same vector.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// Tokenize splits a raw input line into a Command. Splitting is
// strictly on whitespace with no quoting or escaping; runs of
// whitespace never produce empty tokens. A token equal to
// BackgroundMarker stops the scan and sets Background. Tokenization
// cannot fail.
func Tokenize(line string) Command {
	var cmd Command
	for _, tok := range strings.Fields(line) {
		if tok == BackgroundMarker {
			cmd.Background = true
			break
		}
		cmd.Args = append(cmd.Args, tok)
	}
	return cmd
}
