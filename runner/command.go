package runner

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/kballard/go-shellquote"
)

var (
	// ErrEmptyCommand is returned for a command line or Command with no program name.
	ErrEmptyCommand = errors.New("no program name")

	// ErrNilCommand is returned when a nil *Command is run.
	ErrNilCommand = errors.New("nil command")
)

// Command is one local program invocation. Cmd is resolved against PATH at
// start time when it contains no slash, exactly as code under test would.
type Command struct {
	Cmd  string
	Args []string
	Env  []string // appended to the current environment, KEY=VALUE
	Dir  string

	// Run always captures stdout and stderr; writers set here get a copy.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewCommand returns a Command running name with args.
func NewCommand(name string, args ...string) *Command {
	return &Command{Cmd: name, Args: args}
}

// ParseCommand builds a Command from a command line such as
// `mock_temp --unit 'deg C'`. Words are split with shell quoting rules but
// nothing is expanded: `$HOME` stays literal.
func ParseCommand(line string) (*Command, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", line, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("cannot parse %q: %w", line, ErrEmptyCommand)
	}

	return NewCommand(words[0], words[1:]...), nil
}

// Validate reports ErrNilCommand or ErrEmptyCommand.
func (c *Command) Validate() error {
	switch {
	case c == nil:
		return ErrNilCommand
	case strings.TrimSpace(c.Cmd) == "":
		return ErrEmptyCommand
	default:
		return nil
	}
}

// String renders the command as a line ParseCommand reads back unchanged.
func (c *Command) String() string {
	return shellquote.Join(append([]string{c.Cmd}, c.Args...)...)
}
