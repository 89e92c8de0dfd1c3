package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the first positional token does not match
// any registered command name or alias.
func UnknownCommand(prog, command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("%s: '%s' is not a %s command. See '%s help'.", prog, command, prog, prog)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("\n\nDid you mean?\n\t%s", strings.Join(suggestions, "\n\t"))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// NoCommand is returned when the process was invoked without any command.
func NoCommand(prog string) *Error {
	return &Error{
		Kind:    ErrNoCommand,
		Message: fmt.Sprintf("%s: no command given", prog),
	}
}
