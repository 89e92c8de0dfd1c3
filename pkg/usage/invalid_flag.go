package usage

import "fmt"

// InvalidFlag is returned when a flag is not recognized by the invoked
// command.
func InvalidFlag(command, flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("%s: invalid flag '%s'", command, flag),
	}
}
