package usage

import "fmt"

// TypeConversion is returned when an option value cannot be converted to the
// option's declared kind.
func TypeConversion(command, flag, value, kind string) *Error {
	return &Error{
		Kind:    ErrTypeConversion,
		Message: fmt.Sprintf("%s: option '%s' expects a %s value, got '%s'", command, flag, kind, value),
	}
}
