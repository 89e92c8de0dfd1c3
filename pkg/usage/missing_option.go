package usage

import "fmt"

// MissingOption is returned when a required option received no value.
func MissingOption(command, flag string) *Error {
	return &Error{
		Kind:    ErrMissingOption,
		Message: fmt.Sprintf("%s: option '%s' is required", command, flag),
	}
}

// MissingValue is returned when a valued flag appears with nothing to
// consume, e.g. as the final token or directly before another flag.
func MissingValue(command, flag string) *Error {
	return &Error{
		Kind:    ErrMissingValue,
		Message: fmt.Sprintf("%s: option '%s' requires a value", command, flag),
	}
}
