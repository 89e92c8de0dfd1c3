package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrNoCommand
	ErrInvalidFlag
	ErrMissingOption
	ErrMissingValue
	ErrTypeConversion
)

// Exit codes:
//
//	Exit 1: Environment/dispatch errors
//	  - Unknown errors
//	  - Unknown command
//	  - No command given
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing required option
//	  - Valued flag with no value
//	  - Option value of the wrong type
var exitCodes = map[ErrorKind]int{
	ErrUnknown:        1,
	ErrUnknownCommand: 1,
	ErrNoCommand:      1,
	ErrInvalidFlag:    2,
	ErrMissingOption:  2,
	ErrMissingValue:   2,
	ErrTypeConversion: 2,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
func (e *Error) GetExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// ExitCode returns the exit code for any error: the kind-derived code for a
// usage error, 1 otherwise.
func ExitCode(err error) int {
	if ue, ok := err.(*Error); ok {
		return ue.GetExitCode()
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
