package dispatchers

// State tracks the dispatcher through its single-shot pipeline. Failed is
// terminal and reachable from Parsing and Validating; Invoking failures
// belong to the command, not the dispatcher.
type State int

const (
	StateIdle State = iota
	StateMaterializing
	StateParsing
	StateValidating
	StateInvoking
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMaterializing:
		return "materializing"
	case StateParsing:
		return "parsing"
	case StateValidating:
		return "validating"
	case StateInvoking:
		return "invoking"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
