package command

// Kind is the declared type of an option value. Only this fixed set of
// primitive kinds is supported; conversion from the raw token happens at
// dispatch time.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Option describes one command parameter as a command-line option. Options
// are created once at registration time and never mutated.
type Option struct {
	// Flag is the user-facing form: "--name" for multi-rune parameter
	// names, "-n" for single-rune ones.
	Flag string

	// Dest is the destination key the parsed value is bound to: the flag
	// with its leading punctuation stripped.
	Dest string

	// Short is an optional single-rune alias bound to the same destination.
	Short string

	// Required is true iff no default value was supplied.
	Required bool

	// Default holds the supplied default, nil when the option is required.
	Default any

	Kind Kind
}

// Descriptor describes one registered command. Descriptors are immutable
// after insertion into the registry and live for the process lifetime.
type Descriptor struct {
	Name    string
	Usage   string
	Help    string
	Aliases []string

	// Options in the declaration order of the callable's parameters. This
	// order is preserved through materialization and call assembly.
	Options []Option

	// Func is the callable invoked on dispatch, retained as given so it
	// stays independently callable by host code.
	Func any
}

// OptionByDest returns the option bound to the given destination key.
func (d *Descriptor) OptionByDest(dest string) (Option, bool) {
	for _, opt := range d.Options {
		if opt.Dest == dest {
			return opt, true
		}
	}
	return Option{}, false
}
