package dispatchers

import (
	"reflect"

	"github.com/shayne/yargs"

	"github.com/serumstudio/hype.cli/pkg/command"
)

// Materialized holds one command's flag registrations against the
// underlying parser. Specs is keyed the way yargs matches flags: by name
// with leading punctuation stripped. Aliases maps each short form back to
// its canonical destination so all forms bind to one value.
type Materialized struct {
	Specs   map[string]yargs.ConsumeSpec
	Aliases map[string]string
}

// Materialize registers a descriptor's options with the underlying parsing
// primitive. Boolean options become no-value toggles (yargs never consumes
// the next token for a bool flag); valued options carry their declared
// kind. Materialize is a pure function of the descriptor, so repeated calls
// yield the same flag set.
func Materialize(d *command.Descriptor) Materialized {
	m := Materialized{
		Specs:   make(map[string]yargs.ConsumeSpec, len(d.Options)),
		Aliases: make(map[string]string),
	}
	for _, opt := range d.Options {
		spec := yargs.ConsumeSpec{Kind: reflectKind(opt.Kind)}
		m.Specs[opt.Dest] = spec
		if opt.Short != "" && opt.Short != opt.Dest {
			m.Specs[opt.Short] = spec
			m.Aliases[opt.Short] = opt.Dest
		}
	}
	return m
}

func reflectKind(k command.Kind) reflect.Kind {
	switch k {
	case command.KindInt:
		return reflect.Int
	case command.KindFloat:
		return reflect.Float64
	case command.KindBool:
		return reflect.Bool
	default:
		return reflect.String
	}
}
