package dispatchers

import (
	"io"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shayne/yargs"

	"github.com/serumstudio/hype.cli/pkg/command"
	"github.com/serumstudio/hype.cli/pkg/style"
	"github.com/serumstudio/hype.cli/pkg/usage"
)

const defaultSuggestionsCount = 3

// Dispatcher runs the single-shot pipeline: materialize every registered
// command, parse the process arguments, enforce required options, and
// invoke the matched callable positionally. The registry must be fully
// populated before Run is called; it is treated as read-only here.
type Dispatcher struct {
	prog   string
	reg    *command.Registry
	logger *log.Logger
	styles *style.Sheet
	state  State

	materialized map[string]Materialized
	// required holds the (command, destination) pairs that must have a
	// parsed value for dispatch to proceed.
	required [][2]string
}

func New(prog string, reg *command.Registry, logger *log.Logger, styles *style.Sheet) *Dispatcher {
	return &Dispatcher{
		prog:   prog,
		reg:    reg,
		logger: logger,
		styles: styles,
		state:  StateIdle,
	}
}

// State returns the dispatcher's current pipeline state.
func (d *Dispatcher) State() State {
	return d.state
}

// Run dispatches one invocation. Help output goes to out; any returned
// error is user-facing and carries its exit code (see pkg/usage). The
// command callable is never invoked when an error is returned.
func (d *Dispatcher) Run(args []string, out io.Writer) error {
	invocation := uuid.NewString()

	d.setState(StateMaterializing, invocation)
	d.materialized = make(map[string]Materialized, d.reg.Len())
	d.required = nil
	for _, desc := range d.reg.All() {
		d.materialized[desc.Name] = Materialize(desc)
		for _, opt := range desc.Options {
			if opt.Required {
				d.required = append(d.required, [2]string{desc.Name, opt.Dest})
			}
		}
	}

	if len(args) == 0 {
		RenderRootHelp(out, d.prog, d.reg, d.styles)
		d.setState(StateFailed, invocation)
		return usage.NoCommand(d.prog)
	}
	if d.renderHelp(args, out) {
		d.setState(StateDone, invocation)
		return nil
	}

	d.setState(StateParsing, invocation)
	desc, ok := d.reg.Resolve(args[0])
	if !ok {
		d.setState(StateFailed, invocation)
		return usage.UnknownCommand(d.prog, args[0], Suggest(args[0], d.reg, defaultSuggestionsCount)...)
	}

	m := d.materialized[desc.Name]
	remaining, values := yargs.ConsumeFlagsBySpec(args[1:], m.Specs)
	for short, dest := range m.Aliases {
		if vals, ok := values[short]; ok {
			values[dest] = append(values[dest], vals...)
			delete(values, short)
		}
	}

	// Anything still flag-shaped was not materialized for this command.
	// Tokens after "--" are positionals by convention and pass through.
	for _, tok := range remaining {
		if tok == "--" {
			break
		}
		if strings.HasPrefix(tok, "-") && tok != "-" {
			d.setState(StateFailed, invocation)
			return usage.InvalidFlag(desc.Name, tok)
		}
	}
	// A valued flag with nothing to consume (final token, or directly
	// before another flag) parses to the empty string.
	for dest, vals := range values {
		opt, ok := desc.OptionByDest(dest)
		if !ok || opt.Kind == command.KindBool {
			continue
		}
		for _, v := range vals {
			if v == "" {
				d.setState(StateFailed, invocation)
				return usage.MissingValue(desc.Name, opt.Flag)
			}
		}
	}
	// Command-scoped positionals are accepted but not forwarded; only
	// option values are marshalled into the call.
	d.logger.Debug("parsed arguments",
		"invocation", invocation,
		"command", desc.Name,
		"options", len(values),
		"positionals", len(remaining))

	d.setState(StateValidating, invocation)
	for _, req := range d.required {
		if req[0] != desc.Name {
			continue
		}
		if len(values[req[1]]) == 0 {
			opt, _ := desc.OptionByDest(req[1])
			d.setState(StateFailed, invocation)
			return usage.MissingOption(desc.Name, opt.Flag)
		}
	}

	d.setState(StateInvoking, invocation)
	in := make([]reflect.Value, 0, len(desc.Options))
	for _, opt := range desc.Options {
		vals := values[opt.Dest]
		if len(vals) == 0 {
			in = append(in, reflect.ValueOf(opt.Default))
			continue
		}
		v, err := convert(desc.Name, opt, vals[len(vals)-1])
		if err != nil {
			d.setState(StateFailed, invocation)
			return err
		}
		in = append(in, reflect.ValueOf(v))
	}

	outs := reflect.ValueOf(desc.Func).Call(in)
	d.setState(StateDone, invocation)
	// Registration only admits the error interface as a return type, so the
	// nil check is safe on anything that came through introspection.
	if len(outs) == 1 && outs[0].Kind() == reflect.Interface && !outs[0].IsNil() {
		if err, ok := outs[0].Interface().(error); ok {
			return err
		}
	}
	return nil
}

// renderHelp handles the help surface: a leading "help" token (optionally
// naming a command) or a --help/-h flag before any "--" terminator. Tokens
// after "--" are positionals and never trigger help.
func (d *Dispatcher) renderHelp(args []string, out io.Writer) bool {
	if args[0] == "help" {
		if len(args) > 1 {
			if desc, ok := d.reg.Resolve(args[1]); ok {
				RenderCommandHelp(out, d.prog, desc, d.styles)
				return true
			}
		}
		RenderRootHelp(out, d.prog, d.reg, d.styles)
		return true
	}

	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "--help" || a == "-h" {
			if desc, ok := d.reg.Resolve(args[0]); ok {
				RenderCommandHelp(out, d.prog, desc, d.styles)
			} else {
				RenderRootHelp(out, d.prog, d.reg, d.styles)
			}
			return true
		}
	}
	return false
}

func (d *Dispatcher) setState(s State, invocation string) {
	d.logger.Debug("dispatch state",
		"invocation", invocation,
		"from", d.state.String(),
		"to", s.String())
	d.state = s
}
