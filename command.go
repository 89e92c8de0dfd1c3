package hype

import (
	"fmt"

	"github.com/serumstudio/hype.cli/pkg/command"
	"github.com/serumstudio/hype.cli/pkg/introspect"
)

// Param names one parameter of a command callable. See introspect.Param.
type Param = introspect.Param

type commandConfig struct {
	name    string
	usage   string
	help    string
	aliases []string
	params  []Param
}

// CommandOption configures a single command registration.
type CommandOption func(*commandConfig)

// WithCommandName sets the command name. Defaults to the callable's own
// function name.
func WithCommandName(name string) CommandOption {
	return func(c *commandConfig) {
		c.name = name
	}
}

// WithUsage sets the usage string shown in help output.
func WithUsage(usage string) CommandOption {
	return func(c *commandConfig) {
		c.usage = usage
	}
}

// WithHelp sets the help text shown in help output.
func WithHelp(help string) CommandOption {
	return func(c *commandConfig) {
		c.help = help
	}
}

// WithAliases sets alternate names resolving to the same command.
func WithAliases(aliases ...string) CommandOption {
	return func(c *commandConfig) {
		c.aliases = aliases
	}
}

// WithParams names the callable's parameters in declaration order and
// supplies defaults and short aliases. A parameter without a default is a
// required option.
func WithParams(params ...Param) CommandOption {
	return func(c *commandConfig) {
		c.params = params
	}
}

// Command registers fn as a command. The function is retained as given and
// stays independently callable. Registering a second command under an
// existing name silently overwrites the first.
func (a *App) Command(fn any, opts ...CommandOption) error {
	var cfg commandConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	name := cfg.name
	if name == "" {
		name = introspect.FuncName(fn)
	}
	if name == "" {
		return fmt.Errorf("hype: command name could not be derived, use WithCommandName")
	}

	options, err := introspect.Signature(fn, cfg.params)
	if err != nil {
		return err
	}

	a.registry.Register(&command.Descriptor{
		Name:    name,
		Usage:   cfg.usage,
		Help:    cfg.help,
		Aliases: cfg.aliases,
		Options: options,
		Func:    fn,
	})
	return nil
}

// MustCommand registers like Command and panics on a registration error.
// Registration errors are programming errors, caught during development.
func (a *App) MustCommand(fn any, opts ...CommandOption) {
	if err := a.Command(fn, opts...); err != nil {
		panic(err)
	}
}
