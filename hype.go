// Package hype is a declaration-driven command-line application framework:
// plain functions are registered as commands, the framework derives each
// command's option surface from the function's signature, and a single-shot
// dispatcher parses the process arguments and calls the matched function
// with correctly-ordered, correctly-typed arguments.
//
//	app := hype.New()
//
//	greet := func(name string) {
//		app.Echo("Hello, "+name+"!", hype.WithForeground("green"))
//	}
//
//	app.MustCommand(greet,
//		hype.WithCommandName("greet"),
//		hype.WithParams(hype.Param{Name: "name"}),
//	)
//
//	app.Run()
package hype

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/serumstudio/hype.cli/internal/tracelog"
	"github.com/serumstudio/hype.cli/pkg/command"
	"github.com/serumstudio/hype.cli/pkg/dispatchers"
	"github.com/serumstudio/hype.cli/pkg/style"
	"github.com/serumstudio/hype.cli/pkg/usage"
)

// App owns a command registry and dispatches one command per process
// invocation. Each App holds its own registry; nothing is shared between
// instances.
type App struct {
	name     string
	registry *command.Registry
	out      io.Writer
	errOut   io.Writer
	color    bool
	styles   *style.Sheet
	exit     func(int)
}

// Option configures an App.
type Option func(*App)

// WithName sets the program name used in usage and error output. Defaults
// to the process name.
func WithName(name string) Option {
	return func(a *App) {
		a.name = name
	}
}

// WithOutput redirects command and help output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithErrorOutput redirects error output. Defaults to stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(a *App) {
		a.errOut = w
	}
}

// WithColor overrides terminal color auto-detection.
func WithColor(enable bool) Option {
	return func(a *App) {
		a.color = enable
	}
}

// New creates an application with a fresh, empty command registry.
func New(opts ...Option) *App {
	a := &App{
		name:     filepath.Base(os.Args[0]),
		registry: command.NewRegistry(),
		out:      os.Stdout,
		errOut:   os.Stderr,
		color:    term.IsTerminal(int(os.Stdout.Fd())),
		exit:     os.Exit,
	}
	for _, opt := range opts {
		opt(a)
	}
	// Each App owns its style sheet; color settings never leak between
	// instances.
	a.styles = style.NewSheet(a.color)
	return a
}

// Commands returns the registered command names in registration order.
func (a *App) Commands() []string {
	return a.registry.Names()
}

// Execute dispatches one invocation against the given argument vector and
// returns any user-facing error instead of exiting. Host code and tests
// use this; Run wraps it with the process exit path.
func (a *App) Execute(args []string) error {
	d := dispatchers.New(a.name, a.registry, tracelog.New(a.errOut), a.styles)
	return d.Run(args, a.out)
}

// Run reads the process argument vector, dispatches, and on error prints
// the message to stderr and exits with the error's exit code. Required
// option violations and unknown commands never reach the command callable.
func (a *App) Run() {
	if err := a.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(a.errOut, a.styles.Error(err.Error()))
		a.exit(usage.ExitCode(err))
	}
}
