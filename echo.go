package hype

import (
	"fmt"

	"github.com/serumstudio/hype.cli/pkg/style"
)

// EchoOption configures one Echo call.
type EchoOption func(*style.Text)

// WithBackground selects a background color from the fixed color table.
// Echo fails with *style.UnsupportedColorError for names outside the table.
func WithBackground(name string) EchoOption {
	return func(t *style.Text) {
		t.Background = name
	}
}

// WithForeground selects a foreground color. Unrecognized names are
// forwarded without validation and render as plain text.
func WithForeground(name string) EchoOption {
	return func(t *style.Text) {
		t.Foreground = name
	}
}

// WithStyle selects a text attribute such as "bold" or "underline".
func WithStyle(name string) EchoOption {
	return func(t *style.Text) {
		t.Style = name
	}
}

// Echo prints text to the application's output, wrapped in the escape
// sequences for the selected colors and followed by a reset.
func (a *App) Echo(text string, opts ...EchoOption) error {
	var cfg style.Text
	for _, opt := range opts {
		opt(&cfg)
	}

	rendered, err := style.Render(text, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, rendered)
	return nil
}
