// Package tracelog provides the framework's debug logger. It is silent
// unless the HYPE_DEBUG environment variable is set, so applications built
// on the framework produce no log output of their own accord.
package tracelog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// EnvVar enables trace logging when set to any non-empty value.
const EnvVar = "HYPE_DEBUG"

// New returns a structured logger writing to w. The returned logger
// discards everything unless HYPE_DEBUG is set.
func New(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "hype",
		Level:  log.DebugLevel,
	})
	if os.Getenv(EnvVar) == "" {
		logger.SetOutput(io.Discard)
	}
	return logger
}
