// Package logging holds helpers for deriving zerolog loggers scoped to a
// component or a command invocation.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns a logger tagged with "cmp" set to name.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// ForFile returns a component logger that also records the file it works on
// under "path". Stores use it so every load and save line names its file.
func ForFile(name, path string) zerolog.Logger {
	return Component(name).With().Str("path", path).Logger()
}
