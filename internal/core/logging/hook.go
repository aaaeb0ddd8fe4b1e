package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the command and data file recorded on an event's
// context into the event.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if cmd := GetCommand(ctx); cmd != "" {
		e.Str("command", cmd)
	}

	if path := GetDataFile(ctx); path != "" {
		e.Str("data_file", path)
	}
}
