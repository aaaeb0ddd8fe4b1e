package logging

import "context"

type contextKey string

const (
	commandKey  contextKey = "command"
	dataFileKey contextKey = "data_file"
)

// WithCommand records the running subcommand name on the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithDataFile records the backing file path on the context.
func WithDataFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, dataFileKey, path)
}

// GetCommand returns the subcommand name, or "" when unset.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}

// GetDataFile returns the backing file path, or "" when unset.
func GetDataFile(ctx context.Context) string {
	if v, ok := ctx.Value(dataFileKey).(string); ok {
		return v
	}
	return ""
}
