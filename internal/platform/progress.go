package platform

import (
	"context"
	"fmt"
)

// ProgressFunc receives human-readable progress messages.
type ProgressFunc func(msg string)

type progressKey struct{}

// WithProgress returns a context carrying fn.
func WithProgress(ctx context.Context, fn ProgressFunc) context.Context {
	return context.WithValue(ctx, progressKey{}, fn)
}

// Progressf formats and reports a message to the callback in ctx. Without a
// callback (REST and MCP requests) it does nothing.
func Progressf(ctx context.Context, format string, args ...any) {
	if fn, ok := ctx.Value(progressKey{}).(ProgressFunc); ok && fn != nil {
		fn(fmt.Sprintf(format, args...))
	}
}
