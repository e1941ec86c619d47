// Package logging defines the structured-logging contract shared by the
// client components, with a zap-backed production implementation and a
// no-op for defaults and tests.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args alternate keys and values, e.g.:
//
//	log.Info(ctx, "vendor collection replaced", "seq", seq, "count", n)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
