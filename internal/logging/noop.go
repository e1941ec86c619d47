package logging

import "context"

// Noop discards all log output. Useful as a default and in tests.
type Noop struct{}

func (Noop) Info(context.Context, string, ...any)  {}
func (Noop) Warn(context.Context, string, ...any)  {}
func (Noop) Error(context.Context, string, ...any) {}
func (n Noop) With(...any) Logger                  { return n }
