package jsonvalue

import (
	"context"
	"log/slog"
)

// DefaultOnParseError logs parse failures at debug level using the standard
// `slog` package. It is assigned to [Callbacks.OnParseError] by [NewPool] when
// no custom callback is configured.
var DefaultOnParseError = func(ctx context.Context, text []byte, err error) {
	slog.DebugContext(ctx, "JSON parse failed", "error", err, "size", len(text))
}

// Callbacks defines functions a [Pool] runs on specific events.
//
// Callbacks must be safe for concurrent use, since a Pool serves many
// goroutines at once, and must not retain text after returning.
type Callbacks struct {
	// OnParseError is called when [Pool.Parse] fails. text is the input that
	// was rejected and err the [ParseError] returned to the caller.
	OnParseError func(ctx context.Context, text []byte, err error)

	// OnDiscard is called when a codec is dropped instead of being returned to
	// the pool because one of its scratch stacks grew past
	// [PoolConfig.MaxRetainedStack]. capacity is the largest stack capacity.
	OnDiscard func(ctx context.Context, capacity int)
}

// runOnParseError calls the OnParseError callback if it is set.
func (c *Callbacks) runOnParseError(ctx context.Context, text []byte, err error) {
	if c.OnParseError != nil {
		c.OnParseError(ctx, text, err)
	}
}

// runOnDiscard calls the OnDiscard callback if it is set.
func (c *Callbacks) runOnDiscard(ctx context.Context, capacity int) {
	if c.OnDiscard != nil {
		c.OnDiscard(ctx, capacity)
	}
}
