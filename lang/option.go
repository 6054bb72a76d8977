package lang

import "github.com/ardnew/lithium/log"

// Option configures a [Context].
type Option func(*Context)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithMaxLoopIterations bounds the number of loop iterations a single
// [Context.Execute] call may perform across all loops. Exceeding the bound
// fails with [ErrLoopLimit]. Zero or a negative n means unlimited.
func WithMaxLoopIterations(n int) Option {
	return func(c *Context) {
		c.maxLoop = max(n, 0)
	}
}

func applyOptions(c *Context, opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
}
