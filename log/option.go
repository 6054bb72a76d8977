package log

import (
	"io"
	"sync"
)

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
// Nil options are ignored.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// with builds an Option that mutates a config while holding its lock.
func with(set func(*config)) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		set(&c)

		return c
	}
}

// WithDefaults returns an option that resets every setting to its default
// and directs output to w.
// A nil writer is replaced with [io.Discard].
func WithDefaults(w io.Writer) Option {
	format := makeFormatTimeFunc(DefaultTimeLayout)

	return with(func(c *config) {
		c.output = orDiscard(w)
		c.formatTime = format
		c.level = DefaultLevel
		c.format = DefaultFormat
		c.caller = DefaultCaller
		c.pretty = DefaultPretty
	})
}

// WithOutput returns an option that sets the output writer.
// A nil writer is replaced with [io.Discard].
func WithOutput(w io.Writer) Option {
	return with(func(c *config) { c.output = orDiscard(w) })
}

// WithLevel returns an option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return with(func(c *config) { c.level = level })
}

// WithFormat returns an option that sets the output format.
func WithFormat(format Format) Option {
	return with(func(c *config) { c.format = format })
}

// WithTimeLayout returns an option that sets the layout used to format
// log timestamps.
//
// The layout may name one of the layouts from the [time] package (for
// example "RFC3339" or "Kitchen"), or it is passed verbatim to
// [time.Time.Format]. An empty layout, or "none", omits timestamps.
func WithTimeLayout(layout string) Option {
	format := makeFormatTimeFunc(layout)

	return with(func(c *config) { c.formatTime = format })
}

// WithCaller returns an option that controls whether the source location
// of the logging call is included in log output.
func WithCaller(enable bool) Option {
	return with(func(c *config) { c.caller = enable })
}

// WithPretty returns an option that controls pretty printing.
// Pretty text output drops quoting; pretty JSON output spans multiple
// indented lines. Both are colorized when the output is a terminal.
func WithPretty(enable bool) Option {
	return with(func(c *config) { c.pretty = enable })
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}
