// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// It is the logger used throughout lithium: the interpreter reports its
// evaluation steps at [LevelTrace] through a Logger supplied by the host,
// and the command line tool configures the package-level default logger
// from its --log-* flags.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("script loaded", slog.String("path", path))
//	logger.Error("script failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a new Logger with some settings overridden, and
// [Config] does the same for the package-level default logger.
//
// # Adding Attributes
//
// Attributes can be added to the logger to be included in all subsequent
// log messages using the [Logger.With] method:
//
//	logger = logger.With(slog.String("script", "init.li"))
//	logger.Info("running") // includes script=init.li
//
// # Context-Aware Logging
//
// Each logging level has both a context-aware and context-unaware variant.
// Context-unaware variants use [DefaultContextProvider], which returns
// [context.TODO] by default.
//
// # Levels
//
// The package supports five log levels: [LevelTrace], [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Messages below the
// configured level are discarded. The zero Logger discards everything.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. Either may be pretty printed with [WithPretty], which
// is the default; pretty output is colorized only when written to a
// terminal.
package log
