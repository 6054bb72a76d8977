package log_test

import (
	"errors"
	"log/slog"
	"os"

	"github.com/ardnew/lithium/log"
)

func Example_text() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Info("script loaded", slog.String("path", "init.li"))
	logger.Debug("not shown")
	// Output:
	// level=INFO msg="script loaded" path=init.li
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Info("info message")
	logger.Warn("warning message", slog.Int("line", 3))
	// Output:
	// {"level":"WARN","msg":"warning message","line":3}
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none")).
		With(slog.String("module", "Math"))

	logger.Error("rejected", slog.Any("error", errors.New("read-only")))
	// Output:
	// level=ERROR msg=rejected module=Math error=read-only
}

func Example_trace() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"))

	logger.Trace("statement", slog.Int("offset", 0))
	// Output:
	// level=TRACE msg=statement offset=0
}
