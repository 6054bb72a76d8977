package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// Tests in this file replace the package-level logger and must not run in
// parallel.

func TestPackage_LogFunctions(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelTrace), WithPretty(false))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"TraceContext", func(msg string, attrs ...slog.Attr) {
			TraceContext(t.Context(), msg, attrs...)
		}, "TRACE"},
		{"ErrorContext", func(msg string, attrs ...slog.Attr) {
			ErrorContext(t.Context(), msg, attrs...)
		}, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("package message", slog.String("key", "value"))

			out := buf.String()
			for _, frag := range []string{"package message", `"level":"` + tt.level + `"`, `"key":"value"`} {
				if !strings.Contains(out, frag) {
					t.Errorf("output %s missing %s", out, frag)
				}
			}
		})
	}
}

func TestPackage_With(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithFormat(FormatText), WithPretty(false), WithTimeLayout("none"))

	With(slog.String("script", "a.li")).Info("ran")

	if got, want := buf.String(), "level=INFO msg=ran script=a.li\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
