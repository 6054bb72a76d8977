package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handler.
// Styles render as plain text when the output is not a terminal.
type palette struct {
	key, text, number, yes, no, elapsed, stamp, null lipgloss.Style
	levels                                           map[Level]lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:     fg("8"),
		text:    fg("6"),
		number:  fg("3"),
		yes:     fg("2"),
		no:      fg("1"),
		elapsed: fg("5"),
		stamp:   fg("4"),
		null:    fg("8"),
		levels: map[Level]lipgloss.Style{
			LevelTrace: fg("8"),
			LevelDebug: fg("4"),
			LevelInfo:  fg("2"),
			LevelWarn:  fg("3"),
			LevelError: fg("1").Bold(true),
		},
	}
}

func (p palette) level(l Level) string {
	style, ok := p.levels[l]
	if !ok {
		style = p.text
	}

	return style.Render(strings.ToUpper(l.String()))
}

func (p palette) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return p.text.Render(v.String())
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return p.number.Render(v.String())
	case slog.KindBool:
		if v.Bool() {
			return p.yes.Render(strconv.FormatBool(true))
		}

		return p.no.Render(strconv.FormatBool(false))
	case slog.KindDuration:
		return p.elapsed.Render(v.Duration().String())
	case slog.KindTime:
		return p.stamp.Render(v.Time().Format(time.RFC3339))
	case slog.KindAny:
		switch a := v.Any().(type) {
		case nil:
			return p.null.Render("null")
		case slog.Level:
			return p.level(Level(a))
		case error:
			return p.text.Render(a.Error())
		}
	}

	return p.text.Render(v.String())
}

// field is one rendered key/value pair of a record.
type field struct{ key, value string }

// prettyHandler writes human-oriented records.
// In text format each record is one line of key=value pairs; in JSON
// format each record is an indented block of unquoted key: value pairs.
type prettyHandler struct {
	mu         *sync.Mutex
	w          io.Writer
	formatTime FormatTime
	palette    palette
	attrs      []field
	prefix     string
	level      Level
	json       bool
	caller     bool
}

func newPrettyHandler(c config) *prettyHandler {
	return &prettyHandler{
		mu:         &sync.Mutex{},
		w:          c.output,
		formatTime: c.formatTime,
		palette:    newPalette(c.output),
		level:      c.level,
		json:       c.format == FormatJSON,
		caller:     c.caller,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(h.level)
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]field, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		if s := h.formatTime(r.Time); s != "" {
			fields = append(fields, field{slog.TimeKey, h.palette.stamp.Render(s)})
		}
	}

	fields = append(fields, field{slog.LevelKey, h.palette.level(Level(r.Level))})

	if h.caller {
		if src := r.Source(); src != nil && src.File != "" {
			loc := src.File + ":" + strconv.Itoa(src.Line)
			fields = append(fields, field{slog.SourceKey, h.palette.text.Render(loc)})
		}
	}

	fields = append(fields, field{slog.MessageKey, h.palette.text.Render(r.Message)})
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = h.appendAttr(fields, h.prefix, a)

		return true
	})

	var buf bytes.Buffer

	if h.json {
		buf.WriteString("{\n")

		for i, f := range fields {
			if i > 0 {
				buf.WriteString(",\n")
			}

			buf.WriteString("  ")
			buf.WriteString(h.palette.key.Render(f.key))
			buf.WriteString(": ")
			buf.WriteString(f.value)
		}

		buf.WriteString("\n}")
	} else {
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(h.palette.key.Render(f.key))
			buf.WriteByte('=')
			buf.WriteString(f.value)
		}
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// appendAttr renders a, flattening groups into dotted keys.
func (h *prettyHandler) appendAttr(fields []field, prefix string, a slog.Attr) []field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			fields = h.appendAttr(fields, prefix, ga)
		}

		return fields
	}

	return append(fields, field{prefix + a.Key, h.palette.value(a.Value)})
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := *h
	c.attrs = h.attrs[:len(h.attrs):len(h.attrs)]

	for _, a := range attrs {
		c.attrs = h.appendAttr(c.attrs, h.prefix, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}
