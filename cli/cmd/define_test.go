package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/ardnew/lithium/lang"
)

func TestParseDefine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		def        string
		wantName   string
		wantSource string
		wantErr    bool
	}{
		{def: "n=1+2", wantName: "n", wantSource: "1+2"},
		{def: ` home = env("HOME") `, wantName: "home", wantSource: `env("HOME")`},
		{def: "empty=", wantName: "empty", wantSource: ""},
		{def: "a=b=c", wantName: "a", wantSource: "b=c"},
		{def: "bare", wantErr: true},
		{def: "=1", wantErr: true},
		{def: "my_var=1", wantErr: true},
		{def: "9lives=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.def, func(t *testing.T) {
			t.Parallel()

			name, source, err := ParseDefine(tt.def)
			if tt.wantErr {
				if !errors.Is(err, ErrDefine) {
					t.Errorf("ParseDefine(%q) error = %v, want %v", tt.def, err, ErrDefine)
				}

				return
			}

			if err != nil || name != tt.wantName || source != tt.wantSource {
				t.Errorf("ParseDefine(%q) = (%q, %q, %v), want (%q, %q, nil)",
					tt.def, name, source, err, tt.wantName, tt.wantSource)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()

	c := lang.New(nil)

	defs := map[string]string{
		"a": "1 + 2",
		"b": "a * 2",
		"f": "1.5",
		"s": `env("USER") + "!"`,
		"t": "a > 2",
		"z": "",
	}

	err := seed(t.Context(), c, defs, map[string]string{"USER": "ann"})
	if err != nil {
		t.Fatalf("seed() error = %v", err)
	}

	want := map[string]lang.Value{
		"a": lang.FromInteger(3),
		"b": lang.FromInteger(6),
		"f": lang.FromFloating(1.5),
		"s": lang.FromString("ann!"),
		"t": lang.FromBoolean(true),
		"z": lang.Null(),
	}

	for name, w := range want {
		got, ok := c.LookupVariable(name)
		if !ok || !got.Equal(w) {
			t.Errorf("variable %s = %v (found %v), want %v", name, got, ok, w)
		}
	}
}

func TestSeedErrors(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name  string
		ctx   context.Context
		defs  map[string]string
		cause error
	}{
		{name: "compile", defs: map[string]string{"x": "1 +"}},
		{name: "unsupported_result", defs: map[string]string{"x": "[1, 2]"}},
		{name: "invalid_name", defs: map[string]string{"a-b": "1"}},
		{name: "conflict", defs: map[string]string{"taken": "1"}, cause: lang.ErrNameConflict},
		{name: "canceled", ctx: canceled, defs: map[string]string{"x": "1"}, cause: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := tt.ctx
			if ctx == nil {
				ctx = t.Context()
			}

			c := lang.New(nil)
			if err := c.AddVariable("taken", lang.FromInteger(0)); err != nil {
				t.Fatal(err)
			}

			err := seed(ctx, c, tt.defs, nil)
			if !errors.Is(err, ErrDefine) {
				t.Fatalf("seed() error = %v, want %v", err, ErrDefine)
			}

			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("seed() error = %v, want cause %v", err, tt.cause)
			}
		})
	}
}
