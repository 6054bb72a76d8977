package cmd

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/ardnew/lithium/lang"
)

func testEngine() *Engine {
	return &Engine{
		Environ: []string{
			"HOME=/home/ann",
			"SHELL=/bin/sh",
			"MY_VAR=hidden",
			"9LIVES=hidden",
			"MALFORMED",
		},
		Define:  map[string]string{"n": "2", "greeting": `"hi " + env("HOME")`},
		MaxLoop: 5,
	}
}

func TestEngineNewContext(t *testing.T) {
	t.Parallel()

	c, err := testEngine().NewContext(t.Context())
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	if got, want := c.Modules(), []string{"Chrono", EnvName, "Math"}; !slices.Equal(got, want) {
		t.Errorf("Modules() = %q, want %q", got, want)
	}

	env, _ := c.GetModule(EnvName)
	if got, want := env.Accessors(), []string{"HOME", "SHELL"}; !slices.Equal(got, want) {
		t.Errorf("Env accessors = %q, want %q", got, want)
	}

	tests := []struct {
		expr string
		want lang.Value
	}{
		{"from Env HOME", lang.FromString("/home/ann")},
		{"get local n * 3", lang.FromInteger(6)},
		{"local greeting", lang.FromString("hi /home/ann")},
	}

	for _, tt := range tests {
		got, err := c.EvaluateContext(t.Context(), tt.expr)
		if err != nil || !got.Equal(tt.want) {
			t.Errorf("Evaluate(%q) = %v, %v, want %v", tt.expr, got, err, tt.want)
		}
	}

	if err := c.ExecuteContext(t.Context(), `to Env HOME "/tmp"`); !errors.Is(err, lang.ErrPropertyRejected) {
		t.Errorf("writing Env error = %v, want %v", err, lang.ErrPropertyRejected)
	}

	err = c.ExecuteContext(t.Context(), "int i 0 loop true: set local i (get local i + 1). ")
	if !errors.Is(err, lang.ErrLoopLimit) {
		t.Errorf("unbounded loop error = %v, want %v", err, lang.ErrLoopLimit)
	}
}

func TestEngineNewContextDefineError(t *testing.T) {
	t.Parallel()

	e := &Engine{Environ: []string{}, Define: map[string]string{"Math": "1 +"}}

	if _, err := e.NewContext(t.Context()); !errors.Is(err, ErrDefine) {
		t.Errorf("NewContext() error = %v, want %v", err, ErrDefine)
	}
}

func TestEngineFrom(t *testing.T) {
	t.Parallel()

	if e := engineFrom(context.Background()); e == nil || e.MaxLoop != 0 {
		t.Errorf("engineFrom(empty) = %+v, want zero Engine", e)
	}

	want := testEngine()
	if got := engineFrom(WithEngine(t.Context(), want)); got != want {
		t.Errorf("engineFrom() = %p, want %p", got, want)
	}
}
