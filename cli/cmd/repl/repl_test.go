package repl

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/lithium/log"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	return newModel(
		t.Context(),
		newScript(t),
		NewHistory(filepath.Join(t.TempDir(), baseHistory)),
		log.Logger{},
	)
}

func TestIsStatement(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"int y 1":            true,
		"set local x 2":      true,
		"to Math Pi 3":       true,
		"if true: int z 1. ": true,
		"loop 3: int w 1. ":  true,
		"get local x":        false,
		"from Math Pi":       false,
		"integer":            false,
		"(1 + 2)":            false,
		`"int"`:              false,
	}

	for input, want := range tests {
		if got := isStatement(input); got != want {
			t.Errorf("isStatement(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestModelEval(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	steps := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "int y 5", want: "✔"},
		{input: "set local y (get local y + 1)", want: "✔"},
		{input: "get local y", want: "6"},
		{input: `"a" + 1`, want: `"a1"`},
		{input: `1 + "a"`, wantErr: true},
		{input: "get local y )", wantErr: true},
		{input: "int y 1", wantErr: true},
		{input: "get local nope", wantErr: true},
	}

	for _, step := range steps {
		got, err := m.eval(step.input)
		if (err != nil) != step.wantErr {
			t.Fatalf("eval(%q) error = %v, wantErr %v", step.input, err, step.wantErr)
		}

		if err == nil && got != step.want {
			t.Errorf("eval(%q) = %q, want %q", step.input, got, step.want)
		}
	}

	if vars := m.listVariables(); !strings.Contains(vars, "y 6") {
		t.Errorf("listVariables() = %q, want it to list y 6", vars)
	}

	if mods := m.listModules(); !strings.Contains(mods, "Math E Pi") {
		t.Errorf("listModules() = %q, want it to list Math E Pi", mods)
	}

	if dump := m.dump(); !strings.Contains(dump, "name: \"y\"\n  kind: int\n  value: 6") {
		t.Errorf("dump() = %q, want a YAML entry for y", dump)
	}
}

func typeText(m model, text string) model {
	for _, r := range text {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg.Type = tea.KeySpace
		}

		next, _ := m.Update(msg)
		m = next.(model)
	}

	return m
}

func TestModelCompletion(t *testing.T) {
	t.Parallel()

	m := typeText(newTestModel(t), "fr")

	if len(m.matches) != 1 || m.matches[0].Str != "from" {
		t.Fatalf("matches after %q = %v, want [from]", m.input.Value(), m.matches)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)

	if got := m.input.Value(); got != "from" {
		t.Fatalf("input after Tab = %q, want %q", got, "from")
	}

	m = typeText(m, " ")

	var got []string
	for _, match := range m.matches {
		got = append(got, match.Str)
	}

	if strings.Join(got, ",") != "Chrono,Math" {
		t.Errorf("matches after %q = %q, want module names", m.input.Value(), got)
	}

	m = typeText(m, "Math ")

	got = got[:0]
	for _, match := range m.matches {
		got = append(got, match.Str)
	}

	if strings.Join(got, ",") != "E,Pi" {
		t.Errorf("matches after %q = %q, want Math properties", m.input.Value(), got)
	}
}

func TestModelToggleMode(t *testing.T) {
	t.Parallel()

	m := typeText(newTestModel(t), "get")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)

	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("after Esc: mode = %v, input = %q", m.mode, m.input.Value())
	}

	m = typeText(m, "dum")

	if len(m.matches) != 1 || m.matches[0].Str != "dump" {
		t.Errorf("command matches = %v, want [dump]", m.matches)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)

	if m.mode != modeEval || m.input.Value() != "get" {
		t.Errorf("after second Esc: mode = %v, input = %q", m.mode, m.input.Value())
	}
}
