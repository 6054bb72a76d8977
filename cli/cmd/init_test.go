package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// initCLI mirrors the shape of the top-level command-line interface.
type initCLI struct {
	LogLevel  string            `default:"info"`
	Include   []string          `short:"I"`
	Define    map[string]string `short:"D"`
	MaxLoop   int               `default:"100"`
	Pretty    bool              `default:"true"    negatable:""`
	PprofMode string            `default:"cpu"`

	Init Init `cmd:""`
}

func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		setup   func(t *testing.T, path string)
		wantErr error
	}{
		{
			name: "create_new_config",
		},
		{
			name:  "overwrite_existing_with_force",
			force: true,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o600); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "fail_without_force",
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o600); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrFileExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.setup != nil {
				tt.setup(t, confPath)
			}

			var cli initCLI

			parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
			if err != nil {
				t.Fatal(err)
			}

			ktx, err := parser.Parse([]string{
				"init", "-I", "/lib/a", "-I", "/lib/b", "-D", "n=1 + 2", "--no-pretty",
			})
			if err != nil {
				t.Fatal(err)
			}

			err = (&Init{Force: tt.force}).Run(WithContext(t.Context(), ktx))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrWriteConfig) {
					t.Errorf("Init.Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Init.Run() error = %v", err)
			}

			data, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var doc struct {
				LogLevel  string            `yaml:"log-level"`
				Include   []string          `yaml:"include"`
				Define    map[string]string `yaml:"define"`
				MaxLoop   int               `yaml:"max-loop"`
				Pretty    *bool             `yaml:"pretty"`
				PprofMode *string           `yaml:"pprof-mode"`
				Help      *bool             `yaml:"help"`
			}

			if err := yaml.Unmarshal(data, &doc); err != nil {
				t.Fatalf("generated config is not valid YAML: %v\n%s", err, data)
			}

			switch {
			case doc.LogLevel != "info",
				len(doc.Include) != 2 || doc.Include[1] != "/lib/b",
				doc.Define["n"] != "1 + 2",
				doc.MaxLoop != 100,
				doc.Pretty == nil || *doc.Pretty:
				t.Errorf("generated config = %+v\n%s", doc, data)
			}

			if doc.PprofMode != nil || doc.Help != nil {
				t.Errorf("generated config includes ignored flags:\n%s", data)
			}
		})
	}
}

func TestConfigValue(t *testing.T) {
	t.Parallel()

	type level string

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"empty_string", "", nil},
		{"empty_slice", []string{}, nil},
		{"empty_map", map[string]string{}, nil},
		{"bool", false, false},
		{"int", 7, 7},
		{"string", "x", "x"},
		{"named_string", level("debug"), "debug"},
		{"map", map[string]string{"b": "2", "a": "1"}, yaml.MapSlice{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := configValue(tt.in)

			gotYAML, err := yaml.Marshal(got)
			if err != nil {
				t.Fatal(err)
			}

			wantYAML, err := yaml.Marshal(tt.want)
			if err != nil {
				t.Fatal(err)
			}

			if (got == nil) != (tt.want == nil) || string(gotYAML) != string(wantYAML) {
				t.Errorf("configValue(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
