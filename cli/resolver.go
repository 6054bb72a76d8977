package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for YAML configuration files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML, "/path/to/config.yaml")
//
// The document must be a mapping from flag names to values. Hyphens in flag
// names may be written as underscores:
//
//	log_level: debug
//	log-pretty: false
//	max_loop: 100000
//	include:
//	  - ~/lib/lithium
//
// Command-line flags override config file values. An empty document is a
// valid configuration.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	c := make(config, len(doc))
	for k, v := range doc {
		c[strings.ReplaceAll(k, "_", "-")] = flagValue(v)
	}

	return c, nil
}

// config implements [kong.Resolver] over a flat map of flag values.
type config map[string]any

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := c[flag.Name]; ok {
		return v, nil
	}

	return nil, nil
}

// flagValue converts a decoded YAML value into the form kong's mappers
// accept. Scalars other than booleans become strings, and sequences and
// mappings are converted element-wise.
func flagValue(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case bool, string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = flagValue(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = flagValue(e)
		}

		return out
	default:
		return fmt.Sprint(v)
	}
}
