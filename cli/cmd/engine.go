package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/lithium/lang"
	"github.com/ardnew/lithium/log"
	"github.com/ardnew/lithium/std"
)

// EnvName is the name of the module exposing the process environment.
const EnvName = "Env"

// Engine holds the settings shared by every interpreter context a command
// creates.
type Engine struct {
	// Logger receives the interpreter's trace records.
	Logger log.Logger
	// Define maps seed variable names to expr-lang expressions.
	Define map[string]string
	// Search lists the directories searched for scripts.
	Search []string
	// Environ is the process environment, as "KEY=VALUE" pairs, visible to
	// the Env module and to seed expressions. Nil selects [os.Environ].
	Environ []string
	// MaxLoop bounds the loop iterations of each execution; zero is
	// unlimited.
	MaxLoop int
}

// engineKey is used to store an [Engine] value in [context.Context].
type engineKey struct{}

// WithEngine returns a new context.Context containing e.
func WithEngine(ctx context.Context, e *Engine) context.Context {
	return context.WithValue(ctx, engineKey{}, e)
}

// engineFrom returns the Engine stored in ctx, or a zero Engine if none.
func engineFrom(ctx context.Context) *Engine {
	e, ok := ctx.Value(engineKey{}).(*Engine)
	if !ok || e == nil {
		return &Engine{}
	}

	return e
}

// NewContext returns a fresh interpreter context with the standard library
// modules, the Env module, and every seed variable installed.
func (e *Engine) NewContext(ctx context.Context) (*lang.Context, error) {
	c := lang.New(nil,
		lang.WithLogger(e.Logger),
		lang.WithMaxLoopIterations(e.MaxLoop),
	)

	if err := std.Install(c); err != nil {
		return nil, ErrEngine.Wrap(err)
	}

	env := e.environ()

	if err := c.AddModule(EnvName, envModule(env)); err != nil {
		return nil, ErrEngine.Wrap(err)
	}

	if err := seed(ctx, c, e.Define, env); err != nil {
		return nil, err
	}

	e.Logger.DebugContext(ctx, "engine ready",
		slog.Any("modules", c.Modules()),
		slog.Any("variables", c.Variables()),
		slog.Int("max_loop", e.MaxLoop),
	)

	return c, nil
}

// environ returns the process environment as a map.
func (e *Engine) environ() map[string]string {
	list := e.Environ
	if list == nil {
		list = os.Environ()
	}

	env := make(map[string]string, len(list))

	for _, kv := range list {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}

// envModule returns a context whose read-only properties are the
// environment variables with names a script can spell.
func envModule(env map[string]string) *lang.Context {
	c := lang.New(nil)

	for name, value := range env {
		if !validName(name) {
			continue
		}

		v := lang.FromString(value)

		_ = c.AddAccessor(name, func(_ any, out *lang.Value, mode lang.Mode) bool {
			if mode != lang.ModeGet {
				return false
			}

			*out = v

			return true
		})
	}

	return c
}

// validName reports whether name can be written as an identifier in a
// script: non-empty, identifier characters only, and not starting with a
// digit.
func validName(name string) bool {
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return false
	}

	for i := range len(name) {
		if !lang.IsIdentifier(name[i]) {
			return false
		}
	}

	return true
}
