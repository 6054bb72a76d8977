package cmd

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/lithium/lang"
)

// ParseDefine splits a NAME=EXPR definition.
func ParseDefine(def string) (name, source string, err error) {
	name, source, ok := strings.Cut(def, "=")
	name = strings.TrimSpace(name)

	if !ok || !validName(name) {
		return "", "", ErrDefine.With(slog.String("define", def))
	}

	return name, strings.TrimSpace(source), nil
}

// seed declares one global variable in c per definition, in name order.
//
// Each source is an expr-lang expression. Its environment provides
// env(NAME), returning the named environment variable, and every
// previously seeded variable by name. An empty source seeds null.
func seed(
	ctx context.Context,
	c *lang.Context,
	defs map[string]string,
	processEnv map[string]string,
) error {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}

	slices.Sort(names)

	env := map[string]any{
		"env": envFunc(processEnv),
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return ErrDefine.Wrap(err)
		}

		fail := ErrDefine.With(slog.String("name", name), slog.String("source", defs[name]))

		if !validName(name) {
			return fail
		}

		result, err := evalDefine(defs[name], env)
		if err != nil {
			return fail.Wrap(err)
		}

		v, err := lang.Of(result)
		if err != nil {
			return fail.Wrap(err)
		}

		if err := c.AddVariable(name, v); err != nil {
			return fail.Wrap(err)
		}

		env[name] = result
	}

	return nil
}

// evalDefine compiles and runs one seed expression.
func evalDefine(source string, env map[string]any) (any, error) {
	if strings.TrimSpace(source) == "" {
		return nil, nil
	}

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, err
	}

	return vm.Run(program, env)
}

func envFunc(processEnv map[string]string) func(string) string {
	return func(key string) string {
		return processEnv[key]
	}
}
