package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Check executes each script against its own sandbox context and reports
// whether it succeeded.
type Check struct {
	Scripts []string `arg:"" help:"Script file(s) or '-' for stdin" name:"script"`

	Quiet bool `help:"Only report failures" short:"q"`

	stdin  io.Reader
	stdout io.Writer
}

// Run executes the check command.
// Every script is checked even after a failure.
func (c *Check) Run(ctx context.Context) error {
	e := engineFrom(ctx)

	stdin := c.stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	out := c.stdout
	if out == nil {
		out = os.Stdout
	}

	scripts, err := loadScripts(c.Scripts, e.Search, stdin)
	if err != nil {
		return err
	}

	failed := 0

	for _, s := range scripts {
		sandbox, err := e.NewContext(ctx)
		if err != nil {
			return err
		}

		if err := sandbox.ExecuteContext(ctx, s.src); err != nil {
			failed++

			fmt.Fprintf(out, "%s: %v\n", s.name, err)

			continue
		}

		if !c.Quiet {
			fmt.Fprintf(out, "%s: ok\n", s.name)
		}
	}

	if failed > 0 {
		return ErrCheck.With(
			slog.Int("failed", failed),
			slog.Int("total", len(scripts)),
		)
	}

	return nil
}
