package cmd

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/lithium/cli/cmd/repl"
)

// Repl starts an interactive session against one persistent interpreter
// context.
type Repl struct {
	Dump string `default:"" enum:",yaml,json" help:"Print the final variables, accessors, and modules on exit" placeholder:"yaml|json" short:"d"`

	stdin  io.Reader
	stdout io.Writer
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	e := engineFrom(ctx)

	c, err := e.NewContext(ctx)
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if r.stdin != nil {
		opts = append(opts, tea.WithInput(r.stdin))
	}

	out := io.Writer(os.Stdout)
	if r.stdout != nil {
		out = r.stdout
		opts = append(opts, tea.WithOutput(r.stdout))
	}

	if err := repl.Run(ctx, c, cacheDirFrom(ctx), e.Logger, opts...); err != nil {
		return err
	}

	return dump(ctx, out, r.Dump, c)
}

// cacheDirFrom returns the cache directory named by the kong variables in
// ctx, or the system temporary directory.
func cacheDirFrom(ctx context.Context) string {
	if ktx := kongContextFrom(ctx); ktx != nil {
		if dir, ok := ktx.Model.Vars()[CacheIdentifier]; ok && dir != "" {
			return dir
		}
	}

	return os.TempDir()
}
