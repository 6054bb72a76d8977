package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/lithium/lang"
	"github.com/ardnew/lithium/log"
)

// dumpIndent is the indentation used when printing a snapshot.
const dumpIndent = 2

// Run executes scripts against a single interpreter context.
type Run struct {
	Scripts []string `arg:"" help:"Script file(s) or '-' for stdin" name:"script" optional:""`

	Dump  string `default:"" enum:",yaml,json" help:"Print the final variables, accessors, and modules" placeholder:"yaml|json" short:"d"`
	Watch bool   `help:"Re-run the scripts whenever one of them changes" short:"w"`

	stdin  io.Reader
	stdout io.Writer
}

// Run executes the run command.
//
// With no scripts, stdin is read as the script, unless stdin is a terminal,
// in which case the REPL starts instead.
func (r *Run) Run(ctx context.Context) error {
	e := engineFrom(ctx)

	names := r.Scripts
	if len(names) == 0 {
		if r.Watch {
			return ErrWatch.Wrap(ErrScriptNotFound)
		}

		if isTerminal(r.input()) {
			return (&Repl{Dump: r.Dump, stdin: r.stdin, stdout: r.stdout}).Run(ctx)
		}

		names = []string{stdinSource}
	}

	if r.Watch {
		return r.watch(ctx, e, names)
	}

	scripts, err := loadScripts(names, e.Search, r.input())
	if err != nil {
		return err
	}

	return r.execute(ctx, e, scripts)
}

// execute runs scripts in order against one fresh context, stopping at the
// first failure.
func (r *Run) execute(ctx context.Context, e *Engine, scripts []script) error {
	c, err := e.NewContext(ctx)
	if err != nil {
		return err
	}

	for _, s := range scripts {
		if err := c.ExecuteContext(ctx, s.src); err != nil {
			return ErrScript.With(slog.String("script", s.name)).Wrap(err)
		}

		log.DebugContext(ctx, "script executed", slog.String("script", s.name))
	}

	return dump(ctx, r.output(), r.Dump, c)
}

func (r *Run) input() io.Reader {
	if r.stdin == nil {
		return os.Stdin
	}

	return r.stdin
}

func (r *Run) output() io.Writer {
	if r.stdout == nil {
		return os.Stdout
	}

	return r.stdout
}

// dump writes the snapshot of c to w in format, which is "yaml", "json",
// or empty for no output.
func dump(ctx context.Context, w io.Writer, format string, c *lang.Context) error {
	switch format {
	case "yaml":
		return c.Snapshot().FormatYAML(ctx, w, dumpIndent)
	case "json":
		return c.Snapshot().FormatJSON(ctx, w, dumpIndent)
	default:
		return nil
	}
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
