package cli

import (
	"context"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lithium/cli/cmd"
	"github.com/ardnew/lithium/log"
	"github.com/ardnew/lithium/pkg"
)

// CLI is the top-level command-line interface for lithium.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Include []string          `help:"Search DIR for scripts before ${lithiumPathEnv}"      placeholder:"DIR"       short:"I" type:"path"`
	Define  map[string]string `help:"Declare global NAME with the value of expr-lang EXPR" placeholder:"NAME=EXPR" short:"D" mapsep:"none"`
	MaxLoop int               `help:"Bound the loop iterations of each execution (0 is unlimited)" default:"0"`

	Version kong.VersionFlag `help:"Print version and exit"`

	Run   cmd.Run   `cmd:"" default:"withargs" help:"Execute scripts"`
	Check cmd.Check `cmd:""                    help:"Execute each script in its own sandbox and report failures"`
	Repl  cmd.Repl  `cmd:""                    help:"Start an interactive session"`
	Init  cmd.Init  `cmd:""                    help:"Initialize configuration file"`
}

// engine returns the interpreter settings selected by the parsed flags.
func (c *CLI) engine() *cmd.Engine {
	return &cmd.Engine{
		Logger:  log.Default(),
		Define:  c.Define,
		Search:  cmd.SearchPath(c.Include...),
		MaxLoop: c.MaxLoop,
	}
}

// Run executes the lithium CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.Version,
		"lithiumPathEnv":     cmd.PathEnv,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolveYAML, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithEngine(ctx, cli.engine())

	log.DebugContext(ctx, "command selected", slog.String("command", ktx.Command()))

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
