// Package cli contains the command line interface for lithium.
//
// # Usage
//
//	lithium [flags] [run] [SCRIPT...]
//	lithium [flags] check SCRIPT...
//	lithium [flags] repl
//	lithium [flags] init [--force]
//
// Without a command, the named scripts run in order against one
// interpreter context. Without scripts, stdin is read as the script, or
// the REPL starts when stdin is a terminal.
//
// # Scripts
//
//   - -I, --include: Search DIR for script names that are not paths, before
//     the directories of $LITHIUM_PATH
//   - -D, --define: Declare a global variable from an expr-lang expression,
//     for example -D 'home=env("HOME")'
//   - --max-loop: Bound the loop iterations of each execution
//
// # Configuration file
//
// Flag defaults are read from config.yaml in the user configuration
// directory; see [resolveYAML] for the format. The init command writes the
// current flag values there.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp layout (RFC3339, Kitchen, none, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorized, human-oriented output
//
// Trace level reports every statement the interpreter executes.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o lithium .
//
// The build then accepts these flags:
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/lithium/pprof)
//
// # Examples
//
//	# Run a script with a seeded variable and print the result
//	lithium -D 'n=10' --dump=yaml count.li
//
//	# Re-run scripts whenever they change
//	lithium run --watch main.li
//
//	# Trace execution as text
//	lithium --log-level=trace --log-format=text main.li
package cli
