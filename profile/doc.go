// Package profile provides optional runtime profiling for the lithium
// command.
//
// Profiling uses [github.com/pkg/profile] and must be enabled at build time
// with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Profiler.Start] returns a no-op and [Modes] is empty,
// so the command line carries no profiling flags.
//
// # Modes
//
// The supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread, and trace. Profile files are written to [Profiler.Path]
// with names matching the mode (for example cpu.pprof):
//
//	p := profile.Profiler{Mode: "cpu", Path: dir, Quiet: true}
//	defer p.Start().Stop()
//
// A long-running script is a good target for CPU profiling:
//
//	lithium --pprof-mode cpu run busy.li
//	go tool pprof -http=: $XDG_CACHE_HOME/lithium/pprof/cpu.pprof
//
// Builds with the tag also import [net/http/pprof], which registers the
// /debug/pprof/ handlers on [net/http.DefaultServeMux] for hosts that embed
// the interpreter in a server.
package profile
