//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Enabled reports whether profiling was compiled in.
const Enabled = true

// Modes returns the sorted list of supported profiling modes.
var Modes = sync.OnceValue(func() []string {
	return slices.Sorted(maps.Keys(mode))
})

var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// option appends a pkg/profile setting derived from a Profiler.
type option func(Profiler, []func(*profile.Profile)) []func(*profile.Profile)

func withMode(p Profiler, opts []func(*profile.Profile)) []func(*profile.Profile) {
	if fn, ok := mode[p.Mode]; ok {
		return append(opts, fn)
	}

	return opts
}

func withPath(p Profiler, opts []func(*profile.Profile)) []func(*profile.Profile) {
	if p.Path != "" {
		return append(opts, profile.ProfilePath(p.Path))
	}

	return opts
}

func withQuiet(p Profiler, opts []func(*profile.Profile)) []func(*profile.Profile) {
	if p.Quiet {
		return append(opts, profile.Quiet)
	}

	return opts
}

func start(p Profiler) Stopper {
	opts := withMode(p, nil)
	if len(opts) == 0 {
		return ignore{}
	}

	for _, fn := range []option{withPath, withQuiet} {
		opts = fn(p, opts)
	}

	// Signal handling is left to the command, which stops the profiler
	// when its context is canceled.
	return profile.Start(append(opts, profile.NoShutdownHook)...)
}
