package std

import (
	"time"

	"github.com/ardnew/lithium/lang"
)

// clock returns the current time in milliseconds.
var clock = func() int64 { return time.Now().UnixMilli() }

// Chrono returns a new Chrono module.
func Chrono() *lang.Context {
	return module(map[string]lang.Accessor{
		"Ticks": ticks,
	})
}

func ticks(_ any, v *lang.Value, mode lang.Mode) bool {
	if mode != lang.ModeGet {
		return false
	}

	*v = lang.FromInteger(clock())

	return true
}
