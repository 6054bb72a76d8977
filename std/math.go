package std

import (
	"math"

	"github.com/ardnew/lithium/lang"
)

// Math returns a new Math module.
func Math() *lang.Context {
	return module(map[string]lang.Accessor{
		"Pi": constant(lang.FromFloating(math.Pi)),
		"E":  constant(lang.FromFloating(math.E)),
	})
}
