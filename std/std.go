package std

import (
	"github.com/ardnew/lithium/lang"
)

// Module names used by [Install].
const (
	MathName   = "Math"
	ChronoName = "Chrono"
)

// Modules returns a new instance of every library module keyed by the
// name [Install] links it under.
func Modules() map[string]*lang.Context {
	return map[string]*lang.Context{
		MathName:   Math(),
		ChronoName: Chrono(),
	}
}

// Install links every library module into c.
// Each call links new module contexts, so changes a host makes to the
// modules of one context never reach another.
// It fails with [lang.ErrNameConflict] if c already links a module under
// one of the names.
func Install(c *lang.Context) error {
	mods := Modules()

	for _, name := range []string{MathName, ChronoName} {
		if err := c.AddModule(name, mods[name]); err != nil {
			return err
		}
	}

	return nil
}

// constant returns a read-only accessor for v.
func constant(v lang.Value) lang.Accessor {
	return func(_ any, out *lang.Value, mode lang.Mode) bool {
		if mode != lang.ModeGet {
			return false
		}

		*out = v

		return true
	}
}

// module returns an object-less context exposing props. The keys of a map
// are unique, so no accessor can conflict.
func module(props map[string]lang.Accessor) *lang.Context {
	c := lang.New(nil)

	for name, fn := range props {
		_ = c.AddAccessor(name, fn)
	}

	return c
}
