// Package std provides the library modules a host can link into a script
// context.
//
// Each module is an object-less [lang.Context] exposing read-only
// properties:
//
//	Math    Pi, E       float
//	Chrono  Ticks       int, milliseconds since the Unix epoch
//
// [Install] links every module under its name, so scripts can write
//
//	int start from Chrono get Ticks
//	set local area (from Math Pi * local r * local r)
package std
