// Package cmd implements the lithium subcommands: run, check, repl, and
// init.
//
// Every command builds its interpreter contexts through an [Engine] stored
// in the command's [context.Context] by [WithEngine]. The engine installs
// the standard library modules, an Env module exposing the process
// environment, and any seed variables given with --define.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// to the configuration file.
	ConfigIdentifier = "config"
)
