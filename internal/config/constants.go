// Package config holds cdeclish's process-wide constants and the
// persisted-configuration file shape, in the teacher's ambient style: a
// handful of package-level constants/booleans (config.IsTestMode,
// config.Version) rather than a structured-logging/DI framework
// (funvibe-funxy/internal/config/constants.go).
package config

// Version is the current cdeclish version. Set at build time by
// -ldflags, or left at this default for local builds.
var Version = "0.1.0"

// DefaultPrompt is the REPL prompt shown when no `set prompt` or
// persisted config overrides it (spec §6).
const DefaultPrompt = "cdeclish> "

// IsTestMode suppresses interactive niceties (color, prompt echo) when
// running under the test harness — set once at startup, mirroring the
// teacher's config.IsTestMode.
var IsTestMode = false

// ConfigFileName is the name of the persisted-configuration file
// cdeclish reads on startup (spec §6 "Persisted state"), searched for
// in the current directory and then $HOME.
const ConfigFileName = ".cdeclishrc"
