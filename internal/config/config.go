// Package config holds the environment-derived session configuration.
package config

import (
	"os"
	"strings"
)

// Environment variable names
const (
	// EnvPath is the executable search path, split on the platform
	// path-list separator.
	EnvPath = "PATH"

	// EnvHome and EnvUserProfile name the home directory; EnvHome is
	// consulted first, EnvUserProfile is the Windows fallback.
	EnvHome        = "HOME"
	EnvUserProfile = "USERPROFILE"

	// Logging settings
	EnvLogFile  = "GSH_LOG_FILE"
	EnvLogLevel = "GSH_LOG_LEVEL"
)

// DefaultPrompt is printed before each line read.
const DefaultPrompt = "$ "

// Config holds the session configuration. It is populated once at
// startup and not refreshed; in particular the search path list is
// fixed for the lifetime of the session.
type Config struct {
	// SearchPaths is the ordered list of directories consulted to
	// locate external executables.
	SearchPaths []string

	// Home is the user's home directory, used by cd for ~ expansion.
	// Empty when neither HOME nor USERPROFILE is set.
	Home string

	// Prompt is the string printed before each line read.
	Prompt string

	// LogFile is the debug log destination. Logging is disabled when
	// empty.
	LogFile string

	// LogLevel is the textual log level (debug, info, warn, error).
	LogLevel string
}

// New builds a Config from the process environment.
func New() *Config {
	return &Config{
		SearchPaths: SplitSearchPath(os.Getenv(EnvPath)),
		Home:        HomeDir(),
		Prompt:      DefaultPrompt,
		LogFile:     os.Getenv(EnvLogFile),
		LogLevel:    os.Getenv(EnvLogLevel),
	}
}

// SplitSearchPath splits a PATH-like value on the platform path-list
// separator. An empty value yields no directories.
func SplitSearchPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, string(os.PathListSeparator))
}

// HomeDir returns the home directory from HOME, falling back to
// USERPROFILE, or "" when neither is set.
func HomeDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	return os.Getenv(EnvUserProfile)
}
