package cli

import "path/filepath"

// AppPaths is an interface to determine application specific paths for configuration,
// logging/tracing and the REPL history.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	HistoryFile() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

// HistoryFile is located in the log directory, as it is a volatile file.
func (a appPaths) HistoryFile() string {
	return filepath.Join(a.LogDir(), "repl-history")
}

var _ AppPaths = appPaths{}
