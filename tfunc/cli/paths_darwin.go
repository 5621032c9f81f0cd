package cli

import (
	"os"
	"path/filepath"
)

// appHome never fails: without a home directory paths are relative to the
// working directory.
func appHome(appTag string) (appPaths, error) {
	a := appPaths{tag: appTag}
	home, err := os.UserHomeDir()
	if err == nil {
		a.home = home
	}
	return a, nil
}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, "Library", "Application Support")
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	c := filepath.Join(a.home, "Library", "Application Support", "Logs")
	return filepath.Join(c, a.tag)
}
