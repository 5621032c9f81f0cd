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
		c = a.home
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "Logs", a.tag)
}
