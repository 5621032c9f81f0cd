//go:build aix || dragonfly || freebsd || (js && wasm) || nacl || linux || netbsd || openbsd || solaris
// +build aix dragonfly freebsd js,wasm nacl linux netbsd openbsd solaris

package cli

import (
	"os"
	"path/filepath"
	"strings"
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
		c = filepath.Join(a.home, ".config")
	}
	return filepath.Join(c, strings.ToLower(a.tag))
}

func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", strings.ToLower(a.tag))
}
