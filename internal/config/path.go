package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the config file consulted when --config is not given.
// DSWS_CONFIG wins, then XDG_CONFIG_HOME, then the OS user config dir, and
// finally a file in the working directory.
func DefaultPath() string {
	if p := os.Getenv("DSWS_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dsws", "config.yaml")
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "dsws", "config.yaml")
	}
	return "./dsws.yaml"
}
