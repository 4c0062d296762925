package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// appDir is the directory under $XDG_CONFIG_HOME holding user files.
const appDir = "tilerc"

// OverridesPath returns the default TOML overrides location.
func OverridesPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "overrides.toml")
}

// AutostartPath returns the script run once at startup.
func AutostartPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "autostart.sh")
}
