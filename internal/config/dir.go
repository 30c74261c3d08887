// Package config locates the dotcfg configuration home directory.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// SettingsFileName is the name of the optional settings file in Dir.
const SettingsFileName = "settings.yaml"

// Dir returns the dotcfg configuration directory.
//
// Resolution:
//   - $DOTCFG_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/dotcfg if set (respects XDG on any platform)
//   - %AppData%/dotcfg on Windows
//   - ~/.config/dotcfg on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("DOTCFG_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dotcfg")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "dotcfg")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dotcfg")
}

// SettingsFile returns the default settings file path, or "" when no
// configuration directory can be determined.
func SettingsFile() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, SettingsFileName)
}
