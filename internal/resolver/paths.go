package resolver

import (
	"path/filepath"
	"strings"
)

// Default locations relative to the base directory.
const (
	DefaultConfigFile = "config/config_profile.ini"
	DefaultProfileDir = "profiles"
	DefaultThemeDir   = "themes"
)

// ProfileKey is the configuration file key naming the active profile.
const ProfileKey = "profile"

// profileExt is the extension of every profile configuration file.
const profileExt = ".ini"

// Overrides are caller-supplied replacements for the default locations.
// Empty fields fall back to the defaults. Relative values are joined onto
// BaseDir; an empty BaseDir is the working directory.
type Overrides struct {
	BaseDir    string
	ConfigFile string
	ProfileDir string
	ThemeDir   string
}

// ConfigToken is the identifier echoed when the configuration file is missing.
func (o Overrides) ConfigToken() string {
	return orDefault(o.ConfigFile, DefaultConfigFile)
}

// ProfileToken is the identifier echoed when the profile directory is missing.
func (o Overrides) ProfileToken() string {
	return orDefault(o.ProfileDir, DefaultProfileDir)
}

// ThemeToken is the identifier echoed when the theme directory is missing.
func (o Overrides) ThemeToken() string {
	return orDefault(o.ThemeDir, DefaultThemeDir)
}

// Paths are the absolute locations derived from Overrides.
type Paths struct {
	ConfigFile string
	ProfileDir string
	ThemeDir   string
}

// Resolve computes absolute paths from o. It performs no I/O beyond reading
// the working directory and never fails; existence is checked later.
func Resolve(o Overrides) Paths {
	base := absolute(orDefault(o.BaseDir, "."))
	return Paths{
		ConfigFile: under(base, o.ConfigToken()),
		ProfileDir: under(base, o.ProfileToken()),
		ThemeDir:   under(base, o.ThemeToken()),
	}
}

// ProfileConfigFile returns <ProfileDir>/<name>.ini.
func (p Paths) ProfileConfigFile(name string) string {
	return filepath.Join(p.ProfileDir, name+profileExt)
}

// validProfileName rejects names that would leave the profile directory.
func validProfileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

func under(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
