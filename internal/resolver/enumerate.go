package resolver

import (
	"fmt"
	"os"
	"sort"
)

// ProfileNames lists the entries directly inside the profile directory.
func (e *Engine) ProfileNames(o Overrides) ([]string, error) {
	paths := Resolve(o)
	e.state(OpProfileList, "check_profile_path", "path", paths.ProfileDir)
	return listDir(paths.ProfileDir, KindProfilePathNotFound, o.ProfileToken())
}

// ThemeNames lists the entries directly inside the theme directory.
func (e *Engine) ThemeNames(o Overrides) ([]string, error) {
	paths := Resolve(o)
	e.state(OpThemeList, "check_theme_path", "path", paths.ThemeDir)
	return listDir(paths.ThemeDir, KindThemePathNotFound, o.ThemeToken())
}

// CountProfiles returns the number of entries in the profile directory.
func (e *Engine) CountProfiles(o Overrides) (int, error) {
	names, err := e.ProfileNames(o)
	return len(names), err
}

// CountThemes returns the number of entries in the theme directory.
func (e *Engine) CountThemes(o Overrides) (int, error) {
	names, err := e.ThemeNames(o)
	return len(names), err
}

// listDir returns the sorted names of every entry in dir, without recursing
// or filtering. A missing directory is reported as kind with token.
func listDir(dir string, kind Kind, token string) ([]string, error) {
	ok, err := statDir(dir)
	if !ok {
		return nil, newError(kind, token, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(kind, token, fmt.Errorf("reading %s: %w", dir, err))
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
