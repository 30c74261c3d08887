// Package settings layers the override values for one invocation.
//
// Precedence, highest first: command-line flags, DOTCFG_* environment
// variables, the YAML settings file, the --test scenario, built-in defaults.
// A fresh viper instance is used per Load so nothing leaks between calls.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gorewood/dotcfg/internal/fixture"
	"github.com/gorewood/dotcfg/internal/resolver"
)

// Setting keys. They double as flag names, settings file keys and, upper-cased
// with '-' replaced by '_', as DOTCFG_* environment variable suffixes.
const (
	KeyBaseDir    = "base-dir"
	KeyConfigFile = "config-file"
	KeyProfileDir = "profile-dir"
	KeyThemeDir   = "theme-dir"
	KeyField      = "field"
	KeyPolicy     = "policy"
	KeyTest       = "test"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DOTCFG"

// Settings are the resolved values for one invocation.
type Settings struct {
	Overrides resolver.Overrides
	Field     string
	Policy    string
	Scenario  int
}

// Options control where Load reads from.
type Options struct {
	// Flags are bound with the highest precedence. May be nil.
	Flags *pflag.FlagSet
	// File is the settings file. Empty disables file loading.
	File string
	// Required makes a missing File an error instead of being skipped.
	Required bool
}

// Load resolves settings from flags, environment, settings file and scenario.
func Load(opts Options) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readFile(v, opts.File, opts.Required); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := v.BindPFlags(opts.Flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	var scenario fixture.Scenario
	scenarioID := v.GetInt(KeyTest)
	if scenarioID != 0 {
		found, err := fixture.Lookup(scenarioID)
		if err != nil {
			return nil, err
		}
		scenario = found
	}

	return &Settings{
		Overrides: resolver.Overrides{
			BaseDir:    expandHome(v.GetString(KeyBaseDir)),
			ConfigFile: firstNonEmpty(v.GetString(KeyConfigFile), scenario.ConfigFile),
			ProfileDir: firstNonEmpty(v.GetString(KeyProfileDir), scenario.ProfileDir),
			ThemeDir:   firstNonEmpty(v.GetString(KeyThemeDir), scenario.ThemeDir),
		},
		Field:    firstNonEmpty(v.GetString(KeyField), scenario.Field),
		Policy:   v.GetString(KeyPolicy),
		Scenario: scenarioID,
	}, nil
}

// readFile loads path into v. A missing optional file is skipped.
func readFile(v *viper.Viper, path string, required bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("settings file %s: %w", path, err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
