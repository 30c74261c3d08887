// Package fixture provides the canned configuration trees and override
// scenarios that the --test=<N> selector refers to.
package fixture

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var scenariosYAML []byte

//go:embed tree
var treeFS embed.FS

// Scenario is one canned set of overrides. Empty fields keep the defaults.
type Scenario struct {
	ID          int    `json:"id"                    yaml:"id"`
	Description string `json:"description"           yaml:"description"`
	ConfigFile  string `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	ProfileDir  string `json:"profile_dir,omitempty" yaml:"profile_dir,omitempty"`
	ThemeDir    string `json:"theme_dir,omitempty"   yaml:"theme_dir,omitempty"`
	Field       string `json:"field,omitempty"       yaml:"field,omitempty"`
}

type catalog struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenarios returns every canned scenario ordered by ID.
func Scenarios() ([]Scenario, error) {
	var cat catalog
	if err := yaml.Unmarshal(scenariosYAML, &cat); err != nil {
		return nil, fmt.Errorf("parsing scenario catalog: %w", err)
	}
	sort.Slice(cat.Scenarios, func(i, j int) bool {
		return cat.Scenarios[i].ID < cat.Scenarios[j].ID
	})
	return cat.Scenarios, nil
}

// Lookup returns the scenario with the given ID.
func Lookup(id int) (Scenario, error) {
	scenarios, err := Scenarios()
	if err != nil {
		return Scenario{}, err
	}
	for _, scenario := range scenarios {
		if scenario.ID == id {
			return scenario, nil
		}
	}
	return Scenario{}, fmt.Errorf("no test scenario %d", id)
}

// Materialize writes the fixture tree (config/, profiles/, themes/) into dir.
// Existing files with the same names are overwritten.
func Materialize(dir string) error {
	return fs.WalkDir(treeFS, "tree", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel("tree", filepath.FromSlash(path))
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", path, err)
		}
		target := filepath.Join(dir, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			return nil
		}

		data, err := treeFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading fixture %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		return nil
	})
}
