package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/dotcfg/internal/resolver"
)

// --- Shared types ---

// LocationInput overrides where the configuration lives. Empty fields keep
// the server defaults.
type LocationInput struct {
	BaseDir    string `json:"base_dir,omitempty"    jsonschema:"base directory the other paths are relative to"`
	ConfigFile string `json:"config_file,omitempty" jsonschema:"configuration file path (default config/config_profile.ini)"`
	ProfileDir string `json:"profile_dir,omitempty" jsonschema:"profile directory (default profiles)"`
	ThemeDir   string `json:"theme_dir,omitempty"   jsonschema:"theme directory (default themes)"`
}

// overrides merges the input over defaults.
func (in LocationInput) overrides(defaults resolver.Overrides) resolver.Overrides {
	o := defaults
	if in.BaseDir != "" {
		o.BaseDir = in.BaseDir
	}
	if in.ConfigFile != "" {
		o.ConfigFile = in.ConfigFile
	}
	if in.ProfileDir != "" {
		o.ProfileDir = in.ProfileDir
	}
	if in.ThemeDir != "" {
		o.ThemeDir = in.ThemeDir
	}
	return o
}

// ListOutput is the output of the list tools.
type ListOutput struct {
	Count int      `json:"count"           jsonschema:"number of entries in the directory"`
	Names []string `json:"names,omitempty" jsonschema:"entry names, sorted"`
}

// --- config_read ---

// ConfigReadOutput is the output for the config_read tool.
type ConfigReadOutput struct {
	ConfigFilePath    string `json:"config_file_path"    jsonschema:"absolute path of the configuration file"`
	Profile           string `json:"profile"             jsonschema:"active profile name"`
	ProfileConfigFile string `json:"profile_config_file" jsonschema:"absolute path of the profile configuration file"`
}

func handleConfigRead(engine *resolver.Engine, defaults resolver.Overrides) mcp.ToolHandlerFor[LocationInput, ConfigReadOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LocationInput) (*mcp.CallToolResult, ConfigReadOutput, error) {
		res, err := engine.ReadConfig(input.overrides(defaults))
		if err != nil {
			return nil, ConfigReadOutput{}, err
		}
		return nil, ConfigReadOutput{
			ConfigFilePath:    res.Paths.ConfigFile,
			Profile:           res.Profile,
			ProfileConfigFile: res.ProfileConfigFile,
		}, nil
	}
}

// --- config_profile_list / config_theme_list ---

func handleProfileList(engine *resolver.Engine, defaults resolver.Overrides) mcp.ToolHandlerFor[LocationInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LocationInput) (*mcp.CallToolResult, ListOutput, error) {
		names, err := engine.ProfileNames(input.overrides(defaults))
		if err != nil {
			return nil, ListOutput{}, err
		}
		return nil, ListOutput{Count: len(names), Names: names}, nil
	}
}

func handleThemeList(engine *resolver.Engine, defaults resolver.Overrides) mcp.ToolHandlerFor[LocationInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LocationInput) (*mcp.CallToolResult, ListOutput, error) {
		names, err := engine.ThemeNames(input.overrides(defaults))
		if err != nil {
			return nil, ListOutput{}, err
		}
		return nil, ListOutput{Count: len(names), Names: names}, nil
	}
}

// --- config_profile_update ---

// ProfileUpdateInput is the input for the config_profile_update tool.
type ProfileUpdateInput struct {
	BaseDir    string `json:"base_dir,omitempty"    jsonschema:"base directory the other paths are relative to"`
	ConfigFile string `json:"config_file,omitempty" jsonschema:"configuration file path (default config/config_profile.ini)"`
	ProfileDir string `json:"profile_dir,omitempty" jsonschema:"profile directory (default profiles)"`
	ThemeDir   string `json:"theme_dir,omitempty"   jsonschema:"theme directory (default themes)"`
	Field      string `json:"field,omitempty"       jsonschema:"profile field to update (default theme)"`
	Policy     string `json:"policy,omitempty"      jsonschema:"next-value policy: increment (default) or cycle"`
}

func (in ProfileUpdateInput) location() LocationInput {
	return LocationInput{
		BaseDir:    in.BaseDir,
		ConfigFile: in.ConfigFile,
		ProfileDir: in.ProfileDir,
		ThemeDir:   in.ThemeDir,
	}
}

// ProfileUpdateOutput is the output for the config_profile_update tool.
type ProfileUpdateOutput struct {
	Profile           string `json:"profile"             jsonschema:"active profile name"`
	ProfileConfigFile string `json:"profile_config_file" jsonschema:"profile file that was rewritten"`
	Field             string `json:"field"               jsonschema:"updated field"`
	Previous          string `json:"previous"            jsonschema:"value before the update"`
	Value             string `json:"value"               jsonschema:"value after the update"`
}

func handleProfileUpdate(engine *resolver.Engine, defaults resolver.Overrides) mcp.ToolHandlerFor[ProfileUpdateInput, ProfileUpdateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ProfileUpdateInput) (*mcp.CallToolResult, ProfileUpdateOutput, error) {
		policy, err := resolver.PolicyByName(input.Policy)
		if err != nil {
			return nil, ProfileUpdateOutput{}, err
		}

		result, err := engine.UpdateField(resolver.UpdateRequest{
			Overrides: input.location().overrides(defaults),
			Field:     input.Field,
			Next:      policy,
		})
		if err != nil {
			return nil, ProfileUpdateOutput{}, err
		}

		return nil, ProfileUpdateOutput{
			Profile:           result.Profile,
			ProfileConfigFile: result.ProfileConfigFile,
			Field:             result.Field,
			Previous:          result.Previous,
			Value:             result.Value,
		}, nil
	}
}
