package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/dotcfg/internal/dispatch"
	"github.com/gorewood/dotcfg/internal/output"
	"github.com/gorewood/dotcfg/internal/resolver"
	"github.com/gorewood/dotcfg/internal/settings"
)

// operation carries what a config operation needs for one invocation.
type operation struct {
	engine   *resolver.Engine
	settings *settings.Settings
	printer  *output.Printer
}

// operationFunc runs one config operation. Returned errors are resolver
// errors; the caller maps them to the operation's exit code.
type operationFunc func(op *operation) error

// configOperations returns the dispatch table for `dotcfg config`.
func configOperations() dispatch.Table[operationFunc] {
	return dispatch.Table[operationFunc]{
		resolver.OpConfigRead:    runConfigRead,
		resolver.OpProfileList:   runProfileList,
		resolver.OpThemeList:     runThemeList,
		resolver.OpProfileUpdate: runProfileUpdate,
	}
}

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <operation>",
		Short: "Run a configuration operation",
		Long: `Run one named configuration operation.

Operations:
  config_read            Validate the configuration and print its resolved paths
  config_profile_list    Print the number of entries in the profile directory
  config_theme_list      Print the number of entries in the theme directory
  config_profile_update  Advance a field (default: theme) in the active profile

Each failed step exits with its own code. For config_read:
  1 configuration file missing, 2 profile directory missing,
  3 profile name not set, 4 profile configuration file missing.

Examples:
  dotcfg config config_read
  dotcfg config config_read --base-dir ~/.dotfiles
  dotcfg config config_profile_update --policy cycle
  dotcfg config config_read --test=2`,
		Args:      cobra.ArbitraryArgs,
		ValidArgs: configOperations().Names(),
		RunE:      runConfig,
	}
	addOverrideFlags(cmd)
	cmd.Flags().String(settings.KeyField, "", "Profile field to update (default "+resolver.DefaultField+")")
	cmd.Flags().String(settings.KeyPolicy, "", "Next-value policy: increment, cycle (default "+resolver.DefaultPolicy+")")
	return cmd
}

// addOverrideFlags registers the location flags shared by config and serve.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().String(settings.KeyBaseDir, "", "Base directory for relative paths (default: working directory)")
	cmd.Flags().String(settings.KeyConfigFile, "", "Configuration file (default "+resolver.DefaultConfigFile+")")
	cmd.Flags().String(settings.KeyProfileDir, "", "Profile directory (default "+resolver.DefaultProfileDir+")")
	cmd.Flags().String(settings.KeyThemeDir, "", "Theme directory (default "+resolver.DefaultThemeDir+")")
	cmd.Flags().Int(settings.KeyTest, 0, "Use canned test scenario N (see 'dotcfg scenarios')")
}

// loadSettings resolves the invocation's settings from flags, environment
// and the settings file.
func loadSettings(cmd *cobra.Command) (*settings.Settings, error) {
	file, required := settingsFile(cmd)
	return settings.Load(settings.Options{
		Flags:    cmd.Flags(),
		File:     file,
		Required: required,
	})
}

func runConfig(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	run, _, err := configOperations().Lookup(args)
	if err != nil {
		printer.Error(err)
		return err
	}
	name := args[0]

	loaded, err := loadSettings(cmd)
	if err != nil {
		exitErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}

	op := &operation{
		engine:   resolver.New(newLogger(cmd)),
		settings: loaded,
		printer:  printer,
	}
	if err := run(op); err != nil {
		exitErr := output.NewExitErrorWithCause(resolver.ExitCode(name, err), err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}
	return nil
}

func runConfigRead(op *operation) error {
	res, err := op.engine.ReadConfig(op.settings.Overrides)
	if err != nil {
		return err
	}

	if op.printer.IsJSON() {
		return op.printer.Success(map[string]any{
			"config_file_path":    res.Paths.ConfigFile,
			"profile":             res.Profile,
			"profile_config_file": res.ProfileConfigFile,
		})
	}
	op.printer.Field("CONFIG_FILE_PATH", res.Paths.ConfigFile)
	op.printer.Field("PROFILE", res.Profile)
	op.printer.Field("PROFILE_CONFIG_FILE", res.ProfileConfigFile)
	return nil
}

func runProfileList(op *operation) error {
	names, err := op.engine.ProfileNames(op.settings.Overrides)
	if err != nil {
		return err
	}
	return printNames(op.printer, names)
}

func runThemeList(op *operation) error {
	names, err := op.engine.ThemeNames(op.settings.Overrides)
	if err != nil {
		return err
	}
	return printNames(op.printer, names)
}

// printNames prints the entry count, or the count and names in JSON mode.
func printNames(printer *output.Printer, names []string) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"count": len(names),
			"names": names,
		})
	}
	printer.Println(len(names))
	return nil
}

func runProfileUpdate(op *operation) error {
	policy, err := resolver.PolicyByName(op.settings.Policy)
	if err != nil {
		return err
	}

	result, err := op.engine.UpdateField(resolver.UpdateRequest{
		Overrides: op.settings.Overrides,
		Field:     op.settings.Field,
		Next:      policy,
	})
	if err != nil {
		return err
	}

	if op.printer.IsJSON() {
		return op.printer.Success(map[string]any{
			"profile":             result.Profile,
			"profile_config_file": result.ProfileConfigFile,
			"field":               result.Field,
			"previous":            result.Previous,
			"value":               result.Value,
		})
	}
	op.printer.Println(result.Value)
	return nil
}
