// Package main provides the entry point for the dotcfg CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gorewood/dotcfg/internal/config"
	"github.com/gorewood/dotcfg/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color flag against the command's output writer.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter returns a printer for the command's output settings.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
}

// newLogger returns the stderr logger. --debug lowers the level to Debug.
func newLogger(cmd *cobra.Command) *log.Logger {
	level := log.WarnLevel
	if debug, _ := cmd.Root().PersistentFlags().GetBool("debug"); debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "dotcfg",
		Level:  level,
	})
}

// settingsFile returns the --settings value and whether it was set explicitly.
// Without the flag it falls back to the settings file in the config directory.
func settingsFile(cmd *cobra.Command) (string, bool) {
	flag := cmd.Root().PersistentFlags().Lookup("settings")
	if flag != nil && flag.Changed {
		return flag.Value.String(), true
	}
	return config.SettingsFile(), false
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(errorHandler),
		fang.WithNotifySignal(os.Interrupt),
	)
	return output.GetExitCode(err)
}

// errorHandler leaves exit-coded errors alone: the command already printed
// them in the requested format. Everything else gets fang's rendering.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	if output.IsReported(err) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the dotcfg CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dotcfg",
		Short: "Resolve and update dotfiles profile configuration",
		Long: `dotcfg - Resolve the active dotfiles profile and its configuration files.

dotcfg reads the configuration file (config/config_profile.ini by default) to
find the active profile, validates the profile and theme directories, and can
advance a field such as the active theme in the profile's configuration file.

Operations are dispatched by name:
  dotcfg config config_read
  dotcfg config config_profile_list
  dotcfg config config_theme_list
  dotcfg config config_profile_update

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'dotcfg --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		mode, _ := cmd.Root().PersistentFlags().GetString("color")
		if err := output.ValidateColorMode(mode); err != nil {
			exitErr := output.NewExitErrorWithCause(output.ExitUserError, err.Error(), err)
			output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).Error(exitErr)
			return exitErr
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")
	cmd.PersistentFlags().Bool("debug", false, "Log resolution steps to stderr")
	cmd.PersistentFlags().String("settings", "", "Settings file (default "+config.SettingsFileName+" in the dotcfg config directory)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newConfigCmd(), "core")
	addGroupedCommand(cmd, newCommonCmd(), "core")

	addGroupedCommand(cmd, newServeCmd(), "agent")

	addGroupedCommand(cmd, newFixturesCmd(), "admin")
	addGroupedCommand(cmd, newScenariosCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
