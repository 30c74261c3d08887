package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/dotcfg/internal/dispatch"
	"github.com/gorewood/dotcfg/internal/output"
)

// commonHelpers returns the dispatch table for `dotcfg common`.
func commonHelpers() dispatch.Table[output.Level] {
	return dispatch.Table[output.Level]{
		string(output.LevelSuccess): output.LevelSuccess,
		string(output.LevelDie):     output.LevelDie,
		string(output.LevelWarning): output.LevelWarning,
		string(output.LevelInfo):    output.LevelInfo,
	}
}

// newCommonCmd creates the common command.
func newCommonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "common <helper> [message...]",
		Short: "Print a styled status message",
		Long: `Print a status message for installer scripts.

Helpers: success (green), die (red), warning (yellow), info (blue).
Colors are only used on a terminal. A helper given no message prints
nothing and exits 1.

Examples:
  dotcfg common success "Profile installed"
  dotcfg common warning Theme directory is empty`,
		Args:      cobra.ArbitraryArgs,
		ValidArgs: commonHelpers().Names(),
		RunE:      runCommon,
	}
}

func runCommon(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	level, rest, err := commonHelpers().Lookup(args)
	if err != nil {
		printer.Error(err)
		return err
	}

	message := strings.Join(rest, " ")
	if message == "" {
		return output.NewExitError(output.ExitUserError, "")
	}

	return printer.Message(level, message)
}
