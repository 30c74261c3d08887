package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/dotcfg/internal/fixture"
	"github.com/gorewood/dotcfg/internal/output"
)

// newFixturesCmd creates the fixtures command, which writes the canned
// configuration tree used by the --test scenarios.
func newFixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures <dir>",
		Short: "Write the test fixture tree into a directory",
		Long: `Write the canned config/, profiles/ and themes/ tree into <dir>.

Combine with --base-dir and --test to reproduce a scenario:
  dotcfg fixtures /tmp/dotcfg-fixture
  dotcfg config config_read --base-dir /tmp/dotcfg-fixture --test=5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			dir, err := filepath.Abs(args[0])
			if err != nil {
				exitErr := output.NewSystemErrorWithCause(err.Error(), err)
				printer.Error(exitErr)
				return exitErr
			}
			if err := fixture.Materialize(dir); err != nil {
				exitErr := output.NewSystemErrorWithCause(
					fmt.Sprintf("writing fixtures: %v", err), err)
				printer.Error(exitErr)
				return exitErr
			}

			if printer.IsJSON() {
				return printer.Success(map[string]any{"dir": dir})
			}
			printer.Field("FIXTURE_DIR", dir)
			return nil
		},
	}
}

// newScenariosCmd creates the scenarios command, which lists the canned
// --test scenarios.
func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the canned --test scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			scenarios, err := fixture.Scenarios()
			if err != nil {
				exitErr := output.NewSystemErrorWithCause(err.Error(), err)
				printer.Error(exitErr)
				return exitErr
			}

			if printer.IsJSON() {
				return printer.Success(map[string]any{"scenarios": scenarios})
			}
			for _, scenario := range scenarios {
				printer.Field(strconv.Itoa(scenario.ID), scenario.Description)
			}
			return nil
		},
	}
}
