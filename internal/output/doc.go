// Package output provides plain and structured output handling for the dotcfg CLI.
//
// Callers such as the dotfiles installer parse dotcfg's stdout line by line,
// so human mode prints bare lines with no decoration beyond optional color.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Field("PROFILE", "work")   // "PROFILE work"
//	printer.Println(2)                 // "2"
//	printer.Error(err)                 // bare message, red on a TTY
//	printer.Message(output.LevelInfo, "Setup zsh")
//
// # JSON Mode
//
// With --json, results go through Success and errors are encoded as
// {"error": "message", "code": N}.
//
// # Exit Codes
//
// ExitError carries the process exit code. Resolution operations assign
// their own codes with NewExitError; GetExitCode turns any error into the
// code main passes to os.Exit.
package output
