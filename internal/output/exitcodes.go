// Package output provides exit-coded errors and plain/styled output for the dotcfg CLI.
package output

import "errors"

// Exit codes shared by every command. Operation failures use their own
// per-operation codes through NewExitError; these cover the rest.
// 0 = Success
// 1 = User error (no operation, bad flag value, missing message)
// 5 = System error (settings file unreadable, I/O failure outside the pipeline)
//
// 2 to 4 are left to the operations, whose step failures run up to 4.
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 5
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewExitError creates an error with an explicit exit code.
// Use for operation-specific failures whose code is part of the contract.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
	}
}

// NewExitErrorWithCause creates an error with an explicit exit code wrapping a cause.
func NewExitErrorWithCause(code int, message string, cause error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewUserError creates an error for user-caused issues (exit code 1).
func NewUserError(message string) *ExitError {
	return NewExitError(ExitUserError, message)
}

// NewSystemErrorWithCause creates a system error (exit code 2) wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return NewExitErrorWithCause(ExitSystemError, message, cause)
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Default to user error for untyped errors
	return ExitUserError
}

// IsReported reports whether err is an ExitError, which commands print
// themselves before returning.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}
