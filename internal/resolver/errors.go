package resolver

import (
	"errors"
	"fmt"
)

// Kind identifies the validation step that failed.
type Kind int

// Failure kinds, one per validation step.
const (
	KindConfigurationFileNotFound Kind = iota + 1
	KindProfilePathNotFound
	KindProfileNotFound
	KindProfileConfigurationFileNotFound
	KindThemePathNotFound
	KindProfileFieldNotFound
)

// Error is a failed validation step. Detail is the caller token or resolved
// path echoed in the message; Cause holds an underlying I/O error, if any.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrConfigurationFileNotFound        = &Error{Kind: KindConfigurationFileNotFound}
	ErrProfilePathNotFound              = &Error{Kind: KindProfilePathNotFound}
	ErrProfileNotFound                  = &Error{Kind: KindProfileNotFound}
	ErrProfileConfigurationFileNotFound = &Error{Kind: KindProfileConfigurationFileNotFound}
	ErrThemePathNotFound                = &Error{Kind: KindThemePathNotFound}
	ErrProfileFieldNotFound             = &Error{Kind: KindProfileFieldNotFound}
)

// Error renders the user-facing message for the kind.
func (e *Error) Error() string {
	switch e.Kind {
	case KindConfigurationFileNotFound:
		return fmt.Sprintf("Configuration file not found! (%s)", e.Detail)
	case KindProfilePathNotFound:
		return fmt.Sprintf("Profile path not found! (%s)", e.Detail)
	case KindProfileNotFound:
		return "Profile not found!"
	case KindProfileConfigurationFileNotFound:
		return fmt.Sprintf("Profile configuration file not found! (%s)", e.Detail)
	case KindThemePathNotFound:
		return fmt.Sprintf("Theme path not found! (%s)", e.Detail)
	case KindProfileFieldNotFound:
		return "The profile field was not found in the global section"
	default:
		return fmt.Sprintf("resolver error %d", int(e.Kind))
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// KindOf returns the Kind of err, or 0 when err is not a resolver error.
func KindOf(err error) Kind {
	var resolverErr *Error
	if errors.As(err, &resolverErr) {
		return resolverErr.Kind
	}
	return 0
}

func newError(kind Kind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}
