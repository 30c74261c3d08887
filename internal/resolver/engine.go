package resolver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Engine runs the resolution operations. It holds only a logger; every call
// builds its paths from the Overrides it is given.
type Engine struct {
	logger *log.Logger
}

// New creates an Engine. A nil logger discards all log output.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{logger: logger}
}

// state logs entry into a pipeline state at debug level.
func (e *Engine) state(op, name string, keyvals ...any) {
	e.logger.Debug(name, append([]any{"op", op}, keyvals...)...)
}

// statFile reports whether path exists as a regular file. Errors other than
// "does not exist" are returned so callers can attach them as a cause.
func statFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// statDir reports whether path exists as a directory.
func statDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	return info.IsDir(), nil
}
