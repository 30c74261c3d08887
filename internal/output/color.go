package output

import (
	"fmt"
	"io"
	"os"
)

// Color modes accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidateColorMode returns an error for values other than auto, always, never.
// An empty string is accepted and means auto.
func ValidateColorMode(colorMode string) error {
	switch colorMode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)", colorMode, ColorAuto, ColorAlways, ColorNever)
	}
}

// ResolveColorMode determines whether styling is enabled from the --color
// flag and the detected TTY state. "auto" and unknown values follow isTTY.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
