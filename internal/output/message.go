package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Level selects the style of a status message.
type Level string

// Message levels understood by Message.
const (
	LevelSuccess Level = "success"
	LevelDie     Level = "die"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Message writes a status line styled for its level.
// In JSON mode it writes {"level": ..., "message": ...}.
func (p *Printer) Message(level Level, message string) error {
	if p.json {
		return p.writeJSON(map[string]any{"level": string(level), "message": message})
	}
	mustWrite(fmt.Fprintln(p.w, p.levelStyle(level).Render(message)))
	return nil
}

func (p *Printer) levelStyle(level Level) lipgloss.Style {
	switch level {
	case LevelSuccess:
		return p.styles.Success
	case LevelDie:
		return p.styles.Error
	case LevelWarning:
		return p.styles.Warning
	default:
		return p.styles.Info
	}
}
