// Package style holds the colors and icons shared by terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Indigo = lipgloss.Color("#6366F1")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Gray   = lipgloss.Color("#98A2B3")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Skip    = "○"
	Arrow   = "→"
)

// LevelColor returns the foreground color for a log level name:
// "warn", "error", "debug" or anything else for info.
func LevelColor(level string) lipgloss.Color {
	switch level {
	case "warn":
		return Yellow
	case "error":
		return Red
	case "debug":
		return Gray
	default:
		return Slate
	}
}
