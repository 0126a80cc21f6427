package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named set of lipgloss colors.
type Theme struct {
	Name    string
	Accent  lipgloss.TerminalColor
	Label   lipgloss.TerminalColor
	Value   lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
}

var (
	// DarkTheme is the default orange-accented palette.
	DarkTheme = Theme{
		Name:    "dark",
		Accent:  lipgloss.Color("#FF8C00"),
		Label:   lipgloss.Color("#9E9E9E"),
		Value:   lipgloss.Color("#E0E0E0"),
		Success: lipgloss.Color("#9ece6a"),
		Error:   lipgloss.Color("#FF4444"),
		Border:  lipgloss.Color("#FF6600"),
	}

	// NoColorTheme renders with the terminal's default colors.
	NoColorTheme = Theme{
		Name:    "none",
		Accent:  lipgloss.NoColor{},
		Label:   lipgloss.NoColor{},
		Value:   lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Mostly useful in tests.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme selects the theme from the noColor flag and the NO_COLOR
// environment variable (https://no-color.org/). Any value of NO_COLOR,
// even empty, disables colors.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
