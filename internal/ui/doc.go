// Package ui provides the color palette used by the presentation layer.
// Colors are lipgloss colors so they degrade with the terminal's profile,
// and the whole palette collapses to no color when NO_COLOR is set.
package ui
