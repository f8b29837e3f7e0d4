// Package output renders the hook's messages for the terminal.
package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha colors.
var (
	Red   = lipgloss.Color("#f38ba8")
	Blue  = lipgloss.Color("#89dceb")
	Mauve = lipgloss.Color("#cba6f7")
	Text  = lipgloss.Color("#cdd6f4")
)

// ErrorStyle renders messages that fail the hook.
var ErrorStyle = lipgloss.NewStyle().Foreground(Red)

// Blocking formats a message that fails the hook.
func Blocking(msg string) string {
	return ErrorStyle.Render("⛔ BLOCKING: " + msg)
}
