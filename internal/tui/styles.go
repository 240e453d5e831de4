package tui

import (
	huh "github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")).
			MarginBottom(1)

	// Selected item styling
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Help text styling
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F56")).
			Bold(true)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Warning styling
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFBD2E"))

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	// Path styling for filesystem locations in command output
	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#56B6C2"))
)

// NewHuhTheme returns the form theme shared by all interactive prompts.
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeBase()

	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#04B575")).Bold(true)
	theme.Focused.Description = theme.Focused.Description.Foreground(lipgloss.Color("#888888"))
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(lipgloss.Color("#04B575"))
	theme.Focused.TextInput.Prompt = theme.Focused.TextInput.Prompt.Foreground(lipgloss.Color("#04B575"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#666666"))

	return theme
}
