package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/msetsma/gitnav/internal/preview"
)

// Preview palette. Basic ANSI indices so every color profile from ANSI up
// renders them without conversion.
var (
	red     = lipgloss.Color("1")
	green   = lipgloss.Color("2")
	yellow  = lipgloss.Color("3")
	magenta = lipgloss.Color("5")
	cyan    = lipgloss.Color("6")
)

// PreviewStyles returns the colored style set for preview rendering.
func PreviewStyles() preview.Styles {
	return preview.Styles{
		Label:     lipgloss.NewStyle().Bold(true).Foreground(cyan),
		Name:      lipgloss.NewStyle().Bold(true),
		Branch:    lipgloss.NewStyle().Foreground(yellow),
		Activity:  lipgloss.NewStyle().Foreground(magenta),
		Staged:    lipgloss.NewStyle().Foreground(green),
		Unstaged:  lipgloss.NewStyle().Foreground(yellow),
		Untracked: lipgloss.NewStyle().Foreground(red),
		Hash:      lipgloss.NewStyle().Foreground(yellow),
	}
}
