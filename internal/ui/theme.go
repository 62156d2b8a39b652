package ui

import (
	"charm.land/lipgloss/v2"
)

// Color palette: muted, readable on dark and light terminals
var (
	Primary = lipgloss.Color("#8B5CF6") // Purple
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F97316") // Orange
	Danger  = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success)

	Bad = lipgloss.NewStyle().
		Foreground(Danger)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)
