package ui

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	// Message styles
	UserLabel     lipgloss.Style
	UserContent   lipgloss.Style
	AgentLabel    lipgloss.Style
	AgentContent  lipgloss.Style
	MessageMeta   lipgloss.Style
	SystemMessage lipgloss.Style
	ErrorMessage  lipgloss.Style

	// Structured field rows inside agent replies
	FieldIcon  lipgloss.Style
	FieldLabel lipgloss.Style
	FieldValue lipgloss.Style

	// Sidebar
	SidebarTitle lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style
	EmptyState   lipgloss.Style
	Sidebar      lipgloss.Style

	// Chrome
	StatusBar   lipgloss.Style
	StatusOK    lipgloss.Style
	StatusBad   lipgloss.Style
	InputBorder lipgloss.Style
	HelpLine    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		UserLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Blue
			Bold(true),

		UserContent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		AgentLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("76")). // Green
			Bold(true),

		AgentContent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		MessageMeta: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Faint(true),

		SystemMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),

		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true),

		FieldIcon: lipgloss.NewStyle().
			MarginLeft(2),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("249")).
			Bold(true),

		FieldValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")),

		SidebarTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			MarginBottom(1),

		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true),

		CardMeta: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		EmptyState: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("250")).
			Padding(0, 1),

		StatusOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("76")),

		StatusBad: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		InputBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),

		HelpLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
