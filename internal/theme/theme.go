package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header         *lipgloss.Style
	CategoryLabel  *lipgloss.Style
	Tile           *lipgloss.Style
	SelectedTile   *lipgloss.Style
	DimmedTile     *lipgloss.Style
	CarriedTile    *lipgloss.Style
	HoldIndicator  *lipgloss.Style
	DialogPrompt   *lipgloss.Style
	DialogAction   *lipgloss.Style
	DialogSelected *lipgloss.Style
	SearchPrompt   *lipgloss.Style
	SearchMatch    *lipgloss.Style
	DetailTitle    *lipgloss.Style
	DetailBody     *lipgloss.Style
	Toast          *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Footer         *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	CategoryLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Tile: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedTile: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DimmedTile: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
	),
	CarriedTile: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	HoldIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	DialogPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	DialogAction: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	DialogSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	SearchMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	DetailTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	DetailBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Toast: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
