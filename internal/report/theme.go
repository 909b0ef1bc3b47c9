// Package report renders simulation results for the terminal.
package report

import "github.com/charmbracelet/lipgloss"

// Theme contains the styles used by every renderer in this package.
type Theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Bad    lipgloss.Style
	Border lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style

	BarFull  string // Glyph for the filled part of a status bar
	BarEmpty string // Glyph for the empty part
}

// DefaultTheme returns the default colored theme.
func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Good:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
		Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
		Bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // Red
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),

		BarFull:  "█",
		BarEmpty: "░",
	}
}

// PlainTheme returns a theme without colors, for logs and pipes.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:  plain,
		Label:  plain,
		Value:  plain,
		Muted:  plain,
		Good:   plain,
		Warn:   plain,
		Bad:    plain,
		Border: plain,
		Header: plain.Padding(0, 1),
		Cell:   plain.Padding(0, 1),

		BarFull:  "#",
		BarEmpty: ".",
	}
}

// statusStyle picks a color for a status value.
func (t Theme) statusStyle(status float64) lipgloss.Style {
	switch {
	case status >= 0.75:
		return t.Good
	case status > 0:
		return t.Warn
	default:
		return t.Bad
	}
}
