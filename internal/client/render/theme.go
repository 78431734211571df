// Package render draws the dashboard in a terminal with lipgloss and exports
// the chart options as JSON.
package render

import "github.com/charmbracelet/lipgloss"

var (
	Blue    = lipgloss.Color("#3b82f6")
	Red     = lipgloss.Color("#ef4444")
	Gray    = lipgloss.Color("#6b7280")
	Surface = lipgloss.Color("#e5e7eb")

	pieColors = []lipgloss.Color{
		lipgloss.Color("#3b82f6"),
		lipgloss.Color("#10b981"),
		lipgloss.Color("#f59e0b"),
		lipgloss.Color("#ef4444"),
		lipgloss.Color("#8b5cf6"),
		lipgloss.Color("#06b6d4"),
	}

	Title = lipgloss.NewStyle().Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Gray)

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface).
		Padding(0, 2).
		MarginRight(1)

	CardValue = lipgloss.NewStyle().Bold(true).Foreground(Blue)

	Banner = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Red).
		Foreground(Red).
		Padding(0, 1)

	Bar = lipgloss.NewStyle().Foreground(Blue)
)
