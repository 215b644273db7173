package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#818CF8")
	muted  = lipgloss.Color("#64748B")
	subtle = lipgloss.Color("#334155")
	text   = lipgloss.Color("#E2E8F0")
	danger = lipgloss.Color("#F87171")
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(text)
	accentStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle     = lipgloss.NewStyle().Foreground(muted)
	errorStyle     = lipgloss.NewStyle().Foreground(danger)
	timestampStyle = lipgloss.NewStyle().Foreground(muted).Faint(true)
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(text).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(subtle)

var userBubbleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#4F46E5")).
	Padding(0, 1)

var modelBubbleStyle = lipgloss.NewStyle().
	Foreground(text).
	Background(lipgloss.Color("#1E293B")).
	Padding(0, 1)

var previewStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(subtle).
	Padding(1, 2)

var placeholderStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(subtle).
	Foreground(muted).
	Padding(1, 3).
	Align(lipgloss.Center)
