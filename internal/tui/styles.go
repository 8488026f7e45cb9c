package tui

import (
	"github.com/charmbracelet/lipgloss"

	"chordquiz/internal/tui/theme"
)

var (
	headerStyle   = theme.Title.Padding(0, 1)
	sectionStyle  = theme.Subtitle
	counterStyle  = theme.Muted
	correctStyle  = theme.Ok
	wrongStyle    = theme.Error
	pendingStyle  = theme.Muted
	nextHintStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)

	chordBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Border).
			Padding(0, 3)

	// Note grid cells
	cellWidth       = 9
	noteCursorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderFocused)
	noteCellStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder())

	settingsStyle = theme.Panel
)
