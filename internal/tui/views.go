package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chordquiz/internal/music"
	"chordquiz/internal/quiz"
	"chordquiz/internal/tui/shared"
	"chordquiz/internal/tui/theme"
)

var helpSections = []shared.HelpSection{
	{
		Title: "Answering",
		Binds: []shared.HelpBind{
			{Key: "h/j/k/l", Desc: "Move over the notes"},
			{Key: "space/enter", Desc: "Select or deselect note"},
			{Key: "c d e f g a b", Desc: "Toggle a natural"},
			{Key: "C D F G A", Desc: "Toggle a sharp"},
			{Key: "n", Desc: "Next question (once correct)"},
		},
	},
	{
		Title: "Questions",
		Binds: []shared.HelpBind{
			{Key: "s", Desc: "Show settings"},
			{Key: "M", Desc: "Include major chords"},
			{Key: "m", Desc: "Include minor chords"},
			{Key: "/", Desc: "Practice a specific chord"},
		},
	},
	{
		Title: "General",
		Binds: []shared.HelpBind{
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit"},
			{Key: "ctrl+c", Desc: "Force quit"},
		},
	},
}

func (m AppModel) renderQuiz() string {
	s := m.session
	status := s.Status()

	var sections []string

	header := headerStyle.Render("chord quiz") + "  " +
		counterStyle.Render(fmt.Sprintf("solved: %d", s.Solved()))
	sections = append(sections, header, "")

	if m.showSettings {
		sections = append(sections, m.renderSettings(), "")
	}

	sections = append(sections, sectionStyle.Render("question"))
	sections = append(sections, chordBoxStyle.Render(theme.ChordName(s.Chord(), s.Color())), "")

	if status != quiz.Correct {
		sections = append(sections, sectionStyle.Render("select the notes of the chord"))
		sections = append(sections, m.renderGrid())
	}

	if len(s.Selected()) > 0 {
		sections = append(sections, m.renderSelected())
	}

	sections = append(sections, m.renderStatus(status))

	if m.celebrating && status == quiz.Correct {
		sections = append(sections, "", renderConfetti(m.celebrationSeq, min(m.width, 60)))
	}

	return strings.Join(sections, "\n")
}

func (m AppModel) renderSettings() string {
	f := m.session.Filters()
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}
	lines := []string{
		theme.Bold.Render("settings"),
		check(f.IncludeMajor) + " major chords  (M)",
		check(f.IncludeMinor) + " minor chords  (m)",
		counterStyle.Render(fmt.Sprintf("available: %d types", m.session.AvailableCount())),
	}
	return settingsStyle.Render(strings.Join(lines, "\n"))
}

func (m AppModel) renderGrid() string {
	var rows []string
	for start := 0; start < len(music.Notes); start += gridColumns {
		var cells []string
		for i := start; i < min(start+gridColumns, len(music.Notes)); i++ {
			cells = append(cells, m.renderNoteCell(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m AppModel) renderNoteCell(i int) string {
	note := music.Notes[i]
	label := note.Label
	if m.session.IsSelected(note.Key) {
		label = "✓ " + label
	}
	badge := lipgloss.PlaceHorizontal(cellWidth, lipgloss.Center, theme.NoteBadge(label, note.Color))

	if i == m.cursor {
		return noteCursorStyle.Render(badge)
	}
	return noteCellStyle.Render(badge)
}

func (m AppModel) renderSelected() string {
	chord := m.session.Chord()
	var badges []string
	for _, key := range quiz.SortByRoot(chord, m.session.Selected()) {
		note, ok := music.LookupNote(key)
		if !ok {
			continue
		}
		badges = append(badges, theme.NoteBadge(quiz.DisplayLabel(chord, key), note.Color))
	}
	return "selected: " + strings.Join(badges, " ")
}

func (m AppModel) renderStatus(status quiz.Status) string {
	switch status {
	case quiz.Correct:
		return correctStyle.Render("✓ correct!") + "  " + nextHintStyle.Render("press n for the next question")
	case quiz.Incorrect:
		return wrongStyle.Render("✗ incorrect. try again.")
	default:
		n := len(m.session.Selected())
		return pendingStyle.Render(fmt.Sprintf("%d/%d notes selected", n, quiz.MinSelections))
	}
}

func (m AppModel) renderStatusBar() string {
	text := "space:select | n:next | s:settings | /:practice | ?:help | q:quit"
	return theme.StatusBar.Width(m.width).Render(theme.HelpHint.Render(text))
}

// renderConfetti draws one line of note-colored confetti. The pattern shifts
// with seq so consecutive celebrations look different.
func renderConfetti(seq, width int) string {
	glyphs := []string{"*", "•", "+", "✦", "·"}
	var b strings.Builder
	for i := 0; i < width/2; i++ {
		note := music.Notes[(i*7+seq*5)%len(music.Notes)]
		glyph := glyphs[(i+seq)%len(glyphs)]
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(note.Color)).Render(glyph))
		b.WriteString(" ")
	}
	return b.String()
}
