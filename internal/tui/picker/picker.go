package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"chordquiz/internal/music"
	"chordquiz/internal/tui/messages"
	"chordquiz/internal/tui/theme"
)

const maxVisible = 8

var (
	itemStyle     = lipgloss.NewStyle().Foreground(theme.Text)
	moreStyle     = lipgloss.NewStyle().Foreground(theme.TextMuted)
	selectedStyle = theme.Selected
)

// Model is a fuzzy-searchable single-select list of catalog chords.
type Model struct {
	names     []string
	filtered  []int // indices into names
	selected  int
	textInput textinput.Model
	width     int
	height    int
}

// New creates a picker over every catalog chord.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Chord name..."
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 20

	m := Model{
		names:     music.ChordNames(),
		textInput: ti,
	}
	m.applyFilter()
	return m
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Filtered returns the chord names currently matching the query, best first.
func (m Model) Filtered() []string {
	out := make([]string, len(m.filtered))
	for i, idx := range m.filtered {
		out[i] = m.names[idx]
	}
	return out
}

// Current returns the highlighted chord, or "" when nothing matches.
func (m Model) Current() string {
	if m.selected < len(m.filtered) {
		return m.names[m.filtered[m.selected]]
	}
	return ""
}

func (m *Model) applyFilter() {
	query := m.textInput.Value()
	if query == "" {
		m.filtered = make([]int, len(m.names))
		for i := range m.names {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(query, m.names)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
		// An exact name always wins over a fuzzy ranking.
		for i, idx := range m.filtered {
			if strings.EqualFold(m.names[idx], query) && i > 0 {
				copy(m.filtered[1:i+1], m.filtered[:i])
				m.filtered[0] = idx
				break
			}
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles picker keys. Choosing or dismissing is reported with a
// PracticeChordMsg or ClosePickerMsg command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, messages.ClosePicker()

	case "enter":
		if chord := m.Current(); chord != "" {
			return m, messages.PracticeChord(chord)
		}
		return m, nil

	case "down", "ctrl+n", "tab":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return m, nil

	case "up", "ctrl+p", "shift+tab":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.selected = 0
	m.applyFilter()
	return m, cmd
}

// View renders the picker as a centered modal.
func (m Model) View() string {
	var lines []string
	lines = append(lines, theme.ModalTitle.Render("Practice a chord"))
	lines = append(lines, "")
	lines = append(lines, "  "+m.textInput.View())
	lines = append(lines, "")

	if len(m.filtered) == 0 {
		lines = append(lines, itemStyle.Render("  No matches"))
	} else {
		// keep the highlighted row inside the window
		start := 0
		if m.selected >= maxVisible {
			start = m.selected - maxVisible + 1
		}
		end := min(start+maxVisible, len(m.filtered))
		for i := start; i < end; i++ {
			name := m.names[m.filtered[i]]
			style := itemStyle
			prefix := "  "
			if i == m.selected {
				style = selectedStyle
				prefix = "► "
			}
			lines = append(lines, style.Render(prefix+name))
		}
		if rest := len(m.filtered) - end; rest > 0 {
			lines = append(lines, moreStyle.Render(fmt.Sprintf("  ... %d more", rest)))
		}
	}

	lines = append(lines, "")
	lines = append(lines, theme.ModalHelp.Render("type to filter • ↑/↓: navigate • enter: practice • esc: cancel"))

	boxed := theme.ModalBox.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxed)
}
