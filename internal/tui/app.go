package tui

import (
	"time"

	"chordquiz/internal/config"
	"chordquiz/internal/logs"
	"chordquiz/internal/music"
	"chordquiz/internal/quiz"
	"chordquiz/internal/tui/messages"
	"chordquiz/internal/tui/picker"
	"chordquiz/internal/tui/shared"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	gridColumns         = 6
	celebrationDuration = 2 * time.Second
)

// AppModel is the root model of the quiz screen
type AppModel struct {
	session        *quiz.Session
	cursor         int // index into music.Notes
	showSettings   bool
	showHelp       bool
	picking        bool
	picker         picker.Model
	celebrating    bool
	celebrationSeq int
	width          int
	height         int
	ready          bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config) AppModel {
	filters := quiz.Filters{
		IncludeMajor: cfg.IncludeMajor,
		IncludeMinor: cfg.IncludeMinor,
	}
	return AppModel{
		session: quiz.NewSession(quiz.NewSelector(cfg.Seed), filters),
		picker:  picker.New(),
	}
}

// Session exposes the quiz state, mainly for tests.
func (m AppModel) Session() *quiz.Session {
	return m.session
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.picker.SetSize(msg.Width, msg.Height)
		return m, nil

	case messages.PracticeChordMsg:
		m.picking = false
		cmd := m.apply(m.session.Practice(msg.Chord))
		return m, cmd

	case messages.ClosePickerMsg:
		m.picking = false
		return m, nil

	case messages.CelebrationDoneMsg:
		// A newer celebration may have started since this tick was scheduled.
		if msg.Seq == m.celebrationSeq {
			m.celebrating = false
		}
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.picking {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}

		return m.handleKey(msg)
	}

	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "/":
		m.picking = true
		m.picker = picker.New()
		m.picker.SetSize(m.width, m.height)
		return m, m.picker.Init()
	case "s":
		m.showSettings = !m.showSettings
		return m, nil
	case "M":
		cmd := m.apply(m.session.ToggleMajor())
		return m, cmd
	case "m":
		cmd := m.apply(m.session.ToggleMinor())
		return m, cmd
	case "n":
		tr, ok := m.session.Next()
		if !ok {
			return m, nil
		}
		cmd := m.apply(tr)
		return m, cmd

	case "h", "left":
		if m.cursor%gridColumns > 0 {
			m.cursor--
		}
		return m, nil
	case "l", "right":
		if m.cursor%gridColumns < gridColumns-1 && m.cursor < len(music.Notes)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor >= gridColumns {
			m.cursor -= gridColumns
		}
		return m, nil
	case "j", "down":
		if m.cursor+gridColumns < len(music.Notes) {
			m.cursor += gridColumns
		}
		return m, nil
	case " ", "enter":
		cmd := m.apply(m.session.ToggleNote(music.Notes[m.cursor].Key))
		return m, cmd
	}

	if note, ok := noteForKey(key); ok {
		m.cursor = music.NoteIndex(note)
		cmd := m.apply(m.session.ToggleNote(note))
		return m, cmd
	}

	return m, nil
}

// noteForKey maps a lowercase letter to its natural and an uppercase letter
// to its sharp. E and B have no sharp and map to nothing in uppercase.
func noteForKey(key string) (string, bool) {
	if len(key) != 1 {
		return "", false
	}
	c := key[0]
	switch {
	case c >= 'a' && c <= 'g':
		return string(c - 'a' + 'A'), true
	case c >= 'A' && c <= 'G' && c != 'E' && c != 'B':
		sharp := string(c) + "#"
		return sharp, music.NoteIndex(sharp) >= 0
	}
	return "", false
}

// apply reacts to a session transition and starts the celebration banner
// when the answer has just become correct.
func (m *AppModel) apply(t quiz.Transition) tea.Cmd {
	if t.ChordChanged {
		m.celebrating = false
	}
	if !t.Celebrate {
		return nil
	}
	m.celebrationSeq++
	m.celebrating = true
	logs.Logger.Printf("Celebrating %s (#%d)", m.session.Chord(), m.celebrationSeq)
	return messages.EndCelebration(m.celebrationSeq, celebrationDuration)
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup("chordquiz - Keyboard Shortcuts", helpSections, m.width, m.height)
	}

	if m.picking {
		return m.picker.View()
	}

	content := m.renderQuiz()
	hints := m.renderStatusBar()
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left,
		shared.CenterWithBottomHints(content, hints, m.height))
}
