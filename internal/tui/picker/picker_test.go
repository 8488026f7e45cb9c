package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"chordquiz/internal/music"
	"chordquiz/internal/tui/messages"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNew_ListsEveryChord(t *testing.T) {
	m := New()
	if got := len(m.Filtered()); got != len(music.Catalog) {
		t.Errorf("expected %d chords, got %d", len(music.Catalog), got)
	}
	if m.Current() != music.Catalog[0].Name {
		t.Errorf("expected first chord highlighted, got %q", m.Current())
	}
}

func TestFilter_ExactNameFirst(t *testing.T) {
	m := typeText(New(), "am")
	if m.Current() != "Am" {
		t.Errorf("expected Am first, got %v", m.Filtered())
	}
	for _, name := range m.Filtered() {
		if !music.IsMinor(name) {
			t.Errorf("unexpected match %q for \"am\"", name)
		}
	}
}

func TestEnter_PracticesHighlightedChord(t *testing.T) {
	m := typeText(New(), "Bbm")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(messages.PracticeChordMsg)
	if !ok {
		t.Fatalf("expected PracticeChordMsg, got %T", cmd())
	}
	if msg.Chord != "Bbm" {
		t.Errorf("expected Bbm, got %q", msg.Chord)
	}
}

func TestEnter_NoMatches(t *testing.T) {
	m := typeText(New(), "zz")
	if len(m.Filtered()) != 0 {
		t.Fatalf("expected no matches, got %v", m.Filtered())
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter with no matches should do nothing")
	}
}

func TestNavigation(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Current() != music.Catalog[2].Name {
		t.Errorf("expected %s, got %s", music.Catalog[2].Name, m.Current())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Current() != music.Catalog[1].Name {
		t.Errorf("expected %s, got %s", music.Catalog[1].Name, m.Current())
	}
}

func TestEsc_Closes(t *testing.T) {
	_, cmd := New().Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(messages.ClosePickerMsg); !ok {
		t.Errorf("expected ClosePickerMsg, got %T", cmd())
	}
}
