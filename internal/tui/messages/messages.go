package messages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PracticeChordMsg is sent by the chord picker when a chord is chosen
type PracticeChordMsg struct {
	Chord string
}

// ClosePickerMsg is sent by the chord picker when it is dismissed
type ClosePickerMsg struct{}

// CelebrationDoneMsg ends the celebration banner started with the same Seq.
type CelebrationDoneMsg struct {
	Seq int
}

func PracticeChord(chord string) tea.Cmd {
	return func() tea.Msg {
		return PracticeChordMsg{Chord: chord}
	}
}

func ClosePicker() tea.Cmd {
	return func() tea.Msg {
		return ClosePickerMsg{}
	}
}

// EndCelebration schedules the end of celebration seq after d.
func EndCelebration(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return CelebrationDoneMsg{Seq: seq}
	})
}
