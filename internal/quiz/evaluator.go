package quiz

import "chordquiz/internal/music"

// MinSelections is how many notes must be selected before an answer is judged.
const MinSelections = 3

// Status is the answer state shown to the user.
type Status int

const (
	Unanswered Status = iota
	Correct
	Incorrect
)

func (s Status) String() string {
	switch s {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unanswered"
	}
}

// Evaluate reports whether selected, given as sharp keys in any order, is
// exactly the note set of chord. Unknown chords never evaluate true.
func Evaluate(chord string, selected []string) bool {
	entry, ok := music.LookupChord(chord)
	if !ok {
		return false
	}

	flat := music.IsFlatNotation(chord)
	got := make(map[string]bool, len(selected))
	for _, key := range selected {
		if flat {
			key = music.ToFlat(key)
		}
		got[key] = true
	}

	want := make(map[string]bool, len(entry.Notes))
	for _, n := range entry.Notes {
		want[n] = true
	}

	if len(got) != len(want) {
		return false
	}
	for n := range want {
		if !got[n] {
			return false
		}
	}
	return true
}

// StatusOf judges a selection. Fewer than MinSelections notes is unanswered,
// not wrong.
func StatusOf(chord string, selected []string) Status {
	if len(selected) < MinSelections {
		return Unanswered
	}
	if Evaluate(chord, selected) {
		return Correct
	}
	return Incorrect
}
