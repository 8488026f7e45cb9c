package quiz

import (
	"slices"

	"chordquiz/internal/logs"
	"chordquiz/internal/music"
)

// Transition describes what an action did to the session.
type Transition struct {
	ChordChanged bool
	Celebrate    bool // the answer just became correct
}

// Session is the state of one quiz run. It is owned by a single caller and
// is not safe for concurrent use.
type Session struct {
	selector   *Selector
	filters    Filters
	chord      string
	selected   []string // sharp keys in click order
	celebrated bool
	solved     int
}

// NewSession starts a session on a random chord allowed by filters.
func NewSession(selector *Selector, filters Filters) *Session {
	s := &Session{
		selector: selector,
		filters:  filters,
	}
	s.chord = selector.Pick(filters, "")
	logs.Logger.Printf("Session started on %s (major=%v minor=%v)", s.chord, filters.IncludeMajor, filters.IncludeMinor)
	return s
}

// Chord returns the active chord name.
func (s *Session) Chord() string { return s.chord }

// Filters returns the current filters.
func (s *Session) Filters() Filters { return s.filters }

// Solved returns how many chords were answered correctly and moved past.
func (s *Session) Solved() int { return s.solved }

// Selected returns a copy of the selected keys in click order.
func (s *Session) Selected() []string {
	return append([]string(nil), s.selected...)
}

// IsSelected reports whether key is in the selection.
func (s *Session) IsSelected(key string) bool {
	return slices.Contains(s.selected, key)
}

// Status judges the current selection.
func (s *Session) Status() Status {
	return StatusOf(s.chord, s.selected)
}

// AvailableCount is the size of the candidate set under the current filters.
func (s *Session) AvailableCount() int {
	return len(Candidates(s.filters))
}

// Color is the accent color of the active chord.
func (s *Session) Color() string {
	return music.ChordColor(s.chord)
}

// SortedLabels returns the selection ordered from the root and spelled for
// the active chord.
func (s *Session) SortedLabels() []string {
	return DisplayNotes(s.chord, s.selected)
}

// ToggleNote adds or removes a note from the selection. Unknown keys are ignored.
func (s *Session) ToggleNote(key string) Transition {
	if music.NoteIndex(key) < 0 {
		return Transition{}
	}
	if i := slices.Index(s.selected, key); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
	} else {
		s.selected = append(s.selected, key)
	}
	return s.settle(false)
}

// ToggleMajor flips the major filter.
func (s *Session) ToggleMajor() Transition {
	f := s.filters
	f.IncludeMajor = !f.IncludeMajor
	return s.SetFilters(f)
}

// ToggleMinor flips the minor filter.
func (s *Session) ToggleMinor() Transition {
	f := s.filters
	f.IncludeMinor = !f.IncludeMinor
	return s.SetFilters(f)
}

// SetFilters replaces the filters. If the active chord is no longer allowed
// and something else is, a new chord is picked and the selection cleared.
// With nothing allowed the active chord stays.
func (s *Session) SetFilters(f Filters) Transition {
	s.filters = f
	logs.Logger.Printf("Filters changed: major=%v minor=%v", f.IncludeMajor, f.IncludeMinor)

	if len(Candidates(f)) == 0 || f.Allows(s.chord) {
		return s.settle(false)
	}

	s.chord = s.selector.Pick(f, s.chord)
	s.selected = nil
	logs.Logger.Printf("Active chord outside filters, switched to %s", s.chord)
	return s.settle(true)
}

// Next moves to a different chord. It only acts once the current answer is
// correct and reports whether it did.
func (s *Session) Next() (Transition, bool) {
	if s.Status() != Correct {
		return Transition{}, false
	}
	s.solved++
	s.chord = s.selector.Pick(s.filters, s.chord)
	s.selected = nil
	logs.Logger.Printf("Next question: %s", s.chord)
	return s.settle(true), true
}

// Practice switches to a specific catalog chord regardless of filters.
// Unknown names are ignored.
func (s *Session) Practice(chord string) Transition {
	if _, ok := music.LookupChord(chord); !ok {
		return Transition{}
	}
	changed := chord != s.chord
	s.chord = chord
	s.selected = nil
	logs.Logger.Printf("Practicing %s", chord)
	return s.settle(changed)
}

// settle runs the celebration latch after a state change.
func (s *Session) settle(chordChanged bool) Transition {
	t := Transition{ChordChanged: chordChanged}
	if s.Status() == Correct {
		if !s.celebrated {
			s.celebrated = true
			t.Celebrate = true
			logs.Logger.Printf("Correct answer for %s: %v", s.chord, s.SortedLabels())
		}
	} else {
		s.celebrated = false
	}
	return t
}
