package quiz

import (
	"testing"

	"chordquiz/internal/music"
)

func newTestSession(t *testing.T, f Filters, chord string) *Session {
	t.Helper()
	s := NewSession(NewSelector(99), f)
	if chord != "" {
		s.Practice(chord)
	}
	return s
}

func selectAll(s *Session, keys ...string) Transition {
	var last Transition
	for _, k := range keys {
		last = s.ToggleNote(k)
	}
	return last
}

func TestNewSession_RespectsFilters(t *testing.T) {
	for i := int64(1); i <= 20; i++ {
		s := NewSession(NewSelector(i), Filters{IncludeMajor: true})
		if music.IsMinor(s.Chord()) {
			t.Fatalf("seed %d: minor chord %s with major-only filter", i, s.Chord())
		}
	}
}

func TestNewSession_NoFiltersUsesFallback(t *testing.T) {
	s := NewSession(NewSelector(5), Filters{})
	if s.Chord() != FallbackChord {
		t.Errorf("expected %s, got %s", FallbackChord, s.Chord())
	}
	if s.AvailableCount() != 0 {
		t.Errorf("expected 0 available, got %d", s.AvailableCount())
	}
}

func TestToggleNote(t *testing.T) {
	s := newTestSession(t, AllChords, "C")

	s.ToggleNote("E")
	s.ToggleNote("C")
	if !s.IsSelected("E") || !s.IsSelected("C") {
		t.Fatalf("expected E and C selected, got %v", s.Selected())
	}

	s.ToggleNote("E")
	if s.IsSelected("E") {
		t.Error("second toggle should deselect")
	}

	s.ToggleNote("H")
	if len(s.Selected()) != 1 {
		t.Errorf("unknown key should be ignored, got %v", s.Selected())
	}
}

func TestSession_CorrectInAnyOrder(t *testing.T) {
	s := newTestSession(t, AllChords, "C")

	selectAll(s, "E", "C")
	if s.Status() != Unanswered {
		t.Fatalf("expected unanswered with two notes, got %v", s.Status())
	}

	tr := s.ToggleNote("G")
	if s.Status() != Correct {
		t.Fatalf("expected correct, got %v", s.Status())
	}
	if !tr.Celebrate {
		t.Error("expected celebration on entering correct")
	}

	labels := s.SortedLabels()
	if len(labels) != 3 || labels[0] != "C" || labels[1] != "E" || labels[2] != "G" {
		t.Errorf("expected [C E G], got %v", labels)
	}
}

func TestSession_FlatChordFromSharpKeys(t *testing.T) {
	s := newTestSession(t, AllChords, "Db")
	selectAll(s, "C#", "F", "G#")
	if s.Status() != Correct {
		t.Fatalf("expected correct, got %v", s.Status())
	}
	labels := s.SortedLabels()
	want := []string{"Db", "F", "Ab"}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("expected %v, got %v", want, labels)
			break
		}
	}
}

func TestSession_CelebrationLatch(t *testing.T) {
	s := newTestSession(t, AllChords, "C")

	if tr := selectAll(s, "C", "E", "G"); !tr.Celebrate {
		t.Fatal("expected first celebration")
	}

	// Staying correct through a filter change must not fire again.
	if tr := s.SetFilters(AllChords); tr.Celebrate {
		t.Error("celebration fired twice while correct")
	}

	// Extra note makes it incorrect, removing it is a new entry into correct.
	if tr := s.ToggleNote("B"); tr.Celebrate {
		t.Error("incorrect state should not celebrate")
	}
	if s.Status() != Incorrect {
		t.Fatalf("expected incorrect with four notes, got %v", s.Status())
	}
	if tr := s.ToggleNote("B"); !tr.Celebrate {
		t.Error("expected celebration after re-entering correct")
	}

	// Dropping below three re-arms as well.
	s.ToggleNote("G")
	if s.Status() != Unanswered {
		t.Fatalf("expected unanswered, got %v", s.Status())
	}
	if tr := s.ToggleNote("G"); !tr.Celebrate {
		t.Error("expected celebration after dropping below three")
	}
}

func TestSession_NextOnlyWhenCorrect(t *testing.T) {
	s := newTestSession(t, AllChords, "C")

	if _, ok := s.Next(); ok {
		t.Fatal("next should be refused while unanswered")
	}
	selectAll(s, "C", "E", "G#")
	if _, ok := s.Next(); ok {
		t.Fatal("next should be refused while incorrect")
	}
	if s.Chord() != "C" {
		t.Fatalf("chord changed to %s", s.Chord())
	}

	s.ToggleNote("G#")
	s.ToggleNote("G")
	tr, ok := s.Next()
	if !ok {
		t.Fatal("next should be allowed once correct")
	}
	if !tr.ChordChanged || s.Chord() == "C" {
		t.Errorf("expected a different chord, got %s", s.Chord())
	}
	if len(s.Selected()) != 0 {
		t.Errorf("selection should be cleared, got %v", s.Selected())
	}
	if s.Solved() != 1 {
		t.Errorf("expected 1 solved, got %d", s.Solved())
	}
}

func TestSession_FilterForcesNewChord(t *testing.T) {
	s := newTestSession(t, AllChords, "Am")
	selectAll(s, "A", "C")

	tr := s.SetFilters(Filters{IncludeMajor: true})
	if !tr.ChordChanged {
		t.Fatal("expected chord change")
	}
	if music.IsMinor(s.Chord()) {
		t.Errorf("expected major chord, got %s", s.Chord())
	}
	if len(s.Selected()) != 0 {
		t.Errorf("selection should be cleared, got %v", s.Selected())
	}
}

func TestSession_FilterKeepsAllowedChord(t *testing.T) {
	s := newTestSession(t, AllChords, "Am")
	s.ToggleNote("A")

	tr := s.ToggleMajor()
	if tr.ChordChanged || s.Chord() != "Am" {
		t.Errorf("allowed chord should stay, got %s", s.Chord())
	}
	if !s.IsSelected("A") {
		t.Error("selection should be kept")
	}
	if s.AvailableCount() != 17 {
		t.Errorf("expected 17 available, got %d", s.AvailableCount())
	}
}

func TestSession_EmptyFiltersKeepChord(t *testing.T) {
	s := newTestSession(t, Filters{IncludeMinor: true}, "Am")
	s.ToggleNote("A")

	tr := s.ToggleMinor()
	if tr.ChordChanged || s.Chord() != "Am" {
		t.Errorf("chord should stay with no candidates, got %s", s.Chord())
	}
	if s.AvailableCount() != 0 {
		t.Errorf("expected 0 available, got %d", s.AvailableCount())
	}
}

func TestSession_PracticeUnknownIsNoop(t *testing.T) {
	s := newTestSession(t, AllChords, "G")
	s.ToggleNote("G")
	if tr := s.Practice("H#m"); tr.ChordChanged {
		t.Error("unknown chord should not change anything")
	}
	if s.Chord() != "G" || !s.IsSelected("G") {
		t.Errorf("state changed: %s %v", s.Chord(), s.Selected())
	}
}

func TestSession_Color(t *testing.T) {
	s := newTestSession(t, AllChords, "Bbm")
	if s.Color() != "#65318E" {
		t.Errorf("expected A# color, got %s", s.Color())
	}
}
