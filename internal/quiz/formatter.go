package quiz

import (
	"sort"
	"strings"

	"chordquiz/internal/music"
)

// SortByRoot orders the selected keys by their distance above the chord's
// root in the 12-note cycle. The input slice is not modified. If the root
// cannot be resolved the selection is returned in its original order.
func SortByRoot(chord string, selected []string) []string {
	out := append([]string(nil), selected...)

	root := music.NoteIndex(music.RootOf(chord))
	if root < 0 {
		return out
	}

	n := len(music.Notes)
	pos := func(key string) int {
		i := music.NoteIndex(key)
		if i < 0 {
			return n
		}
		return (i - root + n) % n
	}

	sort.SliceStable(out, func(a, b int) bool {
		return pos(out[a]) < pos(out[b])
	})
	return out
}

// DisplayLabel renders a note key in the spelling implied by the chord name.
// Unknown keys render as "".
func DisplayLabel(chord, key string) string {
	note, ok := music.LookupNote(key)
	if !ok {
		return ""
	}

	flat := music.IsFlatNotation(chord)
	if sharpSide, flatSide, dual := strings.Cut(note.Label, "/"); dual {
		if flat {
			return flatSide
		}
		return sharpSide
	}
	if flat {
		return music.ToFlat(key)
	}
	return note.Label
}

// DisplayNotes returns the selection sorted from the root and spelled for the chord.
func DisplayNotes(chord string, selected []string) []string {
	var labels []string
	for _, key := range SortByRoot(chord, selected) {
		if label := DisplayLabel(chord, key); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
