package music

import "strings"

// MinorMarker is the suffix that marks a minor chord name.
const MinorMarker = "m"

// DefaultChordColor is used when a chord root cannot be resolved.
const DefaultChordColor = "#667eea"

// Chord maps a chord name to its root, third and fifth. Notes are spelled in
// the same convention as the name.
type Chord struct {
	Name  string
	Notes [3]string
}

// Catalog lists every chord the quiz can ask about. Flat entries are
// spelling aliases of the sharp entries with the same pitch classes.
var Catalog = []Chord{
	// major, sharp spelling
	{"C", [3]string{"C", "E", "G"}},
	{"C#", [3]string{"C#", "F", "G#"}},
	{"D", [3]string{"D", "F#", "A"}},
	{"D#", [3]string{"D#", "G", "A#"}},
	{"E", [3]string{"E", "G#", "B"}},
	{"F", [3]string{"F", "A", "C"}},
	{"F#", [3]string{"F#", "A#", "C#"}},
	{"G", [3]string{"G", "B", "D"}},
	{"G#", [3]string{"G#", "C", "D#"}},
	{"A", [3]string{"A", "C#", "E"}},
	{"A#", [3]string{"A#", "D", "F"}},
	{"B", [3]string{"B", "D#", "F#"}},
	// major, flat spelling
	{"Db", [3]string{"Db", "F", "Ab"}},
	{"Eb", [3]string{"Eb", "G", "Bb"}},
	{"Gb", [3]string{"Gb", "Bb", "Db"}},
	{"Ab", [3]string{"Ab", "C", "Eb"}},
	{"Bb", [3]string{"Bb", "D", "F"}},
	// minor, sharp spelling
	{"Cm", [3]string{"C", "D#", "G"}},
	{"C#m", [3]string{"C#", "E", "G#"}},
	{"Dm", [3]string{"D", "F", "A"}},
	{"D#m", [3]string{"D#", "F#", "A#"}},
	{"Em", [3]string{"E", "G", "B"}},
	{"Fm", [3]string{"F", "G#", "C"}},
	{"F#m", [3]string{"F#", "A", "C#"}},
	{"Gm", [3]string{"G", "A#", "D"}},
	{"G#m", [3]string{"G#", "B", "D#"}},
	{"Am", [3]string{"A", "C", "E"}},
	{"A#m", [3]string{"A#", "C#", "F"}},
	{"Bm", [3]string{"B", "D", "F#"}},
	// minor, flat spelling
	{"Dbm", [3]string{"Db", "E", "Ab"}},
	{"Ebm", [3]string{"Eb", "Gb", "Bb"}},
	{"Gbm", [3]string{"Gb", "A", "Db"}},
	{"Abm", [3]string{"Ab", "B", "Eb"}},
	{"Bbm", [3]string{"Bb", "Db", "F"}},
}

// Chord names written with a flat root. This is a notation choice per chord
// and is not derived from the pitch class.
var flatNotated = map[string]bool{
	"Db": true, "Eb": true, "Gb": true, "Ab": true, "Bb": true,
	"Dbm": true, "Ebm": true, "Gbm": true, "Abm": true, "Bbm": true,
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(Catalog))
	for i, c := range Catalog {
		idx[c.Name] = i
	}
	return idx
}()

// LookupChord returns the catalog entry for name.
func LookupChord(name string) (Chord, bool) {
	i, ok := catalogIndex[name]
	if !ok {
		return Chord{}, false
	}
	return Catalog[i], true
}

// ChordNames returns every catalog chord name in catalog order.
func ChordNames() []string {
	names := make([]string, len(Catalog))
	for i, c := range Catalog {
		names[i] = c.Name
	}
	return names
}

// IsMinor reports whether the chord name carries the minor marker.
func IsMinor(name string) bool {
	return strings.HasSuffix(name, MinorMarker)
}

// IsFlatNotation reports whether the chord is one of the flat-spelled aliases.
func IsFlatNotation(name string) bool {
	return flatNotated[name]
}

// RootOf returns the sharp key of the chord's root note.
func RootOf(name string) string {
	return ToSharp(strings.TrimSuffix(name, MinorMarker))
}

// ChordColor returns the color of the chord's root note.
func ChordColor(name string) string {
	if n, ok := LookupNote(RootOf(name)); ok {
		return n.Color
	}
	return DefaultChordColor
}
