package music

import "strings"

// Note is one of the 12 pitch classes, keyed by its sharp spelling.
type Note struct {
	Key   string
	Label string
	Color string
}

// Notes is the canonical 12-note cycle starting at A.
var Notes = []Note{
	{Key: "A", Label: "A", Color: "#C9171E"},
	{Key: "A#", Label: "A#/Bb", Color: "#65318E"},
	{Key: "B", Label: "B", Color: "#0054A6"},
	{Key: "C", Label: "C", Color: "#ffff00"},
	{Key: "C#", Label: "C#/Db", Color: "#d29b3d"},
	{Key: "D", Label: "D", Color: "#a0522d"},
	{Key: "D#", Label: "D#/Eb", Color: "#504916"},
	{Key: "E", Label: "E", Color: "#008000"},
	{Key: "F", Label: "F", Color: "#B2D235"},
	{Key: "F#", Label: "F#/Gb", Color: "#99a65a"},
	{Key: "G", Label: "G", Color: "#808080"},
	{Key: "G#", Label: "G#/Ab", Color: "#A44B4F"},
}

var sharpToFlat = map[string]string{
	"A#": "Bb",
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
}

var flatToSharp = map[string]string{
	"Bb": "A#",
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
}

// ToFlat returns the flat spelling of a note. Notes without a flat alias are
// returned unchanged.
func ToFlat(note string) string {
	if flat, ok := sharpToFlat[note]; ok {
		return flat
	}
	return note
}

// ToSharp returns the sharp spelling of a note. Notes without a sharp alias
// are returned unchanged.
func ToSharp(note string) string {
	if sharp, ok := flatToSharp[note]; ok {
		return sharp
	}
	return note
}

// NoteIndex returns the position of key in the canonical cycle, or -1.
func NoteIndex(key string) int {
	for i, n := range Notes {
		if n.Key == key {
			return i
		}
	}
	return -1
}

// LookupNote finds a note by its sharp key.
func LookupNote(key string) (Note, bool) {
	if i := NoteIndex(key); i >= 0 {
		return Notes[i], true
	}
	return Note{}, false
}

// ParseNote accepts a note in either spelling, case-insensitive on the
// letter, and returns its canonical key.
func ParseNote(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	key := ToSharp(s)
	if NoteIndex(key) < 0 {
		return "", false
	}
	return key, true
}
