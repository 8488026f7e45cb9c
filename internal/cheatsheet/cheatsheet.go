// Package cheatsheet renders the chord catalog as a printable reference.
package cheatsheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"chordquiz/internal/music"
	"chordquiz/internal/quiz"
)

// Markdown returns a Markdown document with one table per chord quality
// enabled by the filters.
func Markdown(f quiz.Filters) string {
	var b strings.Builder
	b.WriteString("# Chord cheatsheet\n\n")

	sections := []struct {
		title string
		minor bool
		on    bool
	}{
		{"Major chords", false, f.IncludeMajor},
		{"Minor chords", true, f.IncludeMinor},
	}

	for _, sec := range sections {
		if !sec.on {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", sec.title)
		b.WriteString("| Chord | Root | Third | Fifth |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, c := range music.Catalog {
			if music.IsMinor(c.Name) != sec.minor {
				continue
			}
			fmt.Fprintf(&b, "| **%s** | %s | %s | %s |\n", c.Name, c.Notes[0], c.Notes[1], c.Notes[2])
		}
		b.WriteString("\n")
	}

	b.WriteString("Flat-spelled chords (")
	var flats []string
	for _, name := range music.ChordNames() {
		if music.IsFlatNotation(name) {
			flats = append(flats, name)
		}
	}
	b.WriteString(strings.Join(flats, ", "))
	b.WriteString(") name the same notes as their sharp counterparts.\n")

	return b.String()
}

// HTML converts the Markdown cheatsheet to an HTML fragment.
func HTML(f quiz.Filters) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(f)), &buf); err != nil {
		return "", fmt.Errorf("rendering cheatsheet: %w", err)
	}
	return buf.String(), nil
}
