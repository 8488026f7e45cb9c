package cli

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"chordquiz/internal/cheatsheet"
	"chordquiz/internal/config"
	"chordquiz/internal/music"
	"chordquiz/internal/quiz"
)

const maxSuggestions = 3

func runChords(args []string, cfg *config.Config) int {
	fs := flag.NewFlagSet("chords", flag.ContinueOnError)
	fs.SetOutput(stderr)
	filter := fs.String("filter", "", "Chord qualities: major, minor or all")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	filters, err := filtersFor(*filter, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	names := quiz.Candidates(filters)
	if len(names) == 0 {
		fmt.Fprintln(stdout, "No chords enabled.")
		return 0
	}

	for _, name := range names {
		printChord(name)
	}

	fmt.Fprintf(stdout, "\n%d chord(s)\n", len(names))
	return 0
}

func runShow(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Error: chord name required")
		fmt.Fprintln(stderr, "Usage: chordquiz show <chord>")
		return 1
	}

	name, ok := resolveChord(args[0])
	if !ok {
		reportUnknownChord(args[0])
		return 1
	}

	printChord(name)
	return 0
}

func runCheck(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, "Error: chord name and notes required")
		fmt.Fprintln(stderr, "Usage: chordquiz check <chord> <note>...")
		return 1
	}

	name, ok := resolveChord(args[0])
	if !ok {
		reportUnknownChord(args[0])
		return 1
	}

	var selected []string
	for _, raw := range args[1:] {
		key, ok := music.ParseNote(raw)
		if !ok {
			fmt.Fprintf(stderr, "Error: unknown note %q\n", raw)
			return 1
		}
		if !slices.Contains(selected, key) {
			selected = append(selected, key)
		}
	}

	labels := quiz.DisplayNotes(name, selected)
	status := quiz.StatusOf(name, selected)

	fmt.Fprintf(stdout, "%s: %s -> %s\n", name, strings.Join(labels, " "), status)
	if status == quiz.Correct {
		return 0
	}
	return 1
}

func runCheatsheet(args []string, cfg *config.Config) int {
	fs := flag.NewFlagSet("cheatsheet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asHTML := fs.Bool("html", false, "Render HTML instead of Markdown")
	filter := fs.String("filter", "", "Chord qualities: major, minor or all")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	filters, err := filtersFor(*filter, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if !*asHTML {
		fmt.Fprint(stdout, cheatsheet.Markdown(filters))
		return 0
	}

	html, err := cheatsheet.HTML(filters)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprint(stdout, html)
	return 0
}

// filtersFor uses the command's own -filter when given, else the loaded config.
func filtersFor(filter string, cfg *config.Config) (quiz.Filters, error) {
	if filter == "" {
		if cfg == nil {
			return quiz.AllChords, nil
		}
		return quiz.Filters{IncludeMajor: cfg.IncludeMajor, IncludeMinor: cfg.IncludeMinor}, nil
	}
	major, minor, err := config.ParseFilter(filter)
	if err != nil {
		return quiz.Filters{}, err
	}
	return quiz.Filters{IncludeMajor: major, IncludeMinor: minor}, nil
}

func printChord(name string) {
	c, ok := music.LookupChord(name)
	if !ok {
		return
	}
	fmt.Fprintf(stdout, "%-4s %s\n", c.Name, strings.Join(c.Notes[:], " "))
}

// resolveChord matches a chord name exactly, then ignoring case.
func resolveChord(name string) (string, bool) {
	if _, ok := music.LookupChord(name); ok {
		return name, true
	}
	for _, c := range music.ChordNames() {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

func suggestChords(name string) []string {
	matches := fuzzy.Find(name, music.ChordNames())
	var out []string
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

func reportUnknownChord(name string) {
	fmt.Fprintf(stderr, "Error: unknown chord %q\n", name)
	if s := suggestChords(name); len(s) > 0 {
		fmt.Fprintf(stderr, "Did you mean: %s?\n", strings.Join(s, ", "))
	}
}
