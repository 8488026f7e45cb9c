package quiz

import (
	"math/rand"

	"chordquiz/internal/music"
)

// FallbackChord is returned when the filters leave nothing to ask.
const FallbackChord = "C"

// Filters holds which chord qualities may be asked.
type Filters struct {
	IncludeMajor bool
	IncludeMinor bool
}

// AllChords enables both major and minor chords.
var AllChords = Filters{IncludeMajor: true, IncludeMinor: true}

// Allows reports whether a chord name passes the filters.
func (f Filters) Allows(chord string) bool {
	if music.IsMinor(chord) {
		return f.IncludeMinor
	}
	return f.IncludeMajor
}

// Candidates returns the catalog chords enabled by the filters, in catalog order.
func Candidates(f Filters) []string {
	var out []string
	for _, c := range music.Catalog {
		if f.Allows(c.Name) {
			out = append(out, c.Name)
		}
	}
	return out
}

// Selector picks random questions from the candidate set.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector. A zero seed is replaced with a random one.
func NewSelector(seed int64) *Selector {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a random candidate chord other than excluding. excluding is
// only returned when it is the sole candidate. An empty candidate set yields
// FallbackChord.
func (s *Selector) Pick(f Filters, excluding string) string {
	return s.pickFrom(Candidates(f), excluding)
}

func (s *Selector) pickFrom(candidates []string, excluding string) string {
	if len(candidates) == 0 {
		return FallbackChord
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	pool := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != excluding {
			pool = append(pool, c)
		}
	}
	return pool[s.rng.Intn(len(pool))]
}
