package music

import "testing"

func TestCatalog_Shape(t *testing.T) {
	var sharp, flat, minor int
	for _, c := range Catalog {
		if IsFlatNotation(c.Name) {
			flat++
		} else {
			sharp++
		}
		if IsMinor(c.Name) {
			minor++
		}
	}
	if sharp != 24 {
		t.Errorf("expected 24 sharp entries, got %d", sharp)
	}
	if flat != 10 {
		t.Errorf("expected 10 flat aliases, got %d", flat)
	}
	if minor != 17 {
		t.Errorf("expected 17 minor entries, got %d", minor)
	}
	if len(catalogIndex) != len(Catalog) {
		t.Errorf("duplicate chord names in catalog")
	}
}

func TestCatalog_FlatAliasesMatchSharpEntries(t *testing.T) {
	for _, c := range Catalog {
		if !IsFlatNotation(c.Name) {
			continue
		}
		sharpName := RootOf(c.Name)
		if IsMinor(c.Name) {
			sharpName += MinorMarker
		}
		sharp, ok := LookupChord(sharpName)
		if !ok {
			t.Fatalf("%s: no sharp entry %s", c.Name, sharpName)
		}
		for i := range c.Notes {
			if ToSharp(c.Notes[i]) != sharp.Notes[i] {
				t.Errorf("%s note %d: %s does not match %s in %s",
					c.Name, i, c.Notes[i], sharp.Notes[i], sharpName)
			}
		}
	}
}

func TestCatalog_RootIsFirstNote(t *testing.T) {
	for _, c := range Catalog {
		if ToSharp(c.Notes[0]) != RootOf(c.Name) {
			t.Errorf("%s: first note %s is not the root", c.Name, c.Notes[0])
		}
	}
}

func TestEnharmonic_RoundTrip(t *testing.T) {
	dual := []string{"A#", "C#", "D#", "F#", "G#"}
	for _, n := range dual {
		if ToFlat(n) == n {
			t.Errorf("ToFlat(%s) should change spelling", n)
		}
		if got := ToSharp(ToFlat(n)); got != n {
			t.Errorf("ToSharp(ToFlat(%s)) = %s", n, got)
		}
		flat := ToFlat(n)
		if got := ToFlat(ToSharp(flat)); got != flat {
			t.Errorf("ToFlat(ToSharp(%s)) = %s", flat, got)
		}
	}

	naturals := []string{"A", "B", "C", "D", "E", "F", "G"}
	for _, n := range naturals {
		if ToFlat(n) != n || ToSharp(n) != n {
			t.Errorf("%s should translate to itself", n)
		}
	}
}

func TestIsFlatNotation(t *testing.T) {
	want := map[string]bool{
		"Db": true, "Eb": true, "Gb": true, "Ab": true, "Bb": true,
		"Dbm": true, "Ebm": true, "Gbm": true, "Abm": true, "Bbm": true,
	}
	count := 0
	for _, name := range ChordNames() {
		if IsFlatNotation(name) {
			count++
		}
		if IsFlatNotation(name) != want[name] {
			t.Errorf("IsFlatNotation(%q) = %v", name, IsFlatNotation(name))
		}
	}
	if count != 10 {
		t.Errorf("expected 10 flat-notated chords, got %d", count)
	}
	if IsFlatNotation("Cb") {
		t.Error("Cb is not in the catalog")
	}
}

func TestRootOf(t *testing.T) {
	tests := []struct {
		chord string
		root  string
	}{
		{"C", "C"},
		{"Cm", "C"},
		{"Bbm", "A#"},
		{"Gb", "F#"},
		{"G#m", "G#"},
	}
	for _, tt := range tests {
		if got := RootOf(tt.chord); got != tt.root {
			t.Errorf("RootOf(%q) = %q, want %q", tt.chord, got, tt.root)
		}
	}
}

func TestChordColor(t *testing.T) {
	if got := ChordColor("Am"); got != "#C9171E" {
		t.Errorf("expected A color, got %s", got)
	}
	if got := ChordColor("Db"); got != "#d29b3d" {
		t.Errorf("expected C# color for Db, got %s", got)
	}
	if got := ChordColor("H"); got != DefaultChordColor {
		t.Errorf("expected default color, got %s", got)
	}
}

func TestParseNote(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"c", "C", true},
		{"C#", "C#", true},
		{"db", "C#", true},
		{"Bb", "A#", true},
		{" e ", "E", true},
		{"H", "", false},
		{"", "", false},
		{"Cb", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseNote(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseNote(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
