package stations

import (
	"testing"
)

func TestResolve(t *testing.T) {
	dir := Default()

	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{"PNGEW", "PNW", true},
		{"PENGEWT", "PNW", true},
		{"PNGEE", "PNE", true},
		{"ANERLEY", "ANR", true},
		{"BKBY", "BKB", true},
		{"PNW", "PNW", true}, // canonical code self-resolves
		{"VICTRIC", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			got, ok := dir.Resolve(tc.code)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tc.code, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestStationLookup(t *testing.T) {
	dir := Default()

	s, ok := dir.Station("PENGEET")
	if !ok {
		t.Fatal("Station(PENGEET) not found")
	}
	if s.Code != "PNE" || s.Name != "Penge East" || s.Line != "Southeastern" {
		t.Errorf("Station(PENGEET) = %+v, want Penge East", s)
	}

	if _, ok := dir.Station("NOPE"); ok {
		t.Error("Station(NOPE) found, want negative result")
	}
}

func TestDestinationName(t *testing.T) {
	dir := Default()

	tests := []struct {
		code string
		want string
	}{
		{"VICTRIC", "Victoria"},
		{"CRSTLPL", "Crystal Palace"},
		{"XXXX", "XXXX"},   // unknown code falls back to itself
		{"", "Unknown"},    // absent code
	}

	for _, tc := range tests {
		if got := dir.DestinationName(tc.code); got != tc.want {
			t.Errorf("DestinationName(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestWalkMinutes(t *testing.T) {
	dir := Default()

	if got := dir.WalkMinutes("PNW"); got != 4 {
		t.Errorf("WalkMinutes(PNW) = %d, want 4", got)
	}
	if got := dir.WalkMinutes("BKBY"); got != 10 {
		t.Errorf("WalkMinutes(BKBY) = %d, want 10 (alias resolves)", got)
	}
	if got := dir.WalkMinutes("UNKNOWN"); got != DefaultWalkMinutes {
		t.Errorf("WalkMinutes(UNKNOWN) = %d, want default %d", got, DefaultWalkMinutes)
	}
}

func TestMatchDestinations(t *testing.T) {
	dir := Default()

	t.Run("partial match with punctuation", func(t *testing.T) {
		name, codes, ok := dir.MatchDestinations("Crystal!")
		if !ok {
			t.Fatal("no match for crystal")
		}
		if name != "Crystal Palace" {
			t.Errorf("matched name = %q, want Crystal Palace", name)
		}
		for _, code := range []string{"CRYSTLP", "CRYSTPL", "CRSTLPL"} {
			if !codes[code] {
				t.Errorf("candidate set missing %s", code)
			}
		}
	})

	t.Run("case folded", func(t *testing.T) {
		_, codes, ok := dir.MatchDestinations("LONDON BRIDGE")
		if !ok || !codes["LNDNBDG"] {
			t.Errorf("MatchDestinations(LONDON BRIDGE) = (%v, %v)", codes, ok)
		}
	})

	t.Run("deterministic representative name", func(t *testing.T) {
		// Multiple codes match; the label comes from the smallest code.
		name1, _, _ := dir.MatchDestinations("croydon")
		name2, _, _ := dir.MatchDestinations("croydon")
		if name1 != name2 {
			t.Errorf("representative name unstable: %q vs %q", name1, name2)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, _, ok := dir.MatchDestinations("atlantis"); ok {
			t.Error("MatchDestinations(atlantis) matched, want negative result")
		}
	})

	t.Run("empty after normalization", func(t *testing.T) {
		if _, _, ok := dir.MatchDestinations("!!!"); ok {
			t.Error("MatchDestinations(!!!) matched, want negative result")
		}
	})
}

func TestSelfAliasInvariant(t *testing.T) {
	dir := Default()

	for _, code := range dir.Codes() {
		if got, ok := dir.Resolve(code); !ok || got != code {
			t.Errorf("canonical code %s does not self-resolve", code)
		}
	}
}
