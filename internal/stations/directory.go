package stations

import (
	"sort"
	"strings"
)

// Station describes one monitored station.
type Station struct {
	Code        string `json:"code"` // canonical CRS code, the storage key
	Name        string `json:"name"`
	Line        string `json:"line"`
	WalkMinutes int    `json:"walkMins"`
}

// DefaultWalkMinutes is assumed for journey planning when a station has no
// configured walking time.
const DefaultWalkMinutes = 5

// Directory is the static identity table for the deployment: which stations
// are monitored, which raw location codes (TIPLOC or CRS spellings) resolve
// to them, and how destination codes render as display names.
//
// A Directory is immutable after construction and safe for concurrent use.
type Directory struct {
	stations  map[string]Station // canonical code -> station
	aliases   map[string]string  // raw location code -> canonical code
	destNames map[string]string  // raw location code -> display name
}

// New builds a Directory from explicit tables. Every station's own code is
// installed as a self-alias, so a canonical code always resolves.
func New(monitored []Station, aliases map[string]string, destNames map[string]string) *Directory {
	d := &Directory{
		stations:  make(map[string]Station, len(monitored)),
		aliases:   make(map[string]string, len(aliases)+len(monitored)),
		destNames: make(map[string]string, len(destNames)),
	}
	for _, s := range monitored {
		d.stations[s.Code] = s
		d.aliases[s.Code] = s.Code
	}
	for raw, code := range aliases {
		d.aliases[raw] = code
	}
	for raw, name := range destNames {
		d.destNames[raw] = name
	}
	return d
}

// Default returns the directory for the reference deployment: the four
// Penge-area stations with their feed aliases and destination names.
func Default() *Directory {
	return New(monitoredStations, locationAliases, destinationNames)
}

// Resolve maps a raw location code to the canonical code of a monitored
// station. The second return is false when the code is not monitored; that
// is a negative result, not an error.
func (d *Directory) Resolve(locationCode string) (string, bool) {
	code, ok := d.aliases[locationCode]
	return code, ok
}

// Station looks up a monitored station by canonical code or any alias.
func (d *Directory) Station(code string) (Station, bool) {
	canonical, ok := d.aliases[code]
	if !ok {
		return Station{}, false
	}
	s, ok := d.stations[canonical]
	return s, ok
}

// Codes returns the canonical codes of all monitored stations, sorted.
func (d *Directory) Codes() []string {
	codes := make([]string, 0, len(d.stations))
	for code := range d.stations {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Aliases returns every raw location code the directory recognises as a
// monitored station, sorted. Served by the health endpoint.
func (d *Directory) Aliases() []string {
	out := make([]string, 0, len(d.aliases))
	for raw := range d.aliases {
		out = append(out, raw)
	}
	sort.Strings(out)
	return out
}

// WalkMinutes returns the configured walking time for a station, falling
// back to DefaultWalkMinutes when none is set.
func (d *Directory) WalkMinutes(code string) int {
	if s, ok := d.Station(code); ok && s.WalkMinutes > 0 {
		return s.WalkMinutes
	}
	return DefaultWalkMinutes
}

// DestinationName renders a raw destination code for display. Unknown codes
// fall back to the code itself; an empty code renders as "Unknown".
func (d *Directory) DestinationName(locationCode string) string {
	if name, ok := d.destNames[locationCode]; ok {
		return name
	}
	if locationCode != "" {
		return locationCode
	}
	return "Unknown"
}

// MatchDestinations resolves a free-text destination query to the set of
// raw location codes whose display name contains the query. The query is
// case-folded and stripped of anything outside letters, digits and spaces
// before matching. The returned name is the display name of the
// lexicographically smallest matching code, so the label is deterministic.
// ok is false when nothing matches.
func (d *Directory) MatchDestinations(query string) (name string, codes map[string]bool, ok bool) {
	q := normalizeQuery(query)
	if q == "" {
		return "", nil, false
	}

	codes = make(map[string]bool)
	first := ""
	for raw, display := range d.destNames {
		if strings.Contains(strings.ToLower(display), q) {
			codes[raw] = true
			if first == "" || raw < first {
				first = raw
			}
		}
	}
	if len(codes) == 0 {
		return "", nil, false
	}
	return d.destNames[first], codes, true
}

func normalizeQuery(query string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(query) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}
