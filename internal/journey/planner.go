// Package journey answers "which trains get me to X and when must I
// leave" queries over the live departure boards.
package journey

import (
	"sort"
	"time"

	"github.com/MEMAtest/railway/internal/board"
	"github.com/MEMAtest/railway/internal/stations"
)

// Option is one candidate departure toward the queried destination.
// LeaveInMins is minutes from now until the latest moment one can leave on
// foot and still make the train; negative means already overdue.
type Option struct {
	Station       string `json:"station"`
	StationCode   string `json:"stationCode"`
	Line          string `json:"line"`
	WalkMins      int    `json:"walkMins"`
	ScheduledTime string `json:"scheduledTime"`
	ExpectedTime  string `json:"expectedTime,omitempty"`
	Platform      string `json:"platform"`
	LeaveInMins   int    `json:"leaveInMins"`
	Delayed       bool   `json:"delayed"`
	LateReason    string `json:"lateReason,omitempty"`
}

// Plan is a ranked set of options toward one resolved destination.
type Plan struct {
	Destination string   `json:"destination"`
	Options     []Option `json:"options"`
}

// Planner scans the boards for departures matching a destination query.
type Planner struct {
	dir   *stations.Directory
	store *board.Store
	now   func() time.Time
}

// NewPlanner wires a planner to the directory and store.
func NewPlanner(dir *stations.Directory, store *board.Store, now func() time.Time) *Planner {
	if now == nil {
		now = time.Now
	}
	return &Planner{dir: dir, store: store, now: now}
}

// Find resolves a free-text destination fragment and ranks matching
// departures across every monitored station by leave-by urgency, most
// urgent (or most overdue) first. ok is false when no destination name
// matches the query; that is a negative result, not an error.
//
// Minutes here are recomputed fresh from the scheduled time at query
// time, deliberately ignoring the board's merge-time snapshot.
func (p *Planner) Find(query string) (Plan, bool) {
	name, candidates, ok := p.dir.MatchDestinations(query)
	if !ok {
		return Plan{}, false
	}

	now := p.now()
	options := make([]Option, 0, 8)
	for _, code := range p.dir.Codes() {
		station, _ := p.dir.Station(code)
		walk := p.dir.WalkMinutes(code)

		for _, rec := range p.store.Read(code) {
			if !candidates[rec.Destination] || rec.Cancelled {
				continue
			}
			scheduled := rec.ScheduledDeparture()
			if scheduled == "" {
				continue
			}
			mins, ok := board.MinutesUntil(scheduled, now)
			if !ok || mins < -1 {
				continue
			}
			options = append(options, Option{
				Station:       station.Name,
				StationCode:   code,
				Line:          station.Line,
				WalkMins:      walk,
				ScheduledTime: scheduled,
				ExpectedTime:  rec.Dep.Display(),
				Platform:      rec.Platform.Display(),
				LeaveInMins:   mins - walk,
				Delayed:       rec.Delayed,
				LateReason:    rec.LateReason,
			})
		}
	}

	// Stable: ties keep scan order, which is deterministic because
	// stations are visited in sorted code order.
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].LeaveInMins < options[j].LeaveInMins
	})

	return Plan{Destination: name, Options: options}, true
}
