package api

import (
	"time"

	"github.com/MEMAtest/railway/internal/board"
	"github.com/MEMAtest/railway/internal/stations"
)

// Departure is the formatted board entry served to clients. Mins is the
// merge-time snapshot stored on the record; LeaveInMins is recomputed
// fresh from the scheduled time at request time. Both are served so the
// board view stays cheap while the leave-by figure stays honest.
type Departure struct {
	Destination   string `json:"destination"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
	ExpectedTime  string `json:"expectedTime,omitempty"`
	Platform      string `json:"platform"`
	Mins          *int   `json:"mins"`
	WalkMins      int    `json:"walkMins"`
	LeaveInMins   *int   `json:"leaveInMins"`
	Cancelled     bool   `json:"cancelled"`
	Delayed       bool   `json:"delayed"`
	LateReason    string `json:"lateReason,omitempty"`
}

// StationBoard is one station's formatted board plus its metadata.
type StationBoard struct {
	Name       string      `json:"name"`
	Line       string      `json:"line"`
	WalkMins   int         `json:"walkMins"`
	Departures []Departure `json:"departures"`
}

// RawDeparture is the unformatted debug view of one record.
type RawDeparture struct {
	Destination   string      `json:"destination"`
	ResolvedName  string      `json:"resolvedName"`
	ScheduledTime string      `json:"scheduledTime,omitempty"`
	Platform      interface{} `json:"platform"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// formatBoard renders a station's records for the board endpoints.
func formatBoard(dir *stations.Directory, station stations.Station, records []board.Record, now time.Time) StationBoard {
	walk := dir.WalkMinutes(station.Code)
	departures := make([]Departure, 0, len(records))
	for i := range records {
		departures = append(departures, formatDeparture(dir, &records[i], walk, now))
	}
	return StationBoard{
		Name:       station.Name,
		Line:       station.Line,
		WalkMins:   walk,
		Departures: departures,
	}
}

func formatDeparture(dir *stations.Directory, rec *board.Record, walkMins int, now time.Time) Departure {
	d := Departure{
		Destination:   dir.DestinationName(rec.Destination),
		ScheduledTime: rec.ScheduledDeparture(),
		ExpectedTime:  rec.Dep.Display(),
		Platform:      rec.Platform.Display(),
		Mins:          rec.Mins,
		WalkMins:      walkMins,
		Cancelled:     rec.Cancelled,
		Delayed:       rec.Delayed,
		LateReason:    rec.LateReason,
	}
	if scheduled := rec.ScheduledDeparture(); scheduled != "" {
		if mins, ok := board.MinutesUntil(scheduled, now); ok {
			leave := mins - walkMins
			d.LeaveInMins = &leave
		}
	}
	return d
}
