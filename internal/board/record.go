package board

import (
	"time"

	"github.com/MEMAtest/railway/internal/darwin"
)

// Record is one train run's calling information at one monitored station.
// Records are keyed by RID within a board; all time fields are "HH:MM"
// feed strings, kept raw and formatted only at read time.
type Record struct {
	RID      string // run identifier, the merge key
	UID      string
	SSD      string // scheduled start date
	TPL      string // raw location code the latest update arrived under
	TrainID  string
	TOC      string
	Activity string

	PTA string // public arrival
	PTD string // public departure
	WTA string // working arrival
	WTD string // working departure

	Arr      darwin.TimeValue
	Dep      darwin.TimeValue
	Platform darwin.Platform

	Cancelled  bool
	Delayed    bool
	LateReason string

	// Destination is the raw location code of the run's final calling
	// point, as resolved by the normalizer. Never recomputed here.
	Destination string

	// Mins is the minutes-until-departure snapshot taken at merge time.
	// Board reads and pruning use this snapshot as-is; only the journey
	// planner and the leave-by formatting recompute fresh. Nil when no
	// update has carried a usable departure time yet.
	Mins *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduledDeparture is the best-available scheduled departure time,
// public preferred, working as fallback. Empty when neither is known.
func (r *Record) ScheduledDeparture() string {
	if r.PTD != "" {
		return r.PTD
	}
	return r.WTD
}

// unknownTimeSentinel sorts records with no scheduled departure last.
const unknownTimeSentinel = "99:99"

func (r *Record) sortKey() string {
	if t := r.ScheduledDeparture(); t != "" {
		return t
	}
	return unknownTimeSentinel
}

// Update is a partial record extracted from one feed event. Empty string
// and zero-value fields are treated as absent and leave the stored record
// untouched on merge; the pointer flags distinguish "not carried" from
// "carried as false".
type Update struct {
	RID      string
	UID      string
	SSD      string
	TPL      string
	TrainID  string
	TOC      string
	Activity string

	PTA string
	PTD string
	WTA string
	WTD string

	Arr      darwin.TimeValue
	Dep      darwin.TimeValue
	Platform darwin.Platform

	Cancelled  *bool
	Delayed    *bool
	LateReason string

	Destination string
}

// departureTime is the update's own best-available departure time, used
// for the merge-time minutes snapshot: public, else working, else the
// live actual/estimated value.
func (u *Update) departureTime() string {
	if u.PTD != "" {
		return u.PTD
	}
	if u.WTD != "" {
		return u.WTD
	}
	return u.Dep.Best()
}

// overlay applies the update's non-absent fields onto the record.
func (r *Record) overlay(u *Update) {
	if u.UID != "" {
		r.UID = u.UID
	}
	if u.SSD != "" {
		r.SSD = u.SSD
	}
	if u.TPL != "" {
		r.TPL = u.TPL
	}
	if u.TrainID != "" {
		r.TrainID = u.TrainID
	}
	if u.TOC != "" {
		r.TOC = u.TOC
	}
	if u.Activity != "" {
		r.Activity = u.Activity
	}
	if u.PTA != "" {
		r.PTA = u.PTA
	}
	if u.PTD != "" {
		r.PTD = u.PTD
	}
	if u.WTA != "" {
		r.WTA = u.WTA
	}
	if u.WTD != "" {
		r.WTD = u.WTD
	}
	if !u.Arr.IsZero() {
		r.Arr = u.Arr
	}
	if !u.Dep.IsZero() {
		r.Dep = u.Dep
	}
	if !u.Platform.IsZero() {
		r.Platform = u.Platform
	}
	if u.Cancelled != nil {
		r.Cancelled = *u.Cancelled
	}
	if u.Delayed != nil {
		r.Delayed = *u.Delayed
	}
	if u.LateReason != "" {
		r.LateReason = u.LateReason
	}
	if u.Destination != "" {
		r.Destination = u.Destination
	}
}
