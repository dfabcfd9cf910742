// Package board owns the per-station departure boards and the alert log:
// bounded, freshness-ordered in-memory state rebuilt from the live feed.
package board

import (
	"sort"
	"sync"
	"time"

	"github.com/MEMAtest/railway/internal/stations"
)

const (
	maxBoardSize   = 10 // records kept per station after sort and prune
	maxAlerts      = 20 // alert log ring size
	departureGrace = -2 // minutes a departed train stays on the board
)

// Alert is one station service message.
type Alert struct {
	Station   string    `json:"station"` // canonical station code
	Message   string    `json:"message"`
	Severity  string    `json:"severity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Store holds the departure board per monitored station plus the alert
// log. All state is volatile and rebuilt from the stream. A single mutex
// guards every board; upserts and reads each hold it for their full
// duration, so a read always observes a board between merges, never
// mid-merge. The store never blocks on I/O while holding the lock.
type Store struct {
	dir *stations.Directory
	now func() time.Time

	mu     sync.Mutex
	boards map[string][]Record
	alerts []Alert
}

// NewStore creates an empty store for the directory's stations. The clock
// is injected so merge-time snapshots are testable.
func NewStore(dir *stations.Directory, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	boards := make(map[string][]Record)
	for _, code := range dir.Codes() {
		boards[code] = nil
	}
	return &Store{dir: dir, now: now, boards: boards}
}

// Upsert merges one partial update into the board of the station the
// location code resolves to. Unmonitored codes are a no-op. The merge is
// keyed by run identifier: an existing record is overlaid field-wise,
// otherwise a new record is inserted. The board is then re-sorted by
// best-available scheduled departure, pruned of departed runs (snapshot
// minutes below the grace window) and truncated.
func (s *Store) Upsert(locationCode string, u Update) {
	canonical, ok := s.dir.Resolve(locationCode)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	// Snapshot minutes-until-departure from the update's own fields.
	// This value is intentionally not recomputed on board reads.
	var mins *int
	if t := u.departureTime(); t != "" {
		if m, ok := MinutesUntil(t, now); ok {
			mins = &m
		}
	}

	records := s.boards[canonical]
	idx := -1
	for i := range records {
		if records[i].RID == u.RID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		records[idx].overlay(&u)
		if mins != nil {
			records[idx].Mins = mins
		}
		records[idx].UpdatedAt = now
	} else {
		rec := Record{RID: u.RID, CreatedAt: now, UpdatedAt: now, Mins: mins}
		rec.overlay(&u)
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].sortKey() < records[j].sortKey()
	})

	kept := records[:0]
	for _, r := range records {
		if r.Mins != nil && *r.Mins < departureGrace {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) > maxBoardSize {
		kept = kept[:maxBoardSize]
	}
	s.boards[canonical] = kept
}

// Read returns a copy of the station's current board, accepting the
// canonical code or any alias. Empty for unmonitored stations or stations
// with no data yet; never an error.
func (s *Store) Read(code string) []Record {
	canonical, ok := s.dir.Resolve(code)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.boards[canonical]...)
}

// ReadAll returns a copy of every station's board, keyed by canonical
// code. Stations with no data map to an empty slice.
func (s *Store) ReadAll() map[string][]Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]Record, len(s.boards))
	for code, records := range s.boards {
		out[code] = append([]Record(nil), records...)
	}
	return out
}

// Counts returns the number of records per canonical station code.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.boards))
	for code, records := range s.boards {
		out[code] = len(records)
	}
	return out
}

// AppendAlert records a station service message, evicting the oldest once
// the log exceeds its ring size.
func (s *Store) AppendAlert(a Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append(s.alerts, a)
	if len(s.alerts) > maxAlerts {
		s.alerts = s.alerts[len(s.alerts)-maxAlerts:]
	}
}

// Alerts returns the retained service messages, oldest first.
func (s *Store) Alerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Alert(nil), s.alerts...)
}
