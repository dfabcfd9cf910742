// Package ingest normalizes decoded feed events into board updates and
// alerts and applies them to the store. Events are applied one at a time
// in delivery order; the pipeline is the single logical writer.
package ingest

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/MEMAtest/railway/internal/board"
	"github.com/MEMAtest/railway/internal/darwin"
	"github.com/MEMAtest/railway/internal/stations"
)

const maxSamples = 5 // decoded payload summaries kept for the debug view

// Sample is a retained summary of one decoded payload.
type Sample struct {
	Keys    []string `json:"keys"`
	HasUR   bool     `json:"hasUR"`
	HasTS   bool     `json:"hasTS"`
	Snippet string   `json:"sample"`
}

// Pipeline turns raw broker payloads into store mutations. Undecodable
// payloads are counted and discarded; one lost event is tolerable because
// the feed continually re-reports state.
type Pipeline struct {
	dir   *stations.Directory
	store *board.Store
	now   func() time.Time

	mu           sync.Mutex
	messageCount int64
	lastUpdate   time.Time
	observed     map[string]struct{}
	samples      []Sample
}

// New wires a pipeline to its directory and store.
func New(dir *stations.Directory, store *board.Store, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		dir:      dir,
		store:    store,
		now:      now,
		observed: make(map[string]struct{}),
	}
}

// OnEvent ingests one raw broker message. Decode failures and messages
// with no recognized shape are dropped without propagation.
func (p *Pipeline) OnEvent(raw []byte) {
	msgsReceived.Inc()

	doc, err := darwin.DecodeEnvelope(raw)
	if err != nil {
		msgsDropped.Inc()
		return
	}
	pp, err := darwin.DecodeDocument(doc)
	if err != nil {
		msgsDropped.Inc()
		return
	}

	p.mu.Lock()
	p.messageCount++
	p.lastUpdate = p.now()
	if len(p.samples) < maxSamples {
		p.samples = append(p.samples, summarize(doc, pp))
	}
	p.mu.Unlock()

	if pp.UR == nil {
		return
	}
	for i := range pp.UR.TS {
		p.applyTrainStatus(&pp.UR.TS[i])
	}
	for i := range pp.UR.Schedule {
		p.applySchedule(&pp.UR.Schedule[i])
	}
	for i := range pp.UR.OW {
		p.applyStationMessage(&pp.UR.OW[i])
	}
}

// applyTrainStatus fans a running update out to every monitored calling
// point it touches. The run's current destination is the last location in
// the update that carries a raw code; it need not be a monitored station.
func (p *Pipeline) applyTrainStatus(ts *darwin.TrainStatus) {
	if ts.LateReason == "" && len(ts.Locations) == 0 {
		return
	}

	destination := ""
	for _, loc := range ts.Locations {
		if loc.TPL != "" {
			destination = loc.TPL
		}
	}

	lateReason := ts.LateReason.String()
	delayed := lateReason != ""

	for _, loc := range ts.Locations {
		if loc.TPL == "" {
			continue
		}
		p.observe(loc.TPL)
		if _, ok := p.dir.Resolve(loc.TPL); !ok {
			continue
		}
		cancelled := loc.Can.Bool()
		p.store.Upsert(loc.TPL, board.Update{
			RID:         ts.RID,
			UID:         ts.UID,
			SSD:         ts.SSD,
			TPL:         loc.TPL,
			PTA:         loc.PTA,
			PTD:         loc.PTD,
			WTA:         loc.WTA,
			WTD:         loc.WTD,
			Arr:         loc.Arr,
			Dep:         loc.Dep,
			Platform:    loc.Plat,
			Cancelled:   &cancelled,
			Delayed:     &delayed,
			LateReason:  lateReason,
			Destination: destination,
		})
		updatesApplied.Inc()
	}
}

// applySchedule fans a timetable update out over the calling-point
// sequence origin, intermediates, destination.
func (p *Pipeline) applySchedule(sc *darwin.Schedule) {
	points := sc.CallingPoints()
	if len(points) == 0 {
		return
	}
	destination := sc.DestinationTPL()

	for _, point := range points {
		if point.TPL == "" {
			continue
		}
		p.observe(point.TPL)
		if _, ok := p.dir.Resolve(point.TPL); !ok {
			continue
		}
		p.store.Upsert(point.TPL, board.Update{
			RID:         sc.RID,
			UID:         sc.UID,
			SSD:         sc.SSD,
			TPL:         point.TPL,
			TrainID:     sc.TrainID,
			TOC:         sc.TOC,
			PTA:         point.PTA,
			PTD:         point.PTD,
			WTA:         point.WTA,
			WTD:         point.WTD,
			Platform:    point.Plat,
			Activity:    point.Activity,
			Destination: destination,
		})
		updatesApplied.Inc()
	}
}

// applyStationMessage records one alert per referenced monitored station.
func (p *Pipeline) applyStationMessage(ow *darwin.StationMessage) {
	for _, ref := range ow.Stations {
		canonical, ok := p.dir.Resolve(ref.CRS)
		if !ok {
			continue
		}
		p.store.AppendAlert(board.Alert{
			Station:   canonical,
			Message:   ow.Message.String(),
			Severity:  ow.Severity.String(),
			Timestamp: p.now(),
		})
		alertsRecorded.Inc()
	}
}

func (p *Pipeline) observe(code string) {
	p.mu.Lock()
	p.observed[code] = struct{}{}
	p.mu.Unlock()
}

// Stats returns the total decoded message count and the instant of the
// last decoded message (zero if none yet).
func (p *Pipeline) Stats() (count int64, lastUpdate time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.messageCount, p.lastUpdate
}

// ObservedCodes returns every raw location code seen on the feed, sorted.
func (p *Pipeline) ObservedCodes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	codes := make([]string, 0, len(p.observed))
	for code := range p.observed {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Samples returns the retained payload summaries.
func (p *Pipeline) Samples() []Sample {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Sample(nil), p.samples...)
}

// summarize builds the debug summary for one decoded document.
func summarize(doc []byte, pp *darwin.Pport) Sample {
	var top map[string]json.RawMessage
	_ = json.Unmarshal(doc, &top)
	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	snippet := string(doc)
	if len(snippet) > 800 {
		snippet = snippet[:800]
	}
	return Sample{
		Keys:    keys,
		HasUR:   pp.UR != nil,
		HasTS:   pp.UR != nil && len(pp.UR.TS) > 0,
		Snippet: snippet,
	}
}
