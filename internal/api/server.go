// Package api exposes the boards, journey planner, alerts and diagnostics
// over an HTTP JSON API.
package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MEMAtest/railway/internal/board"
	"github.com/MEMAtest/railway/internal/ingest"
	"github.com/MEMAtest/railway/internal/journey"
	"github.com/MEMAtest/railway/internal/stations"
)

// FeedStatus reports the state of the broker connection.
type FeedStatus interface {
	Connected() bool
}

// Server holds the collaborators the handlers read from. Handlers never
// mutate core state.
type Server struct {
	dir      *stations.Directory
	store    *board.Store
	pipeline *ingest.Pipeline
	planner  *journey.Planner
	feed     FeedStatus
	now      func() time.Time
}

// NewServer wires the handlers to their collaborators.
func NewServer(dir *stations.Directory, store *board.Store, pipeline *ingest.Pipeline, planner *journey.Planner, feed FeedStatus, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{dir: dir, store: store, pipeline: pipeline, planner: planner, feed: feed, now: now}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", s.GetHealth)
	r.Get("/api/departures", s.GetAllDepartures)
	r.Get("/api/departures/{station}", s.GetStationDepartures)
	r.Get("/api/journey/{destination}", s.GetJourney)
	r.Get("/api/messages", s.GetMessages)
	r.Get("/api/status", s.GetStatus)
	r.Get("/api/debug/samples", s.GetDebugSamples)
	r.Get("/api/debug/stations", s.GetDebugStations)
	r.Get("/api/debug/raw", s.GetDebugRaw)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	count, lastUpdate := s.pipeline.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ok",
		"feedConnected":     s.feed.Connected(),
		"lastUpdate":        nullableTime(lastUpdate),
		"messageCount":      count,
		"stationsMonitored": s.dir.Aliases(),
	})
}

// GetAllDepartures handles GET /api/departures.
func (s *Server) GetAllDepartures(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	_, lastUpdate := s.pipeline.Stats()

	boards := s.store.ReadAll()
	out := make(map[string]StationBoard, len(boards))
	for code, records := range boards {
		station, ok := s.dir.Station(code)
		if !ok {
			continue
		}
		out[code] = formatBoard(s.dir, station, records, now)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"timestamp":  now,
		"lastUpdate": nullableTime(lastUpdate),
		"stations":   out,
	})
}

// GetStationDepartures handles GET /api/departures/{station}. The station
// parameter accepts the canonical code or any alias, case-insensitively.
func (s *Server) GetStationDepartures(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "station"))
	station, ok := s.dir.Station(code)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Station not found"})
		return
	}

	now := s.now()
	_, lastUpdate := s.pipeline.Stats()
	view := formatBoard(s.dir, station, s.store.Read(station.Code), now)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"timestamp":  now,
		"lastUpdate": nullableTime(lastUpdate),
		"station": map[string]interface{}{
			"code":       station.Code,
			"name":       view.Name,
			"line":       view.Line,
			"walkMins":   view.WalkMins,
			"departures": view.Departures,
		},
	})
}

// GetJourney handles GET /api/journey/{destination}.
func (s *Server) GetJourney(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "destination")
	if unescaped, err := url.PathUnescape(query); err == nil {
		query = unescaped
	}
	plan, ok := s.planner.Find(query)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: "Destination not found",
			Hint:  `Try a partial name like "victoria", "london bridge", "crystal palace"`,
		})
		return
	}

	_, lastUpdate := s.pipeline.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"timestamp":   s.now(),
		"lastUpdate":  nullableTime(lastUpdate),
		"destination": plan.Destination,
		"options":     plan.Options,
	})
}

// GetMessages handles GET /api/messages.
func (s *Server) GetMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"timestamp": s.now(),
		"messages":  s.store.Alerts(),
	})
}

// GetStatus handles GET /api/status.
func (s *Server) GetStatus(w http.ResponseWriter, r *http.Request) {
	count, lastUpdate := s.pipeline.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"feedConnected":   s.feed.Connected(),
		"lastUpdate":      nullableTime(lastUpdate),
		"messageCount":    count,
		"departuresCount": s.store.Counts(),
	})
}

// GetDebugSamples handles GET /api/debug/samples.
func (s *Server) GetDebugSamples(w http.ResponseWriter, r *http.Request) {
	count, _ := s.pipeline.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"messageCount":   count,
		"sampleMessages": s.pipeline.Samples(),
	})
}

// GetDebugStations handles GET /api/debug/stations. Shows which location
// codes have come through the feed and which of them resolved to a
// monitored station.
func (s *Server) GetDebugStations(w http.ResponseWriter, r *http.Request) {
	all := s.pipeline.ObservedCodes()

	monitoredSeen := make([]string, 0, 8)
	for _, code := range all {
		if _, ok := s.dir.Resolve(code); ok {
			monitoredSeen = append(monitoredSeen, code)
		}
	}

	shown := all
	if len(shown) > 200 {
		shown = shown[:200]
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalStationsSeen": len(all),
		"monitoredSeen":     monitoredSeen,
		"allStations":       shown,
		"monitoredCodes":    s.dir.Aliases(),
	})
}

// GetDebugRaw handles GET /api/debug/raw. Serves boards with raw
// destination codes and platform shapes, before any formatting.
func (s *Server) GetDebugRaw(w http.ResponseWriter, r *http.Request) {
	boards := s.store.ReadAll()
	raw := make(map[string][]RawDeparture, len(boards))
	known := 0
	for code, records := range boards {
		entries := make([]RawDeparture, 0, len(records))
		for i := range records {
			rec := &records[i]
			entries = append(entries, RawDeparture{
				Destination:   rec.Destination,
				ResolvedName:  s.dir.DestinationName(rec.Destination),
				ScheduledTime: rec.ScheduledDeparture(),
				Platform:      rec.Platform,
			})
		}
		raw[code] = entries
		known += len(entries)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rawData":      raw,
		"totalRecords": known,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
