package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	msgsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railway_feed_messages_received_total",
		Help: "Total number of broker messages handed to the pipeline.",
	})
	msgsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railway_feed_messages_dropped_total",
		Help: "Total number of broker messages dropped as undecodable.",
	})
	updatesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railway_board_updates_applied_total",
		Help: "Total number of departure updates applied to station boards.",
	})
	alertsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "railway_alerts_recorded_total",
		Help: "Total number of station service messages recorded.",
	})
)
