package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rank change outcomes
const (
	OutcomeUpdated    = "updated"
	OutcomeRejected   = "rejected"
	OutcomeFailed     = "failed"
	OutcomeUnrecorded = "unrecorded"
	OutcomeError      = "error"
)

var (
	RankChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rank_activity_rank_changes_total",
		Help: "Rank change requests by outcome",
	}, []string{"outcome"})

	LogAppends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rank_activity_log_appends_total",
		Help: "Activity log appends by result",
	}, []string{"result"})

	StreamConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rank_activity_stream_connections",
		Help: "Currently open activity log streams",
	})

	StreamFrames = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rank_activity_stream_frames_total",
		Help: "Frames written to activity log streams by kind",
	}, []string{"kind"})

	StreamPollFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rank_activity_stream_poll_failures_total",
		Help: "Stream polls that failed to read the activity log",
	})

	SnapshotDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rank_activity_snapshot_duration_seconds",
		Help:    "Duration of activity log snapshot reads",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"source"})
)

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
