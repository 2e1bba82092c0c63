// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	DeckScores = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_scores_total",
			Help: "Decks scored, by letter grade",
		},
		[]string{"grade"},
	)

	DeckScoreRatio = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deck_score_ratio",
			Help:    "Deck total score as a fraction of the maximum",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	RepositoryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_repository_operations_total",
			Help: "Deck repository operations by outcome (ok, absent, corrupt, error)",
		},
		[]string{"operation", "outcome"},
	)
)

// ObserveScore records one scoring run.
func ObserveScore(grade string, ratio float64) {
	DeckScores.WithLabelValues(grade).Inc()
	DeckScoreRatio.Observe(ratio)
}
