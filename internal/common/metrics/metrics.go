// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlp_analyses_performed_total",
			Help: "Total number of analyses performed per engine",
		},
		[]string{"engine"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "nlp_analysis_duration_seconds",
			Help: "Duration of a single analysis in seconds",
		},
		[]string{"engine"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlp_conversation_cache_hits_total",
			Help: "Conversation cache hits per owner",
		},
		[]string{"owner"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlp_conversation_cache_misses_total",
			Help: "Conversation cache misses per owner",
		},
		[]string{"owner"},
	)

	IntentModelUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlp_intent_model_updates_total",
			Help: "Outcome-driven intent model updates per industry",
		},
		[]string{"industry", "result"},
	)
)
