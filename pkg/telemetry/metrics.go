package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for ResponsesTotal.
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"

	TagNone = "none"
)

var (
	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_responses_total",
		Help: "Responses produced, by predicted tag and outcome",
	}, []string{"tag", "outcome", "reason"})

	Confidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chatbot_confidence",
		Help:    "Winning class probability per classified message",
		Buckets: []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
	})

	PredictionCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatbot_prediction_cache_hits_total",
		Help: "Predictions served from the cache",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatbot_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)
