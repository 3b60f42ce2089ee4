package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeUnavailable = "unavailable"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingua_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lingua_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	translationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingua_translation_requests_total",
			Help: "Total number of upstream translation calls",
		},
		[]string{"provider", "outcome"},
	)

	translationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lingua_translation_duration_seconds",
			Help:    "Duration of upstream translation calls in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
		},
		[]string{"provider"},
	)

	synthesesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lingua_speech_synthesis_total",
			Help: "Total number of speech synthesis calls",
		},
		[]string{"strategy", "outcome"},
	)

	synthesisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lingua_speech_synthesis_duration_seconds",
			Help:    "Duration of speech synthesis calls in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
		[]string{"strategy"},
	)

	audioBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lingua_speech_audio_size_bytes",
			Help:    "Size of synthesized audio clips in bytes",
			Buckets: []float64{1e3, 1e4, 5e4, 1e5, 5e5, 1e6, 5e6},
		},
		[]string{"strategy"},
	)

	audioFilesPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lingua_audio_files_pruned_total",
			Help: "Total number of stored audio files removed by retention",
		},
	)
)

// RecordHTTPRequest records one served request. route is the registered path pattern.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordTranslation(provider, outcome string, duration time.Duration) {
	translationsTotal.WithLabelValues(provider, outcome).Inc()
	if outcome != OutcomeUnavailable {
		translationDuration.WithLabelValues(provider).Observe(duration.Seconds())
	}
}

func RecordSynthesis(strategy, outcome string, duration time.Duration, size int) {
	synthesesTotal.WithLabelValues(strategy, outcome).Inc()
	if outcome == OutcomeUnavailable {
		return
	}
	synthesisDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if outcome == OutcomeSuccess {
		audioBytes.WithLabelValues(strategy).Observe(float64(size))
	}
}

func RecordAudioPruned(n int) {
	if n > 0 {
		audioFilesPruned.Add(float64(n))
	}
}
