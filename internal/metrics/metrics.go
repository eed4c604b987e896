package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
)

var (
	sourceFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contabilidad_source_fetch_total",
		Help: "Upstream collection fetches by source and outcome",
	}, []string{"source", "outcome"})

	sourceFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contabilidad_source_fetch_duration_seconds",
		Help:    "Upstream collection fetch latency",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"source"})

	sourceSkippedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contabilidad_source_skipped_records_total",
		Help: "Upstream records dropped because they could not be decoded",
	}, []string{"source"})

	fetchAllDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "contabilidad_fetch_all_duration_seconds",
		Help:    "Wall time of the three-source parallel fetch",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	httpReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contabilidad_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contabilidad_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	}, []string{"method", "endpoint"})
)

func ObserveSourceFetch(source, outcome string, elapsed time.Duration) {
	sourceFetchTotal.WithLabelValues(source, outcome).Inc()
	sourceFetchDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

func AddSkippedRecords(source string, n int) {
	if n > 0 {
		sourceSkippedRecords.WithLabelValues(source).Add(float64(n))
	}
}

func ObserveFetchAll(elapsed time.Duration) {
	fetchAllDuration.Observe(elapsed.Seconds())
}

func ObserveHTTPRequest(method, endpoint string, status int, elapsed time.Duration) {
	httpReqTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}
