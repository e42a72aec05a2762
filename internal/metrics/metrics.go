package metrics

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "acad_"

	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
	ResultInvalid  = "invalid"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	transcriptTotal   *prometheus.CounterVec
	transcriptLatency *prometheus.HistogramVec

	krsWriteTotal *prometheus.CounterVec

	exportTotal *prometheus.CounterVec

	gradeCacheTotal *prometheus.CounterVec
)

// Init registers the service metrics on the default registry. Pool gauges are
// registered when pool is non-nil. Safe to call more than once.
func Init(pool *pgxpool.Pool) {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		transcriptTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "transcript_build_total",
				Help: "Total transcript builds by result",
			},
			[]string{"result"},
		)
		transcriptLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "transcript_build_latency_seconds",
				Help:    "Transcript build latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		krsWriteTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "krs_write_total",
				Help: "Total enrollment writes by result",
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "transcript_export_total",
				Help: "Total transcript exports by format and result",
			},
			[]string{"format", "result"},
		)

		gradeCacheTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "grade_cache_lookups_total",
				Help: "Grade-weight cache lookups by outcome",
			},
			[]string{"outcome"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			transcriptTotal,
			transcriptLatency,
			krsWriteTotal,
			exportTotal,
			gradeCacheTotal,
		)

		if pool != nil {
			registerPoolMetrics(pool)
		}
	})
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route, status string, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, route, status).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

// ObserveTranscript records transcript build duration and result.
func ObserveTranscript(result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if transcriptTotal != nil {
		transcriptTotal.WithLabelValues(result).Inc()
	}
	if transcriptLatency != nil {
		transcriptLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncKRSWrite increments the enrollment write counter.
func IncKRSWrite(result string) {
	if result == "" {
		result = ResultSuccess
	}
	if krsWriteTotal != nil {
		krsWriteTotal.WithLabelValues(result).Inc()
	}
}

// IncExport increments the transcript export counter.
func IncExport(format, result string) {
	if format == "" {
		format = "unknown"
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
}

// IncGradeCache counts grade-weight cache hits, misses and errors.
func IncGradeCache(outcome string) {
	if gradeCacheTotal != nil {
		gradeCacheTotal.WithLabelValues(outcome).Inc()
	}
}
