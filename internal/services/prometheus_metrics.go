package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric event names accepted by PrometheusMetrics
const (
	MetricTransactionQuery    = "transaction.query"
	MetricFilterPassthrough   = "transaction.filter.passthrough"
	MetricSearchResults       = "transaction.search.results"
	MetricReportGenerated     = "report.generated"
	MetricReportGeneration    = "report.generation"
	MetricReportCache         = "report.cache"
	MetricCircuitBreakerOpen  = "circuit_breaker.open"
	MetricCircuitBreakerState = "circuit_breaker.state"
	MetricMerchantListRequest = "merchant.list"
)

type PrometheusMetrics struct {
	transactionQueries   *prometheus.CounterVec
	transactionQueryTime *prometheus.HistogramVec
	searchResults        prometheus.Histogram
	filterPassthrough    *prometheus.CounterVec
	reportsGenerated     *prometheus.CounterVec
	reportDuration       prometheus.Histogram
	reportCache          *prometheus.CounterVec
	circuitBreakerState  *prometheus.GaugeVec
	merchantListRequests *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service metrics with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the service metrics with reg
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_query_requests_total",
				Help: "Total number of merchant transaction queries",
			},
			[]string{"operation", "status"},
		),
		transactionQueryTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_query_duration_seconds",
				Help:    "Merchant transaction query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		searchResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_search_results",
				Help:    "Number of transactions matching a criteria search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		filterPassthrough: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_filter_passthrough_total",
				Help: "Total number of search criteria that matched everything because the field or condition is not recognized",
			},
			[]string{"reason"},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_reports_total",
				Help: "Total number of transaction reports served",
			},
			[]string{"source"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_report_duration_seconds",
				Help:    "Transaction report build duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		reportCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_cache_operations_total",
				Help: "Total number of report cache operations",
			},
			[]string{"operation", "result"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		merchantListRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchant_list_requests_total",
				Help: "Total number of merchant listing requests",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionQuery:
		m.transactionQueries.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case MetricFilterPassthrough:
		if reason := tags["reason"]; reason != "" {
			m.filterPassthrough.WithLabelValues(reason).Inc()
		}
	case MetricReportGenerated:
		m.reportsGenerated.WithLabelValues(tags["source"]).Inc()
	case MetricReportCache:
		m.reportCache.WithLabelValues(tags["operation"], tags["result"]).Inc()
	case MetricCircuitBreakerOpen:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(float64(StateOpen))
	case MetricMerchantListRequest:
		if status := tags["status"]; status != "" {
			m.merchantListRequests.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == MetricReportGeneration {
		m.reportDuration.Observe(duration.Seconds())
		return
	}
	if operation, ok := strings.CutPrefix(name, MetricTransactionQuery+"."); ok {
		m.transactionQueryTime.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricSearchResults:
		m.searchResults.Observe(value)
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
