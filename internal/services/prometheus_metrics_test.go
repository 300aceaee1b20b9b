package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	m := NewPrometheusMetricsWithRegistry(prometheus.NewRegistry())

	m.IncrementCounter(MetricFilterPassthrough, map[string]string{"reason": PassthroughUnknownField})
	m.IncrementCounter(MetricFilterPassthrough, map[string]string{"reason": PassthroughUnknownField})
	m.IncrementCounter(MetricFilterPassthrough, map[string]string{})
	m.IncrementCounter(MetricTransactionQuery, map[string]string{"operation": "search", "status": "success"})
	m.IncrementCounter(MetricReportGenerated, map[string]string{"source": "cache"})
	m.IncrementCounter(MetricCircuitBreakerOpen, map[string]string{"service": reportCacheService})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.filterPassthrough.WithLabelValues(PassthroughUnknownField)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transactionQueries.WithLabelValues("search", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reportsGenerated.WithLabelValues("cache")))
	assert.Equal(t, float64(StateOpen), testutil.ToFloat64(m.circuitBreakerState.WithLabelValues(reportCacheService)))
}

func TestPrometheusMetrics_TimingsAndGauges(t *testing.T) {
	m := NewPrometheusMetricsWithRegistry(prometheus.NewRegistry())

	m.RecordProcessingTime(MetricTransactionQuery+".list", 20*time.Millisecond)
	m.RecordProcessingTime(MetricReportGeneration, time.Second)
	m.RecordProcessingTime("unrelated", time.Second)
	m.RecordGauge(MetricSearchResults, 12, nil)
	m.RecordGauge(MetricCircuitBreakerState, float64(StateHalfOpen), map[string]string{"service": reportCacheService})

	assert.Equal(t, 1, testutil.CollectAndCount(m.transactionQueryTime))
	assert.Equal(t, 1, testutil.CollectAndCount(m.reportDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(m.searchResults))
	assert.Equal(t, float64(StateHalfOpen), testutil.ToFloat64(m.circuitBreakerState.WithLabelValues(reportCacheService)))
}
