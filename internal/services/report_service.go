package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"payment-api/internal/models"
	"payment-api/internal/repositories"
)

const DefaultReportWindowDays = 30

const reportCacheService = "report_cache"

// reportService builds cross-merchant transaction reports, caching them by window
type reportService struct {
	txnRepo    repositories.TransactionRepositoryInterface
	cache      ReportCacheInterface
	breaker    CircuitBreakerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
	windowDays int
	today      func() models.Date
	now        func() time.Time
}

// NewReportService creates a new report service. A nil cache disables caching.
func NewReportService(
	txnRepo repositories.TransactionRepositoryInterface,
	cache ReportCacheInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	windowDays int,
) ReportServiceInterface {
	if windowDays <= 0 {
		windowDays = DefaultReportWindowDays
	}
	return &reportService{
		txnRepo:    txnRepo,
		cache:      cache,
		breaker:    breaker,
		metrics:    metrics,
		logger:     logger,
		windowDays: windowDays,
		today:      models.Today,
		now:        time.Now,
	}
}

// BuildReport aggregates every transaction dated within the window. A missing end defaults
// to today and a missing start to windowDays before the end.
func (s *reportService) BuildReport(ctx context.Context, startDate, endDate *models.Date) (*models.TransactionReport, error) {
	started := s.now()
	period := s.resolvePeriod(startDate, endDate)
	if period.Start.After(period.End) {
		return nil, ErrInvalidDateRange
	}

	key := reportCacheKey(period)

	var cached models.TransactionReport
	if s.cacheGet(ctx, key, &cached) {
		s.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"source": "cache"})
		return &cached, nil
	}

	txns, err := s.txnRepo.FindInWindow(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	report := AggregateReport(period, txns)
	report.GeneratedAt = s.now().UTC()

	s.cacheSet(ctx, key, report)

	s.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"source": "store"})
	s.metrics.RecordProcessingTime(MetricReportGeneration, s.now().Sub(started))

	s.logger.InfoContext(ctx, "transaction report generated",
		"start", period.Start.String(),
		"end", period.End.String(),
		"transactions", report.SuccessRateMetrics.TotalTransactions,
	)

	return &report, nil
}

func (s *reportService) resolvePeriod(startDate, endDate *models.Date) models.ReportPeriod {
	end := s.today()
	if endDate != nil {
		end = *endDate
	}

	start := end.AddDays(-s.windowDays)
	if startDate != nil {
		start = *startDate
	}

	return models.ReportPeriod{Start: start, End: end}
}

func reportCacheKey(period models.ReportPeriod) string {
	return fmt.Sprintf("report:%s:%s", period.Start, period.End)
}

// cacheGet reports a hit. Cache failures are logged and treated as misses.
func (s *reportService) cacheGet(ctx context.Context, key string, dest *models.TransactionReport) bool {
	if !s.cacheAvailable() {
		return false
	}

	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.cacheFailed(ctx, "get", key, err)
		return false
	}
	s.breaker.RecordSuccess()

	result := "miss"
	if found {
		result = "hit"
	}
	s.metrics.IncrementCounter(MetricReportCache, map[string]string{"operation": "get", "result": result})

	return found
}

func (s *reportService) cacheSet(ctx context.Context, key string, report models.TransactionReport) {
	if !s.cacheAvailable() {
		return
	}

	if err := s.cache.Set(ctx, key, report); err != nil {
		s.cacheFailed(ctx, "set", key, err)
		return
	}
	s.breaker.RecordSuccess()
	s.metrics.IncrementCounter(MetricReportCache, map[string]string{"operation": "set", "result": "ok"})
}

func (s *reportService) cacheAvailable() bool {
	if s.cache == nil {
		return false
	}
	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter(MetricCircuitBreakerOpen, map[string]string{"service": reportCacheService})
		return false
	}
	return true
}

func (s *reportService) cacheFailed(ctx context.Context, operation, key string, err error) {
	s.breaker.RecordFailure()
	s.metrics.IncrementCounter(MetricReportCache, map[string]string{"operation": operation, "result": "error"})
	s.metrics.RecordGauge(MetricCircuitBreakerState, float64(s.breaker.GetState()), map[string]string{"service": reportCacheService})
	s.logger.WarnContext(ctx, "report cache unavailable",
		"operation", operation,
		"key", key,
		"error", err,
	)
}
