package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"payment-api/internal/models"
	"payment-api/internal/repositories/repository_mocks"
	"payment-api/internal/services"
	"payment-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	txnRepo *repository_mocks.MockTransactionRepositoryInterface
	cache   *service_mocks.MockReportCacheInterface
	breaker *service_mocks.MockCircuitBreakerInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	service services.ReportServiceInterface
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.txnRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.cache = service_mocks.NewMockReportCacheInterface(s.ctrl)
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewReportService(s.txnRepo, s.cache, s.breaker, s.metrics, slog.New(slog.NewTextHandler(io.Discard, nil)), 30)
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportServiceTestSuite) TestBuildReport_CacheMissAggregatesAndStores() {
	start, end := models.NewDate(2024, time.January, 1), models.NewDate(2024, time.January, 7)
	txns := []models.Transaction{
		{TxnDate: models.NewDate(2024, time.January, 2), Amount: decimal.RequireFromString("10.00"), Status: "completed"},
		{TxnDate: models.NewDate(2024, time.January, 3), Amount: decimal.RequireFromString("30.00"), Status: "failed"},
	}

	s.breaker.EXPECT().IsOpen().Return(false).Times(2)
	s.breaker.EXPECT().RecordSuccess().Times(2)
	s.cache.EXPECT().Get(s.ctx, "report:2024-01-01:2024-01-07", gomock.Any()).Return(false, nil)
	s.txnRepo.EXPECT().FindInWindow(s.ctx, start, end).Return(txns, nil)
	s.cache.EXPECT().Set(s.ctx, "report:2024-01-01:2024-01-07", gomock.Any()).Return(nil)

	report, err := s.service.BuildReport(s.ctx, &start, &end)

	s.Require().NoError(err)
	s.Equal(start, report.ReportPeriod.Start)
	s.Equal(end, report.ReportPeriod.End)
	s.Equal(int64(2), report.SuccessRateMetrics.TotalTransactions)
	s.Equal("50", report.SuccessRateMetrics.SuccessRate.String())
	s.Equal("20", report.AmountTrends.Overall.Average.String())
	s.False(report.GeneratedAt.IsZero())
}

func (s *ReportServiceTestSuite) TestBuildReport_CacheHitBypassesStore() {
	start, end := models.NewDate(2024, time.March, 1), models.NewDate(2024, time.March, 31)

	s.breaker.EXPECT().IsOpen().Return(false)
	s.breaker.EXPECT().RecordSuccess()
	s.cache.EXPECT().Get(s.ctx, "report:2024-03-01:2024-03-31", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			report := dest.(*models.TransactionReport)
			report.ReportPeriod = models.ReportPeriod{Start: start, End: end}
			report.SuccessRateMetrics.TotalTransactions = 99
			return true, nil
		})
	s.txnRepo.EXPECT().FindInWindow(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := s.service.BuildReport(s.ctx, &start, &end)

	s.Require().NoError(err)
	s.Equal(int64(99), report.SuccessRateMetrics.TotalTransactions)
}

func (s *ReportServiceTestSuite) TestBuildReport_CacheFailureFallsBackToStore() {
	start, end := models.NewDate(2024, time.January, 1), models.NewDate(2024, time.January, 7)
	cacheErr := errors.New("dial tcp: connection refused")

	s.breaker.EXPECT().IsOpen().Return(false).Times(2)
	s.breaker.EXPECT().RecordFailure().Times(2)
	s.breaker.EXPECT().GetState().Return(services.StateClosed).Times(2)
	s.cache.EXPECT().Get(s.ctx, gomock.Any(), gomock.Any()).Return(false, cacheErr)
	s.cache.EXPECT().Set(s.ctx, gomock.Any(), gomock.Any()).Return(cacheErr)
	s.txnRepo.EXPECT().FindInWindow(s.ctx, start, end).Return(nil, nil)

	report, err := s.service.BuildReport(s.ctx, &start, &end)

	s.Require().NoError(err)
	s.Equal(int64(0), report.SuccessRateMetrics.TotalTransactions)
}

func (s *ReportServiceTestSuite) TestBuildReport_OpenBreakerSkipsCache() {
	start, end := models.NewDate(2024, time.January, 1), models.NewDate(2024, time.January, 7)

	s.breaker.EXPECT().IsOpen().Return(true).Times(2)
	s.txnRepo.EXPECT().FindInWindow(s.ctx, start, end).Return(nil, nil)

	_, err := s.service.BuildReport(s.ctx, &start, &end)

	s.Require().NoError(err)
}

func (s *ReportServiceTestSuite) TestBuildReport_DefaultsWindowFromEnd() {
	end := models.NewDate(2024, time.February, 15)
	expectedStart := models.NewDate(2024, time.January, 16)

	s.breaker.EXPECT().IsOpen().Return(true).Times(2)
	s.txnRepo.EXPECT().FindInWindow(s.ctx, expectedStart, end).Return(nil, nil)

	report, err := s.service.BuildReport(s.ctx, nil, &end)

	s.Require().NoError(err)
	s.Equal(expectedStart, report.ReportPeriod.Start)
}

func (s *ReportServiceTestSuite) TestBuildReport_DefaultsEndToToday() {
	start := models.Today().AddDays(-3)

	s.breaker.EXPECT().IsOpen().Return(true).Times(2)
	s.txnRepo.EXPECT().FindInWindow(s.ctx, start, gomock.Any()).Return(nil, nil)

	report, err := s.service.BuildReport(s.ctx, &start, nil)

	s.Require().NoError(err)
	s.Equal(models.Today(), report.ReportPeriod.End)
}

func (s *ReportServiceTestSuite) TestBuildReport_StartAfterEnd() {
	start, end := models.NewDate(2024, time.January, 8), models.NewDate(2024, time.January, 7)

	_, err := s.service.BuildReport(s.ctx, &start, &end)

	s.ErrorIs(err, services.ErrInvalidDateRange)
}

func (s *ReportServiceTestSuite) TestBuildReport_StoreFailurePropagates() {
	start, end := models.NewDate(2024, time.January, 1), models.NewDate(2024, time.January, 7)
	storeErr := errors.New("query canceled")

	s.breaker.EXPECT().IsOpen().Return(true)
	s.txnRepo.EXPECT().FindInWindow(s.ctx, start, end).Return(nil, storeErr)

	_, err := s.service.BuildReport(s.ctx, &start, &end)

	s.ErrorIs(err, storeErr)
}

func TestBuildReport_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	txnRepo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	svc := services.NewReportService(txnRepo, nil, services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()), metrics, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	start, end := models.NewDate(2024, time.January, 1), models.NewDate(2024, time.January, 7)
	txnRepo.EXPECT().FindInWindow(gomock.Any(), start, end).Return(nil, nil)

	report, err := svc.BuildReport(context.Background(), &start, &end)

	require.NoError(t, err)
	require.NotNil(t, report.VolumeMetrics.Daily)
}
