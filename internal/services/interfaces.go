package services

import (
	"context"
	"time"

	"payment-api/internal/models"
)

// TransactionServiceInterface defines merchant transaction query operations
type TransactionServiceInterface interface {
	// GetMerchantTransactions returns one page of a merchant's transactions with a store-computed summary
	GetMerchantTransactions(ctx context.Context, query models.TransactionQuery) (*models.MerchantTransactionPage, error)

	// SearchTransactions applies filter criteria to all of a merchant's transactions, then sorts and pages the matches
	SearchTransactions(ctx context.Context, merchantID string, criteria []models.SearchFilter, page models.PageRequest) (*models.TransactionSearchResult, error)

	// GetTransaction returns a single transaction owned by the merchant
	GetTransaction(ctx context.Context, merchantID string, txnID int64) (*models.Transaction, error)
}

// ReportServiceInterface defines cross-merchant analytics operations
type ReportServiceInterface interface {
	BuildReport(ctx context.Context, startDate, endDate *models.Date) (*models.TransactionReport, error)
}

// MerchantServiceInterface defines merchant lookup operations
type MerchantServiceInterface interface {
	ListMerchants(ctx context.Context, filters models.MerchantFilters, page models.PageRequest) ([]models.Merchant, models.Pagination, error)
}

// ReportCacheInterface stores serialized reports keyed by window
type ReportCacheInterface interface {
	// Get decodes the cached value into dest and reports whether the key was present
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// MetricsRecorderInterface records service metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface guards calls to an unreliable dependency
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}
