package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"payment-api/internal/models"
	"payment-api/internal/repositories"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// transactionService serves merchant transaction listings, criteria searches and lookups.
// A merchant with no transactions on file yields an empty page, never an error.
type transactionService struct {
	txnRepo  repositories.TransactionRepositoryInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
	currency string
}

// NewTransactionService creates a new transaction service. Summaries report amounts in currency.
func NewTransactionService(
	txnRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	currency string,
) TransactionServiceInterface {
	if currency == "" {
		currency = models.DefaultCurrency
	}
	return &transactionService{
		txnRepo:  txnRepo,
		metrics:  metrics,
		logger:   logger,
		currency: currency,
	}
}

// GetMerchantTransactions returns one page of a merchant's transactions narrowed by the
// optional date bounds and status, with a summary computed in the store.
func (s *transactionService) GetMerchantTransactions(ctx context.Context, query models.TransactionQuery) (*models.MerchantTransactionPage, error) {
	start := time.Now()

	if query.StartDate != nil && query.EndDate != nil && query.StartDate.After(*query.EndDate) {
		return nil, ErrInvalidDateRange
	}

	page := models.PageRequest{Size: DefaultPageSize}
	if query.Page != nil {
		page = *query.Page
	}
	query.Page = &page

	txns, total, err := s.txnRepo.FindByMerchant(ctx, query)
	if err != nil {
		s.recordQuery("list", err)
		return nil, fmt.Errorf("failed to find merchant transactions: %w", err)
	}

	summary, err := s.calculateSummary(ctx, query)
	if err != nil {
		s.recordQuery("list", err)
		return nil, err
	}

	s.recordQuery("list", nil)
	s.metrics.RecordProcessingTime(MetricTransactionQuery+".list", time.Since(start))

	s.logger.DebugContext(ctx, "merchant transactions listed",
		"merchant_id", query.MerchantID,
		"page", page.Page,
		"size", page.Size,
		"total", total,
	)

	return &models.MerchantTransactionPage{
		MerchantID:   query.MerchantID,
		DateRange:    models.NewDateRange(query.StartDate, query.EndDate),
		Summary:      summary,
		Transactions: models.NewTransactionResponses(txns),
		Pagination:   models.NewPagination(page, total),
	}, nil
}

// SearchTransactions filters every transaction of the merchant against the criteria, sorts
// and pages the matches, and summarises the full match set.
func (s *transactionService) SearchTransactions(ctx context.Context, merchantID string, criteria []models.SearchFilter, page models.PageRequest) (*models.TransactionSearchResult, error) {
	start := time.Now()

	for _, passthrough := range PassthroughCriteria(criteria) {
		s.logger.WarnContext(ctx, "search criterion does not filter",
			"merchant_id", merchantID,
			"field", passthrough.Field,
			"condition", passthrough.Condition,
			"reason", passthrough.Reason,
		)
		s.metrics.IncrementCounter(MetricFilterPassthrough, map[string]string{
			"reason": passthrough.Reason,
		})
	}

	all, err := s.txnRepo.FindAllByMerchant(ctx, merchantID)
	if err != nil {
		s.recordQuery("search", err)
		return nil, fmt.Errorf("failed to load merchant transactions: %w", err)
	}

	matches := slices.Clone(ApplyFilters(all, criteria))
	SortTransactions(matches, page.Sort)

	pageItems := models.Paginate(matches, page)

	s.recordQuery("search", nil)
	s.metrics.RecordGauge(MetricSearchResults, float64(len(matches)), nil)
	s.metrics.RecordProcessingTime(MetricTransactionQuery+".search", time.Since(start))

	s.logger.InfoContext(ctx, "transaction search completed",
		"merchant_id", merchantID,
		"criteria", len(criteria),
		"scanned", len(all),
		"matched", len(matches),
	)

	return &models.TransactionSearchResult{
		MerchantID:   merchantID,
		Transactions: models.NewTransactionResponses(pageItems),
		Summary:      SummarizeTransactions(matches),
		Pagination:   models.NewPagination(page, int64(len(matches))),
	}, nil
}

// GetTransaction returns the transaction when it exists and belongs to the merchant
func (s *transactionService) GetTransaction(ctx context.Context, merchantID string, txnID int64) (*models.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, txnID)
	if err != nil {
		s.recordQuery("detail", err)
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if txn.MerchantID != merchantID {
		s.logger.WarnContext(ctx, "transaction requested under another merchant",
			"merchant_id", merchantID,
			"txn_id", txnID,
		)
		s.recordQuery("detail", repositories.ErrTransactionNotFound)
		return nil, repositories.ErrTransactionNotFound
	}

	s.recordQuery("detail", nil)
	return txn, nil
}

func (s *transactionService) recordQuery(operation string, err error) {
	status := "success"
	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}
	s.metrics.IncrementCounter(MetricTransactionQuery, map[string]string{
		"operation": operation,
		"status":    status,
	})
}
