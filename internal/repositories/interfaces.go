package repositories

import (
	"context"

	"payment-api/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for transaction store operations
type TransactionRepositoryInterface interface {
	// FindByMerchant returns the requested page (all rows when query.Page is nil) and the total match count
	FindByMerchant(ctx context.Context, query models.TransactionQuery) ([]models.Transaction, int64, error)
	FindAllByMerchant(ctx context.Context, merchantID string) ([]models.Transaction, error)
	GetByID(ctx context.Context, txnID int64) (*models.Transaction, error)

	// Scalar aggregates share FindByMerchant's filtering; paging is ignored
	CountByMerchant(ctx context.Context, query models.TransactionQuery) (int64, error)
	SumAmountByMerchant(ctx context.Context, query models.TransactionQuery) (decimal.Decimal, error)
	DistinctStatusesByMerchant(ctx context.Context, query models.TransactionQuery) ([]string, error)

	// FindInWindow returns every merchant's transactions dated within [start, end]
	FindInWindow(ctx context.Context, start, end models.Date) ([]models.Transaction, error)
}

// MerchantRepositoryInterface defines the contract for merchant store operations
type MerchantRepositoryInterface interface {
	List(ctx context.Context, filters models.MerchantFilters, page models.PageRequest) ([]models.Merchant, int64, error)
}
