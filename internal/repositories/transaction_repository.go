package repositories

import (
	"context"
	"errors"
	"fmt"

	"payment-api/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface on gorm
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// scoped applies merchant, date bound and status filters
func (r *transactionRepository) scoped(ctx context.Context, query models.TransactionQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("merchant_id = ?", query.MerchantID)

	if query.StartDate != nil {
		tx = tx.Where("txn_date >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		tx = tx.Where("txn_date <= ?", *query.EndDate)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	return tx
}

// FindByMerchant retrieves a merchant's transactions with optional filters and paging
func (r *transactionRepository) FindByMerchant(ctx context.Context, query models.TransactionQuery) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.scoped(ctx, query).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	tx := r.scoped(ctx, query)
	if query.Page != nil {
		tx = tx.Order(query.Page.OrderClause("txn_id")).
			Offset(query.Page.Offset()).
			Limit(query.Page.Size)
	} else {
		tx = tx.Order("txn_id ASC")
	}

	if err := tx.Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// FindAllByMerchant retrieves every transaction of a merchant in id order
func (r *transactionRepository) FindAllByMerchant(ctx context.Context, merchantID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("txn_id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get merchant transactions: %w", err)
	}
	return transactions, nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, txnID int64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Where("txn_id = ?", txnID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// CountByMerchant counts transactions matching the query
func (r *transactionRepository) CountByMerchant(ctx context.Context, query models.TransactionQuery) (int64, error) {
	var total int64
	if err := r.scoped(ctx, query).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// SumAmountByMerchant sums amounts of transactions matching the query, zero when none match
func (r *transactionRepository) SumAmountByMerchant(ctx context.Context, query models.TransactionQuery) (decimal.Decimal, error) {
	var result struct {
		Total decimal.NullDecimal
	}
	if err := r.scoped(ctx, query).Select("SUM(amount) AS total").Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}
	if !result.Total.Valid {
		return decimal.Zero, nil
	}
	return result.Total.Decimal, nil
}

// DistinctStatusesByMerchant lists the statuses present among transactions matching the query
func (r *transactionRepository) DistinctStatusesByMerchant(ctx context.Context, query models.TransactionQuery) ([]string, error) {
	var statuses []string
	if err := r.scoped(ctx, query).
		Distinct("status").
		Order("status ASC").
		Pluck("status", &statuses).Error; err != nil {
		return nil, fmt.Errorf("failed to get distinct statuses: %w", err)
	}
	return statuses, nil
}

// FindInWindow retrieves all merchants' transactions dated within [start, end]
func (r *transactionRepository) FindInWindow(ctx context.Context, start, end models.Date) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("txn_date >= ? AND txn_date <= ?", start, end).
		Order("txn_date ASC, txn_id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions in window: %w", err)
	}
	return transactions, nil
}
