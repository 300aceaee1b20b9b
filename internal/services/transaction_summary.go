package services

import (
	"context"
	"fmt"

	"payment-api/internal/models"

	"github.com/shopspring/decimal"
)

// amountScale is the number of decimal places reported for derived amounts and rates
const amountScale = 2

// SummarizeTransactions aggregates an already-filtered set of transactions.
// An empty set yields zero amounts and an empty status breakdown.
func SummarizeTransactions(txns []models.Transaction) models.SearchSummary {
	summary := models.SearchSummary{
		TotalAmount:   decimal.Zero,
		AverageAmount: decimal.Zero,
		MinAmount:     decimal.Zero,
		MaxAmount:     decimal.Zero,
		ByStatus:      make(map[string]int64),
	}
	if len(txns) == 0 {
		return summary
	}

	minAmount, maxAmount := txns[0].Amount, txns[0].Amount
	for _, txn := range txns {
		summary.TotalAmount = summary.TotalAmount.Add(txn.Amount)
		summary.ByStatus[txn.Status]++
		if txn.Amount.LessThan(minAmount) {
			minAmount = txn.Amount
		}
		if txn.Amount.GreaterThan(maxAmount) {
			maxAmount = txn.Amount
		}
	}

	summary.TotalTransactions = int64(len(txns))
	summary.AverageAmount = summary.TotalAmount.Div(decimal.NewFromInt(summary.TotalTransactions)).Round(amountScale)
	summary.MinAmount = minAmount.Round(amountScale)
	summary.MaxAmount = maxAmount.Round(amountScale)

	return summary
}

// calculateSummary aggregates a merchant listing in the store. Count and total honour the
// status filter; the status breakdown covers the whole date-filtered population.
func (s *transactionService) calculateSummary(ctx context.Context, query models.TransactionQuery) (models.TransactionSummary, error) {
	query.Page = nil

	total, err := s.txnRepo.CountByMerchant(ctx, query)
	if err != nil {
		return models.TransactionSummary{}, fmt.Errorf("failed to count transactions: %w", err)
	}

	amount, err := s.txnRepo.SumAmountByMerchant(ctx, query)
	if err != nil {
		return models.TransactionSummary{}, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}

	population := query.WithoutStatus()
	statuses, err := s.txnRepo.DistinctStatusesByMerchant(ctx, population)
	if err != nil {
		return models.TransactionSummary{}, fmt.Errorf("failed to list transaction statuses: %w", err)
	}

	byStatus := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		scoped := population
		scoped.Status = status
		count, err := s.txnRepo.CountByMerchant(ctx, scoped)
		if err != nil {
			return models.TransactionSummary{}, fmt.Errorf("failed to count %s transactions: %w", status, err)
		}
		byStatus[status] = count
	}

	return models.TransactionSummary{
		TotalTransactions: total,
		TotalAmount:       amount,
		Currency:          s.currency,
		ByStatus:          byStatus,
	}, nil
}
