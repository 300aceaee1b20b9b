package models

import "github.com/shopspring/decimal"

// TransactionSummary aggregates a merchant's transactions for a listing.
// ByStatus covers the date-filtered population regardless of any status filter.
type TransactionSummary struct {
	TotalTransactions int64            `json:"totalTransactions"`
	TotalAmount       decimal.Decimal  `json:"totalAmount"`
	Currency          string           `json:"currency"`
	ByStatus          map[string]int64 `json:"byStatus"`
}

// SearchSummary aggregates the full result of a criteria search
type SearchSummary struct {
	TotalTransactions int64            `json:"totalTransactions"`
	TotalAmount       decimal.Decimal  `json:"totalAmount"`
	AverageAmount     decimal.Decimal  `json:"averageAmount"`
	MinAmount         decimal.Decimal  `json:"minAmount"`
	MaxAmount         decimal.Decimal  `json:"maxAmount"`
	ByStatus          map[string]int64 `json:"byStatus"`
}

// MerchantTransactionPage is one page of a merchant's transactions with its summary
type MerchantTransactionPage struct {
	MerchantID   string                `json:"merchantId"`
	DateRange    DateRange             `json:"dateRange"`
	Summary      TransactionSummary    `json:"summary"`
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// TransactionSearchResult is one page of a criteria search with a summary of every match
type TransactionSearchResult struct {
	MerchantID   string                `json:"merchantId"`
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SearchSummary         `json:"summary"`
	Pagination   Pagination            `json:"pagination"`
}
