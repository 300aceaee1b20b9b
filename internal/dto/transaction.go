package dto

import "payment-api/internal/models"

// MerchantTransactionsRequest holds the path and query parameters of a merchant transaction listing
type MerchantTransactionsRequest struct {
	MerchantID    string `param:"merchantId" validate:"required,merchant_id"`
	Page          int    `query:"page" validate:"min=0"`
	Size          int    `query:"size" validate:"min=1,max=100"`
	StartDate     string `query:"startDate" validate:"iso_date"`
	EndDate       string `query:"endDate" validate:"iso_date"`
	Status        string `query:"status" validate:"omitempty,max=20"`
	SortBy        string `query:"sortBy"`
	SortDirection string `query:"sortDirection" validate:"sort_direction"`
}

// TransactionSearchRequest is a criteria search over one merchant's transactions.
// Criteria come from the JSON body, paging and sorting from the query string.
type TransactionSearchRequest struct {
	MerchantID    string                `param:"merchantId" json:"-" validate:"required,merchant_id"`
	SearchFilters []models.SearchFilter `json:"searchFilters"`
	Page          int                   `query:"page" json:"-" validate:"min=0"`
	Size          int                   `query:"size" json:"-" validate:"min=1,max=100"`
	SortBy        string                `query:"sortBy" json:"-"`
	SortDirection string                `query:"sortDirection" json:"-" validate:"sort_direction"`
}

// TransactionDetailRequest identifies one transaction of a merchant
type TransactionDetailRequest struct {
	MerchantID string `param:"merchantId" validate:"required,merchant_id"`
	TxnID      int64  `param:"txnId" validate:"required,min=1"`
}
