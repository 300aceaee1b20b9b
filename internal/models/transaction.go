package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Known transaction statuses. Status is an open set; other values pass through untouched.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusReversed  = "reversed"
)

// DefaultCurrency is applied when a transaction carries no currency
const DefaultCurrency = "USD"

// Transaction is one card payment processed for a merchant
type Transaction struct {
	TxnID            int64           `gorm:"column:txn_id;primaryKey;autoIncrement" json:"txnId"`
	MerchantID       string          `gorm:"column:merchant_id;type:varchar(20);not null;index" json:"merchantId"`
	GpAcquirerID     *int64          `gorm:"column:gp_acquirer_id" json:"gpAcquirerId"`
	GpIssuerID       *int64          `gorm:"column:gp_issuer_id" json:"gpIssuerId"`
	TxnDate          Date            `gorm:"column:txn_date;type:date;not null;index" json:"txnDate"`
	LocalTxnDateTime *time.Time      `gorm:"column:local_txn_date_time" json:"localTxnDateTime"`
	Amount           decimal.Decimal `gorm:"column:amount;type:decimal(15,2);not null" json:"amount"`
	Currency         string          `gorm:"column:currency;type:varchar(3);not null;default:'USD'" json:"currency"`
	Status           string          `gorm:"column:status;type:varchar(20);not null;index" json:"status"`
	CardType         *string         `gorm:"column:card_type;type:varchar(20)" json:"cardType"`
	CardLast4        *string         `gorm:"column:card_last4;type:varchar(4)" json:"cardLast4"`
	AuthCode         *string         `gorm:"column:auth_code;type:varchar(10)" json:"authCode"`
	ResponseCode     *string         `gorm:"column:response_code;type:varchar(5)" json:"responseCode"`
	CreatedAt        time.Time       `gorm:"column:created_at;not null" json:"createdAt"`
}

// TableName returns the table name for Transaction
func (Transaction) TableName() string {
	return "transaction_master"
}

// IsCompleted returns true if the transaction is completed
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// IsFailed returns true if the transaction failed
func (t *Transaction) IsFailed() bool {
	return t.Status == TransactionStatusFailed
}

// EffectiveTimestamp returns the local transaction time when recorded, otherwise the creation time
func EffectiveTimestamp(txn Transaction) time.Time {
	if txn.LocalTxnDateTime != nil {
		return *txn.LocalTxnDateTime
	}
	return txn.CreatedAt
}

// TransactionResponse is a transaction as the API returns it, stamped with its effective time
type TransactionResponse struct {
	Transaction
	Timestamp time.Time `json:"timestamp"`
}

// NewTransactionResponse stamps txn with EffectiveTimestamp
func NewTransactionResponse(txn Transaction) TransactionResponse {
	return TransactionResponse{Transaction: txn, Timestamp: EffectiveTimestamp(txn)}
}

// NewTransactionResponses maps txns in order. The result is never nil.
func NewTransactionResponses(txns []Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, NewTransactionResponse(txn))
	}
	return out
}
