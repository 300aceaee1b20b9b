package services

import (
	"cmp"
	"slices"
	"strings"

	"payment-api/internal/models"
)

// Sort fields accepted by transaction endpoints mapped to their columns
var transactionSortColumns = map[string]string{
	"txnId":     "txn_id",
	"txnDate":   "txn_date",
	"amount":    "amount",
	"status":    "status",
	"currency":  "currency",
	"cardType":  "card_type",
	"createdAt": "created_at",
}

// Sort fields accepted by the merchant listing mapped to their columns
var merchantSortColumns = map[string]string{
	"merchantId":   "merchant_id",
	"merchantName": "merchant_name",
	"businessName": "business_name",
	"businessType": "business_type",
	"createdAt":    "created_at",
}

const (
	DefaultTransactionSortField = "txnDate"
	DefaultMerchantSortField    = "merchantId"
)

// ParseSortOrders turns parallel comma-separated sort field and direction lists into sort keys.
// A field without a matching direction sorts ascending; only DESC (any case) sorts descending.
// Blank or unrecognized fields fall back to defaultField.
func ParseSortOrders(sortBy, sortDirection string, allowed map[string]string, defaultField string) []models.SortOrder {
	fields := strings.Split(sortBy, ",")
	directions := strings.Split(sortDirection, ",")

	orders := make([]models.SortOrder, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		column, ok := allowed[field]
		if !ok {
			field = defaultField
			column = allowed[defaultField]
		}

		direction := models.SortAsc
		if i < len(directions) && strings.EqualFold(strings.TrimSpace(directions[i]), string(models.SortDesc)) {
			direction = models.SortDesc
		}

		orders = append(orders, models.SortOrder{Field: field, Column: column, Direction: direction})
	}

	return orders
}

// ParseTransactionSort parses sort parameters for transaction endpoints
func ParseTransactionSort(sortBy, sortDirection string) []models.SortOrder {
	return ParseSortOrders(sortBy, sortDirection, transactionSortColumns, DefaultTransactionSortField)
}

// ParseMerchantSort parses sort parameters for the merchant listing
func ParseMerchantSort(sortBy, sortDirection string) []models.SortOrder {
	return ParseSortOrders(sortBy, sortDirection, merchantSortColumns, DefaultMerchantSortField)
}

// SortTransactions orders txns in place by the sort keys in priority order.
// Ties on every key keep their original relative order.
func SortTransactions(txns []models.Transaction, orders []models.SortOrder) {
	if len(orders) == 0 {
		return
	}

	slices.SortStableFunc(txns, func(a, b models.Transaction) int {
		for _, order := range orders {
			result := compareTransactionField(a, b, order.Field)
			if order.Direction == models.SortDesc {
				result = -result
			}
			if result != 0 {
				return result
			}
		}
		return 0
	})
}

// compareTransactionField compares one sortable field. Absent values sort first.
func compareTransactionField(a, b models.Transaction, field string) int {
	switch field {
	case "txnId":
		return cmp.Compare(a.TxnID, b.TxnID)
	case "txnDate":
		return a.TxnDate.Compare(b.TxnDate.Time)
	case "amount":
		return a.Amount.Cmp(b.Amount)
	case "status":
		return strings.Compare(a.Status, b.Status)
	case "currency":
		return strings.Compare(a.Currency, b.Currency)
	case "cardType":
		return compareOptional(a.CardType, b.CardType)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}

func compareOptional(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return strings.Compare(*a, *b)
	}
}
