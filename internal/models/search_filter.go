package models

// Filterable transaction fields
const (
	FilterFieldTxnDate      = "txnDate"
	FilterFieldDate         = "date"
	FilterFieldStatus       = "status"
	FilterFieldAmount       = "amount"
	FilterFieldCurrency     = "currency"
	FilterFieldCardType     = "cardType"
	FilterFieldCardLast4    = "cardLast4"
	FilterFieldAuthCode     = "authCode"
	FilterFieldResponseCode = "responseCode"
	FilterFieldMerchantID   = "merchantId"
	FilterFieldGpAcquirerID = "gpAcquirerId"
	FilterFieldGpIssuerID   = "gpIssuerId"
)

// Filter conditions
const (
	ConditionEquals             = "equals"
	ConditionNotEquals          = "notEquals"
	ConditionContains           = "contains"
	ConditionGreaterThan        = "greaterThan"
	ConditionLessThan           = "lessThan"
	ConditionGreaterThanOrEqual = "greaterThanOrEqual"
	ConditionLessThanOrEqual    = "lessThanOrEqual"
)

// SearchFilter is a single (field, condition, value) criterion.
// A nil member means the criterion is incomplete and matches everything.
type SearchFilter struct {
	Field     *string `json:"field"`
	Condition *string `json:"condition"`
	Value     *string `json:"value"`
}

// NewSearchFilter builds a complete criterion
func NewSearchFilter(field, condition, value string) SearchFilter {
	return SearchFilter{Field: &field, Condition: &condition, Value: &value}
}

// IsComplete reports whether field, condition and value are all present
func (f SearchFilter) IsComplete() bool {
	return f.Field != nil && f.Condition != nil && f.Value != nil
}
