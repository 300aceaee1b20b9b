package services

import (
	"cmp"
	"strconv"
	"strings"

	"payment-api/internal/models"

	"github.com/shopspring/decimal"
)

// fieldMatcher evaluates one condition against a transaction field.
// It receives the condition and raw filter value and owns parsing of the value.
type fieldMatcher struct {
	kind  string
	match func(txn *models.Transaction, condition, value string) bool
}

const (
	fieldKindString  = "string"
	fieldKindDecimal = "decimal"
	fieldKindInteger = "integer"
	fieldKindDate    = "date"
)

// filterFields maps filterable field names to their typed matcher
var filterFields = map[string]fieldMatcher{
	models.FilterFieldTxnDate:      dateField(func(t *models.Transaction) *models.Date { return presentDate(t.TxnDate) }),
	models.FilterFieldDate:         dateField(func(t *models.Transaction) *models.Date { return presentDate(t.TxnDate) }),
	models.FilterFieldStatus:       stringField(func(t *models.Transaction) *string { return presentString(t.Status) }),
	models.FilterFieldAmount:       decimalField(func(t *models.Transaction) *decimal.Decimal { return &t.Amount }),
	models.FilterFieldCurrency:     stringField(func(t *models.Transaction) *string { return presentString(t.Currency) }),
	models.FilterFieldCardType:     stringField(func(t *models.Transaction) *string { return t.CardType }),
	models.FilterFieldCardLast4:    stringField(func(t *models.Transaction) *string { return t.CardLast4 }),
	models.FilterFieldAuthCode:     stringField(func(t *models.Transaction) *string { return t.AuthCode }),
	models.FilterFieldResponseCode: stringField(func(t *models.Transaction) *string { return t.ResponseCode }),
	models.FilterFieldMerchantID:   stringField(func(t *models.Transaction) *string { return presentString(t.MerchantID) }),
	models.FilterFieldGpAcquirerID: integerField(func(t *models.Transaction) *int64 { return t.GpAcquirerID }),
	models.FilterFieldGpIssuerID:   integerField(func(t *models.Transaction) *int64 { return t.GpIssuerID }),
}

var knownConditions = map[string]bool{
	models.ConditionEquals:             true,
	models.ConditionNotEquals:          true,
	models.ConditionContains:           true,
	models.ConditionGreaterThan:        true,
	models.ConditionLessThan:           true,
	models.ConditionGreaterThanOrEqual: true,
	models.ConditionLessThanOrEqual:    true,
}

// MatchesCriterion reports whether txn satisfies a single filter criterion.
//
// Incomplete criteria, unknown fields and unknown conditions match everything.
// An absent transaction value never matches. Unparseable numeric or date filter
// values never match.
func MatchesCriterion(txn models.Transaction, filter models.SearchFilter) bool {
	if !filter.IsComplete() {
		return true
	}

	matcher, ok := filterFields[*filter.Field]
	if !ok {
		return true
	}

	return matcher.match(&txn, *filter.Condition, *filter.Value)
}

// ApplyFilters keeps the transactions matching every criterion, preserving input order.
// Nil or empty criteria return the input unchanged.
func ApplyFilters(txns []models.Transaction, criteria []models.SearchFilter) []models.Transaction {
	if len(criteria) == 0 {
		return txns
	}

	filtered := make([]models.Transaction, 0, len(txns))
	for _, txn := range txns {
		if matchesAll(txn, criteria) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

func matchesAll(txn models.Transaction, criteria []models.SearchFilter) bool {
	for _, criterion := range criteria {
		if !MatchesCriterion(txn, criterion) {
			return false
		}
	}
	return true
}

// Reasons a complete criterion passes every transaction through without filtering
const (
	PassthroughUnknownField         = "unknown_field"
	PassthroughUnknownCondition     = "unknown_condition"
	PassthroughUnsupportedCondition = "unsupported_condition"
)

// CriterionPassthrough describes a criterion that will not narrow the result
type CriterionPassthrough struct {
	Field     string
	Condition string
	Reason    string
}

// PassthroughCriteria lists complete criteria that match every transaction
// because the field or condition is not recognized for filtering.
func PassthroughCriteria(criteria []models.SearchFilter) []CriterionPassthrough {
	var passthroughs []CriterionPassthrough

	for _, criterion := range criteria {
		if !criterion.IsComplete() {
			continue
		}

		field, condition := *criterion.Field, *criterion.Condition
		matcher, known := filterFields[field]

		var reason string
		switch {
		case !known:
			reason = PassthroughUnknownField
		case !knownConditions[condition]:
			reason = PassthroughUnknownCondition
		case !conditionSupported(matcher.kind, condition):
			reason = PassthroughUnsupportedCondition
		default:
			continue
		}

		passthroughs = append(passthroughs, CriterionPassthrough{Field: field, Condition: condition, Reason: reason})
	}

	return passthroughs
}

func conditionSupported(kind, condition string) bool {
	switch condition {
	case models.ConditionEquals, models.ConditionNotEquals:
		return true
	case models.ConditionContains:
		return kind == fieldKindString
	default:
		return kind != fieldKindString
	}
}

func presentString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func presentDate(value models.Date) *models.Date {
	if value.IsZero() {
		return nil
	}
	return &value
}

func stringField(get func(*models.Transaction) *string) fieldMatcher {
	return fieldMatcher{
		kind: fieldKindString,
		match: func(txn *models.Transaction, condition, value string) bool {
			actual := get(txn)
			if actual == nil {
				return false
			}

			switch condition {
			case models.ConditionEquals:
				return strings.EqualFold(*actual, value)
			case models.ConditionNotEquals:
				return !strings.EqualFold(*actual, value)
			case models.ConditionContains:
				return strings.Contains(strings.ToLower(*actual), strings.ToLower(value))
			default:
				return true
			}
		},
	}
}

func decimalField(get func(*models.Transaction) *decimal.Decimal) fieldMatcher {
	return fieldMatcher{
		kind: fieldKindDecimal,
		match: func(txn *models.Transaction, condition, value string) bool {
			actual := get(txn)
			if actual == nil {
				return false
			}

			expected, err := decimal.NewFromString(value)
			if err != nil {
				return false
			}

			return compareOrdered(actual.Cmp(expected), condition)
		},
	}
}

func integerField(get func(*models.Transaction) *int64) fieldMatcher {
	return fieldMatcher{
		kind: fieldKindInteger,
		match: func(txn *models.Transaction, condition, value string) bool {
			actual := get(txn)
			if actual == nil {
				return false
			}

			expected, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return false
			}

			return compareOrdered(cmp.Compare(*actual, expected), condition)
		},
	}
}

func dateField(get func(*models.Transaction) *models.Date) fieldMatcher {
	return fieldMatcher{
		kind: fieldKindDate,
		match: func(txn *models.Transaction, condition, value string) bool {
			actual := get(txn)
			if actual == nil {
				return false
			}

			expected, err := models.ParseDate(value)
			if err != nil {
				return false
			}

			switch condition {
			case models.ConditionEquals:
				return actual.Equal(expected)
			case models.ConditionNotEquals:
				return !actual.Equal(expected)
			case models.ConditionGreaterThan:
				return actual.After(expected)
			case models.ConditionLessThan:
				return actual.Before(expected)
			case models.ConditionGreaterThanOrEqual:
				return actual.After(expected) || actual.Equal(expected)
			case models.ConditionLessThanOrEqual:
				return actual.Before(expected) || actual.Equal(expected)
			default:
				return true
			}
		},
	}
}

// compareOrdered applies a condition to a three-way comparison result
func compareOrdered(result int, condition string) bool {
	switch condition {
	case models.ConditionEquals:
		return result == 0
	case models.ConditionNotEquals:
		return result != 0
	case models.ConditionGreaterThan:
		return result > 0
	case models.ConditionLessThan:
		return result < 0
	case models.ConditionGreaterThanOrEqual:
		return result >= 0
	case models.ConditionLessThanOrEqual:
		return result <= 0
	default:
		return true
	}
}
