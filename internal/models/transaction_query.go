package models

import "time"

// TransactionQuery describes a store-level transaction lookup for one merchant.
// Nil bounds and an empty status leave that dimension unfiltered.
type TransactionQuery struct {
	MerchantID string
	StartDate  *Date
	EndDate    *Date
	Status     string
	Page       *PageRequest
}

// WithoutStatus returns a copy of the query with the status filter and paging removed
func (q TransactionQuery) WithoutStatus() TransactionQuery {
	q.Status = ""
	q.Page = nil
	return q
}

// DateRange is the instant range echoed back with merchant transaction listings
type DateRange struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// NewDateRange resolves optional date bounds into an instant range.
// Only a start runs to the end of today; only an end runs from 1970-01-01.
func NewDateRange(start, end *Date) DateRange {
	switch {
	case start != nil && end != nil:
		s, e := start.StartOfDay(), end.EndOfDay()
		return DateRange{Start: &s, End: &e}
	case start != nil:
		s, e := start.StartOfDay(), Today().EndOfDay()
		return DateRange{Start: &s, End: &e}
	case end != nil:
		s, e := NewDate(1970, time.January, 1).StartOfDay(), end.EndOfDay()
		return DateRange{Start: &s, End: &e}
	default:
		return DateRange{}
	}
}
