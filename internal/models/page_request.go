package models

import "strings"

// SortDirection is ASC or DESC
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortOrder is one sort key. Field holds the API-facing name and Column the
// allow-listed database column it maps to.
type SortOrder struct {
	Field     string
	Column    string
	Direction SortDirection
}

// PageRequest describes a zero-indexed page of a result set and its sort keys in priority order
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset returns the index of the first element on the page
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Bounds returns the half-open index range [from, to) of the page within total elements.
// A page past the end yields the empty range (total, total).
func (p PageRequest) Bounds(total int) (from, to int) {
	from = p.Offset()
	if from >= total || from < 0 {
		return total, total
	}
	to = from + p.Size
	if to > total {
		to = total
	}
	return from, to
}

// TotalPages returns how many pages of Size cover total elements
func (p PageRequest) TotalPages(total int64) int {
	if p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

// OrderClause renders the sort keys as an ORDER BY list, ending with tiebreak so
// paging is deterministic. Columns must come from an allow-list.
func (p PageRequest) OrderClause(tiebreak string) string {
	parts := make([]string, 0, len(p.Sort)+1)
	for _, order := range p.Sort {
		if order.Column == "" {
			continue
		}
		parts = append(parts, order.Column+" "+string(order.Direction))
	}
	if tiebreak != "" {
		parts = append(parts, tiebreak+" ASC")
	}
	return strings.Join(parts, ", ")
}

// Pagination is the page metadata returned alongside list responses
type Pagination struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// NewPagination builds page metadata for a request over total elements
func NewPagination(p PageRequest, total int64) Pagination {
	return Pagination{
		Page:          p.Page,
		Size:          p.Size,
		TotalPages:    p.TotalPages(total),
		TotalElements: total,
	}
}

// Paginate returns the page of items selected by p
func Paginate[T any](items []T, p PageRequest) []T {
	from, to := p.Bounds(len(items))
	return items[from:to]
}
