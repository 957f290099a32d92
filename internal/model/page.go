package model

import "math"

// PageOffset returns the row offset of page. ok is false when page or pageSize
// is below 1 or the offset does not fit an int; such a page holds no rows.
func PageOffset(page, pageSize int) (offset int, ok bool) {
	if page < 1 || pageSize < 1 {
		return 0, false
	}
	if page-1 > math.MaxInt/pageSize {
		return 0, false
	}
	return (page - 1) * pageSize, true
}

// Page is one window of an ordered result set
type Page[T any] struct {
	Items      []T
	TotalCount int
	Page       int
	PageSize   int
}

// NewPage wraps items with the counts needed to derive pagination
func NewPage[T any](items []T, totalCount, page, pageSize int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}
}

// TotalPages uses ceiling division. A non-positive page size yields zero pages.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 || p.TotalCount <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// HasNext reports whether a later page exists
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}

// HasPrev reports whether an earlier page exists
func (p Page[T]) HasPrev() bool {
	return p.Page > 1
}

// Pagination returns the page metadata in API form
func (p Page[T]) Pagination() Pagination {
	return Pagination{
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		TotalItems:  p.TotalCount,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNext(),
		HasPrev:     p.HasPrev(),
	}
}

// Pagination is the pagination block of a search response
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}
