package pagination

import "math"

// PageRef points at a page of a page-number paginated listing.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset returns the number of rows to skip for the given 1-based page.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// PageCount returns how many pages of size limit are needed for total rows.
// An empty result still has one (empty) page.
func PageCount(total, limit int) int {
	if limit < 1 || total <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// Next returns the following page, or nil when page is the last one.
func Next(page, limit, total int) *PageRef {
	if page >= PageCount(total, limit) {
		return nil
	}
	return &PageRef{Page: page + 1, Limit: limit}
}

// Previous returns the preceding page, or nil on the first page.
func Previous(page, limit int) *PageRef {
	if Offset(page, limit) <= 0 {
		return nil
	}
	return &PageRef{Page: page - 1, Limit: limit}
}
