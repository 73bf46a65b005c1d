package dto

// PaginatedResult wraps one page of projected items plus paging metadata.
// It does not clamp: a PageNumber past TotalPages yields empty Items with the
// flags computed from the requested values.
type PaginatedResult[T any] struct {
	Items           []T   `json:"items"`
	TotalCount      int64 `json:"total_count"`
	PageNumber      int   `json:"page_number"`
	PageSize        int   `json:"page_size"`
	TotalPages      int   `json:"total_pages"`
	HasPreviousPage bool  `json:"has_previous_page"`
	HasNextPage     bool  `json:"has_next_page"`
}

// NewPaginatedResult derives TotalPages and the navigation flags.
// pageSize must be positive.
func NewPaginatedResult[T any](items []T, totalCount int64, pageNumber, pageSize int) PaginatedResult[T] {
	totalPages := int(totalCount / int64(pageSize))
	if totalCount%int64(pageSize) != 0 {
		totalPages++
	}

	if items == nil {
		items = []T{}
	}

	return PaginatedResult[T]{
		Items:           items,
		TotalCount:      totalCount,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasPreviousPage: pageNumber > 1,
		HasNextPage:     pageNumber < totalPages,
	}
}
