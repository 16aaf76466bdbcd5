package kernel

// PaginationOptions carries page selection for list queries
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps the options to sane bounds
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	return p
}

// Offset returns the SQL offset for the normalized options
func (p PaginationOptions) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// PageInfo describes the page of a paginated result
type PageInfo struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
}

// Paginated wraps a page of items with page metadata
type Paginated[T any] struct {
	Items []T      `json:"items"`
	Page  PageInfo `json:"page"`
}

// NewPaginated builds a paginated result
func NewPaginated[T any](items []T, page, pageSize, total int) Paginated[T] {
	return Paginated[T]{
		Items: items,
		Page: PageInfo{
			Number: page,
			Size:   pageSize,
			Total:  total,
		},
	}
}
