package query

// Page is a skip/take window over the paginated-all result set. The other
// retrieval modes return their full result set in a single call.
type Page struct {
	Number int64
	Size   int64
}

// Skip is the number of records preceding this page.
func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Size
}

// Pagination is the response metadata block.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination computes totalPages = ceil(total/limit).
func NewPagination(page, limit, total int64) Pagination {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
