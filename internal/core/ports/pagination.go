package ports

// PageRequest carries pagination parameters for list operations.
type PageRequest struct {
	Page  int
	Limit int
}

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// Normalize clamps the request to sane bounds: page >= 1, 1 <= limit <= 100.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Offset returns the number of items to skip for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo describes the pagination envelope returned with list results.
type PageInfo struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// NewPageInfo derives the envelope from a normalized request and a total count.
func NewPageInfo(req PageRequest, total int64) PageInfo {
	pages := int(total) / req.Limit
	if int(total)%req.Limit != 0 {
		pages++
	}
	return PageInfo{Total: total, Page: req.Page, Limit: req.Limit, TotalPages: pages}
}
