package forum

// SortKey selects the ordering of a paginated listing.
type SortKey string

const (
	SortNewest        SortKey = "newest"
	SortMostLiked     SortKey = "most-liked"
	SortMostCommented SortKey = "most-commented"
)

// ParseSortKey maps a query-string value onto a known sort key, falling
// back to newest for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortMostLiked:
		return SortMostLiked
	case SortMostCommented:
		return SortMostCommented
	default:
		return SortNewest
	}
}

// ListOptions carries normalized pagination and ordering for listings.
type ListOptions struct {
	Page  int64
	Limit int64
	Sort  SortKey
}

// NewListOptions clamps page to >= 1, applies the listing's default limit
// when the caller passed none, and resolves the sort key.
func NewListOptions(page, limit int64, sort string, defaultLimit int64) ListOptions {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return ListOptions{Page: page, Limit: limit, Sort: ParseSortKey(sort)}
}

// Skip is the number of records to pass over before the requested page.
func (o ListOptions) Skip() int64 {
	return (o.Page - 1) * o.Limit
}
