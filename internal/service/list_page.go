package service

// Collection names used for scheduling and cache invalidation.
const (
	CollectionNews       = "news"
	CollectionEvents     = "events"
	CollectionMuseums    = "museums"
	CollectionPages      = "pages"
	CollectionCategories = "categories"
)

// slicePage computes in-memory pagination bounds over an already filtered
// slice. A non-positive page size disables pagination.
func slicePage(total, page, pageSize int) (int, int) {
	if pageSize <= 0 {
		return 0, total
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= total {
		return total, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}
