package repository

// NewsListFilter criteria for listing news items
type NewsListFilter struct {
	Page          int
	PageSize      int
	Category      string
	Search        string
	OnlyPublished bool
	OnlyFeatured  bool
	OrderBy       string
}

// EventListFilter criteria for listing events
type EventListFilter struct {
	Page          int
	PageSize      int
	Category      string
	Search        string
	OnlyPublished bool
	OnlyFeatured  bool
	OrderBy       string
}

// MuseumListFilter criteria for listing museums
type MuseumListFilter struct {
	Page          int
	PageSize      int
	Search        string
	OnlyPublished bool
	Accessible    *bool
	OrderBy       string
}

// PageListFilter criteria for listing municipality pages
type PageListFilter struct {
	Page          int
	PageSize      int
	CategoryID    *uint
	Search        string
	OnlyPublished bool
	OrderBy       string
}
