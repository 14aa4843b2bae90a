package db

// Group is a stored top-level bookmark folder.
type Group struct {
	ID       int64
	Position int
	Title    string
	// DateRaw is the add_date attribute as exported, nil when absent.
	DateRaw *string
	// CreatedAt is the derived date as an ISO-8601 string, nil when absent.
	CreatedAt *string
	// ImportedAt is stored as RFC3339 text.
	ImportedAt string
	Bookmarks  []Bookmark
}

// Bookmark is a stored link entry.
type Bookmark struct {
	ID        int64
	GroupID   int64
	Position  int
	Title     string
	URL       *string
	DateRaw   *string
	CreatedAt *string
}
