package core

import (
	"log"

	"github.com/seckatie/gbookmarks2json/internal/core/db"
)

// PersistGroups replaces the export stored in database with groups.
func PersistGroups(database *db.DB, groups []Group) error {
	log.Printf("Storing %d group(s)", len(groups))
	return database.ReplaceGroups(ToRecords(groups))
}

// ToRecords converts extracted groups into store records. Derived dates are
// stored in their serialized form.
func ToRecords(groups []Group) []db.Group {
	out := make([]db.Group, 0, len(groups))
	for _, g := range groups {
		rec := db.Group{
			Title:     g.GroupTitle,
			DateRaw:   g.DateRaw,
			CreatedAt: dateString(g.Date),
			Bookmarks: make([]db.Bookmark, 0, len(g.Bookmarks)),
		}
		for _, b := range g.Bookmarks {
			rec.Bookmarks = append(rec.Bookmarks, db.Bookmark{
				Title:     b.Title,
				URL:       b.Href,
				DateRaw:   b.DateRaw,
				CreatedAt: dateString(b.Date),
			})
		}
		out = append(out, rec)
	}
	return out
}

// dateString returns nil for absent or invalid dates.
func dateString(d *Date) *string {
	if d == nil || !d.Valid() {
		return nil
	}
	s := d.String()
	return &s
}
