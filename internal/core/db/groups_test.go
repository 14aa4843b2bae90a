package db

import (
	"strings"
	"testing"
)

func sampleGroups() []Group {
	return []Group{
		{
			Title:     "Work",
			DateRaw:   strPtr("1609459200000000"),
			CreatedAt: strPtr("2021-01-01T00:00:00.000Z"),
			Bookmarks: []Bookmark{
				{Title: "Example", URL: strPtr("https://example.com"), DateRaw: strPtr("1609459200000000"), CreatedAt: strPtr("2021-01-01T00:00:00.000Z")},
				{Title: "No link"},
			},
		},
		{
			Title:     "Personal",
			Bookmarks: []Bookmark{},
		},
	}
}

// TestReplaceGroups tests storing an export.
func TestReplaceGroups(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	t.Run("stores groups in order", func(t *testing.T) {
		if err := db.ReplaceGroups(sampleGroups()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		groups, err := db.ListGroups()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].Title != "Work" || groups[1].Title != "Personal" {
			t.Errorf("unexpected group order: %q, %q", groups[0].Title, groups[1].Title)
		}
		if groups[0].DateRaw == nil || *groups[0].DateRaw != "1609459200000000" {
			t.Errorf("expected DateRaw to round-trip, got %v", groups[0].DateRaw)
		}
		if groups[1].DateRaw != nil || groups[1].CreatedAt != nil {
			t.Error("expected absent dates to stay NULL")
		}
		if groups[0].ImportedAt == "" {
			t.Error("expected ImportedAt to be set")
		}
	})

	t.Run("stores bookmarks in order", func(t *testing.T) {
		groups, _ := db.ListGroups()
		bookmarks, err := db.ListBookmarks(groups[0].ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(bookmarks) != 2 {
			t.Fatalf("expected 2 bookmarks, got %d", len(bookmarks))
		}
		if bookmarks[0].URL == nil || *bookmarks[0].URL != "https://example.com" {
			t.Errorf("expected URL 'https://example.com', got %v", bookmarks[0].URL)
		}
		if bookmarks[1].URL != nil {
			t.Errorf("expected missing URL to be NULL, got %q", *bookmarks[1].URL)
		}
		if bookmarks[1].Position != 1 {
			t.Errorf("expected position 1, got %d", bookmarks[1].Position)
		}
	})

	t.Run("replaces previous export", func(t *testing.T) {
		if err := db.ReplaceGroups(sampleGroups()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		groups, _ := db.ListGroups()
		if len(groups) != 2 {
			t.Errorf("expected 2 groups after second import, got %d", len(groups))
		}
		n, err := db.CountBookmarks()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 bookmarks after second import, got %d", n)
		}
	})

	t.Run("empty export clears the store", func(t *testing.T) {
		if err := db.ReplaceGroups(nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		groups, _ := db.ListGroups()
		if len(groups) != 0 {
			t.Errorf("expected no groups, got %d", len(groups))
		}
	})

	t.Run("does not modify the input", func(t *testing.T) {
		in := sampleGroups()
		if err := db.ReplaceGroups(in); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if in[0].ID != 0 || in[0].Bookmarks[0].GroupID != 0 {
			t.Error("expected input groups to be left untouched")
		}
	})
}

// TestGetGroup tests retrieving a single group.
func TestGetGroup(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	if err := db.ReplaceGroups(sampleGroups()); err != nil {
		t.Fatalf("failed to store groups: %v", err)
	}

	t.Run("retrieves group with bookmarks", func(t *testing.T) {
		groups, _ := db.ListGroups()
		g, err := db.GetGroup(groups[0].ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if g.Title != "Work" {
			t.Errorf("expected Title 'Work', got %q", g.Title)
		}
		if len(g.Bookmarks) != 2 {
			t.Errorf("expected 2 bookmarks, got %d", len(g.Bookmarks))
		}
	})

	t.Run("returns error for non-existent group", func(t *testing.T) {
		_, err := db.GetGroup(99999)
		if err == nil {
			t.Fatal("expected error for non-existent group, got nil")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("expected 'not found' error, got %v", err)
		}
	})
}

// TestListBookmarks tests listing bookmarks of an unknown group.
func TestListBookmarks(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	bookmarks, err := db.ListBookmarks(42)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bookmarks == nil || len(bookmarks) != 0 {
		t.Errorf("expected empty non-nil list, got %v", bookmarks)
	}
}
