package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"
)

// ------------------------------
// Group methods
// ------------------------------

// ReplaceGroups replaces the stored export with groups, in one transaction.
// Positions are assigned from slice order, so a later ListGroups returns the
// groups and their bookmarks in the order given here.
//
// Emits a GroupStoredEvent per group and an ImportCompletedEvent once the
// transaction is committed.
func (db *DB) ReplaceGroups(groups []Group) error {
	importedAt := time.Now().Format(time.RFC3339)

	tx, err := db.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM bookmarks"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear bookmarks: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM bookmark_groups"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear groups: %w", err)
	}

	stored := make([]Group, 0, len(groups))
	var total int
	for i, g := range groups {
		g.Position = i
		g.ImportedAt = importedAt
		g.Bookmarks = append([]Bookmark(nil), g.Bookmarks...)
		if err := insertGroup(tx, &g); err != nil {
			tx.Rollback()
			return err
		}
		stored = append(stored, g)
		total += len(g.Bookmarks)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, g := range stored {
		db.emit(GroupStoredEvent{Group: g})
	}
	db.emit(ImportCompletedEvent{Groups: len(stored), Bookmarks: total})

	return nil
}

func insertGroup(tx *sql.Tx, g *Group) error {
	result, err := tx.Exec(
		"INSERT INTO bookmark_groups (position, title, date_raw, created_at, imported_at) VALUES (?, ?, ?, ?, ?)",
		g.Position,
		g.Title,
		g.DateRaw,
		g.CreatedAt,
		g.ImportedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add group: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	g.ID = id

	for i := range g.Bookmarks {
		b := &g.Bookmarks[i]
		b.GroupID = id
		b.Position = i
		result, err := tx.Exec(
			"INSERT INTO bookmarks (group_id, position, title, url, date_raw, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			b.GroupID,
			b.Position,
			b.Title,
			b.URL,
			b.DateRaw,
			b.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to add bookmark: %w", err)
		}
		if b.ID, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get last insert ID: %w", err)
		}
	}
	return nil
}

// GetGroup returns a stored group with its bookmarks.
func (db *DB) GetGroup(id int64) (Group, error) {
	var g Group
	err := db.db.QueryRow(
		"SELECT id, position, title, date_raw, created_at, imported_at FROM bookmark_groups WHERE id = ?", id).
		Scan(&g.ID, &g.Position, &g.Title, &g.DateRaw, &g.CreatedAt, &g.ImportedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Group{}, fmt.Errorf("group not found: %d", id)
		}
		return Group{}, fmt.Errorf("failed to get group: %w", err)
	}

	g.Bookmarks, err = db.ListBookmarks(id)
	if err != nil {
		return Group{}, err
	}
	return g, nil
}

// ListGroups returns the stored groups in export order, without bookmarks.
func (db *DB) ListGroups() ([]Group, error) {
	rows, err := db.db.Query(`
		SELECT id, position, title, date_raw, created_at, imported_at
		FROM bookmark_groups
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var out []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Position, &g.Title, &g.DateRaw, &g.CreatedAt, &g.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return out, nil
}

// ListBookmarks returns the bookmarks of a group in export order.
func (db *DB) ListBookmarks(groupID int64) ([]Bookmark, error) {
	rows, err := db.db.Query(`
		SELECT id, group_id, position, title, url, date_raw, created_at
		FROM bookmarks
		WHERE group_id = ?
		ORDER BY position ASC
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	out := []Bookmark{}
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.GroupID, &b.Position, &b.Title, &b.URL, &b.DateRaw, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return out, nil
}

// CountBookmarks returns the number of stored bookmarks across all groups.
func (db *DB) CountBookmarks() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM bookmarks").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	return n, nil
}
