package db

import (
	"database/sql"
	"embed"
	"fmt"
	"log"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB stores converted bookmark exports in SQLite.
type DB struct {
	db             *sql.DB
	eventListeners map[EventKind][]EventListener
}

func NewSQLiteDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)
	return &DB{
		db:             db,
		eventListeners: make(map[EventKind][]EventListener),
	}, nil
}

// Migrate applies the embedded migrations that have not been applied yet, in
// file name order.
func (db *DB) Migrate() error {
	_, err := db.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema migrations table: %w", err)
	}

	migrations, err := migrationFiles()
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		version := strings.TrimSuffix(migration, ".sql")

		var exists bool
		if err := db.db.QueryRow(`
		    SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = ?)
		`, version).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check if migration has been applied: %w", err)
		}
		if exists {
			continue
		}

		if err := db.applyMigration(migration, version); err != nil {
			return err
		}
		log.Printf("Migration %s applied successfully", version)
	}

	return nil
}

func migrationFiles() ([]string, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		if strings.TrimSuffix(entry.Name(), ".sql") == "" {
			log.Println("Invalid migration file name:", entry.Name())
			continue
		}
		migrations = append(migrations, entry.Name())
	}
	sort.Strings(migrations)
	return migrations, nil
}

func (db *DB) applyMigration(file, version string) error {
	content, err := migrationsFS.ReadFile("migrations/" + file)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := db.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(string(content)); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to apply migration %s: %w", version, err)
	}

	if _, err := tx.Exec(`
	    INSERT INTO schema_migrations (version) VALUES (?)
	`, version); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to mark migration as applied: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.db.Close()
}
