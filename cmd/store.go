/*
Copyright © 2025 Katie Mulliken <katie@mulliken.net>
*/

// The store command loads a bookmarks export into a SQLite database instead of
// writing a JSON file.
//
// Every run replaces the previously stored export, so storing the same file
// twice leaves a single copy of each group and bookmark.
//
// Example usage:
//
//	gbookmarks2json store --input data/GoogleBookmarks.html --db bookmarks.db
package cmd

import (
	"fmt"
	"log"

	"github.com/seckatie/gbookmarks2json/internal/core"
	"github.com/seckatie/gbookmarks2json/internal/core/db"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeCmd represents the store command
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Store a bookmarks export in a SQLite database",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStore(); err != nil {
			log.Fatalf("Store failed: %v", err)
		}
	},
}

// runStore is the main function for the store command.
func runStore() error {
	groups, nested, err := core.ReadGroups(viper.GetString("input"), extractOptions())
	if err != nil {
		return err
	}
	warnNested(nested)

	database, err := initDB(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	database.RegisterEventListener(db.OnGroupStoredEvent, func(event db.Event) error {
		ev := event.(db.GroupStoredEvent)
		log.Printf("Stored group %d - %q with %d bookmark(s)", ev.Group.ID, ev.Group.Title, len(ev.Group.Bookmarks))
		return nil
	})
	database.RegisterEventListener(db.OnImportCompletedEvent, func(event db.Event) error {
		ev := event.(db.ImportCompletedEvent)
		log.Printf("Stored %d group(s) with %d bookmark(s) in %s", ev.Groups, ev.Bookmarks, viper.GetString("db"))
		return nil
	})

	return core.PersistGroups(database, groups)
}

func initDB(path string) (*db.DB, error) {
	database, err := db.NewSQLiteDB(path)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database %s: %w", path, err)
	}

	log.Println("Database migrated successfully")

	return database, nil
}

func init() {
	rootCmd.AddCommand(storeCmd)

	storeCmd.Flags().StringP("db", "d", "bookmarks.db", "Path to the SQLite database file")
	bindFlags(storeCmd.Flags(), "db")
}
