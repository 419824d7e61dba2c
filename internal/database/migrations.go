package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is one forward-only schema step. Version i+1 is migrations[i].
type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "create todos",
		sql: `
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT 0
		)`,
	},
}

// SchemaVersion is the user_version of a fully migrated database
var SchemaVersion = len(migrations)

// runMigrations applies every migration newer than the database's user_version
func runMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		m := migrations[i]
		err := withTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.sql); err != nil {
				return err
			}
			// PRAGMA does not accept bound parameters
			_, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1))
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", i+1, m.name, err)
		}
	}

	return nil
}
