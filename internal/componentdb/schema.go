package componentdb

import (
	"database/sql"
	"fmt"
)

const schemaVersion = 1

func initSchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if version == schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := createTables(tx); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}

	return tx.Commit()
}

func createTables(tx *sql.Tx) error {
	queries := []string{
		// One row per component; the id keeps the insertion order
		`CREATE TABLE IF NOT EXISTS components (
            id INTEGER PRIMARY KEY AUTOINCREMENT
        )`,

		// Files shipped by a component, e.g. amsmath.sty
		`CREATE TABLE IF NOT EXISTS component_files (
            component_id INTEGER NOT NULL,
            position INTEGER NOT NULL,
            file_name TEXT NOT NULL,
            FOREIGN KEY (component_id) REFERENCES components(id) ON DELETE CASCADE,
            PRIMARY KEY (component_id, position)
        )`,

		`CREATE INDEX IF NOT EXISTS idx_component_files_name
            ON component_files(file_name)`,

		// Files a component loads
		`CREATE TABLE IF NOT EXISTS component_references (
            component_id INTEGER NOT NULL,
            position INTEGER NOT NULL,
            file_name TEXT NOT NULL,
            FOREIGN KEY (component_id) REFERENCES components(id) ON DELETE CASCADE,
            PRIMARY KEY (component_id, position)
        )`,

		`CREATE TABLE IF NOT EXISTS commands (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            component_id INTEGER NOT NULL,
            name TEXT NOT NULL,
            image TEXT NOT NULL DEFAULT '',
            FOREIGN KEY (component_id) REFERENCES components(id) ON DELETE CASCADE
        )`,

		// Accepted values of the parameter at parameter_index of a command
		`CREATE TABLE IF NOT EXISTS arguments (
            command_id INTEGER NOT NULL,
            parameter_index INTEGER NOT NULL,
            position INTEGER NOT NULL,
            name TEXT NOT NULL,
            image TEXT NOT NULL DEFAULT '',
            FOREIGN KEY (command_id) REFERENCES commands(id) ON DELETE CASCADE,
            PRIMARY KEY (command_id, parameter_index, position)
        )`,

		`CREATE TABLE IF NOT EXISTS environments (
            component_id INTEGER NOT NULL,
            position INTEGER NOT NULL,
            name TEXT NOT NULL,
            FOREIGN KEY (component_id) REFERENCES components(id) ON DELETE CASCADE,
            PRIMARY KEY (component_id, position)
        )`,
	}

	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query %q: %w", query, err)
		}
	}

	return nil
}
