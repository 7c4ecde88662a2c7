package componentdb

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists a component database in SQLite.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`
        PRAGMA foreign_keys = ON;
        PRAGMA journal_mode = WAL;
    `); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set PRAGMA: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}
	return nil
}

// Save replaces the stored components with those of db.
func (s *Store) Save(db *Database) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM components`); err != nil {
			return fmt.Errorf("failed to clear components: %w", err)
		}
		for _, component := range db.Components {
			if err := insertComponent(tx, component); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertComponent(tx *sql.Tx, component Component) error {
	res, err := tx.Exec(`INSERT INTO components DEFAULT VALUES`)
	if err != nil {
		return fmt.Errorf("failed to insert component: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get component id: %w", err)
	}

	for i, name := range component.FileNames {
		if _, err := tx.Exec(`INSERT INTO component_files (component_id, position, file_name) VALUES (?, ?, ?)`, id, i, name); err != nil {
			return fmt.Errorf("failed to insert file %s: %w", name, err)
		}
	}
	for i, name := range component.References {
		if _, err := tx.Exec(`INSERT INTO component_references (component_id, position, file_name) VALUES (?, ?, ?)`, id, i, name); err != nil {
			return fmt.Errorf("failed to insert reference %s: %w", name, err)
		}
	}
	for i, name := range component.Environments {
		if _, err := tx.Exec(`INSERT INTO environments (component_id, position, name) VALUES (?, ?, ?)`, id, i, name); err != nil {
			return fmt.Errorf("failed to insert environment %s: %w", name, err)
		}
	}
	for _, command := range component.Commands {
		res, err := tx.Exec(`INSERT INTO commands (component_id, name, image) VALUES (?, ?, ?)`, id, command.Name, command.Image)
		if err != nil {
			return fmt.Errorf("failed to insert command %s: %w", command.Name, err)
		}
		commandID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get command id: %w", err)
		}
		for index, param := range command.Parameters {
			for pos, arg := range param {
				if _, err := tx.Exec(`
                    INSERT INTO arguments (command_id, parameter_index, position, name, image)
                    VALUES (?, ?, ?, ?, ?)
                `, commandID, index, pos, arg.Name, arg.Image); err != nil {
					return fmt.Errorf("failed to insert argument %s: %w", arg.Name, err)
				}
			}
		}
	}
	return nil
}

// Load reads every stored component in insertion order.
func (s *Store) Load() (*Database, error) {
	db := &Database{}
	err := s.withTx(func(tx *sql.Tx) error {
		ids, err := queryInts(tx, `SELECT id FROM components ORDER BY id`)
		if err != nil {
			return err
		}
		for _, id := range ids {
			component, err := loadComponent(tx, id)
			if err != nil {
				return err
			}
			db.Components = append(db.Components, *component)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Component loads the component shipping fileName.
func (s *Store) Component(fileName string) (*Component, error) {
	var component *Component
	err := s.withTx(func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRow(`SELECT component_id FROM component_files WHERE file_name = ? ORDER BY component_id LIMIT 1`, fileName).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query component %s: %w", fileName, err)
		}
		component, err = loadComponent(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return component, nil
}

func loadComponent(tx *sql.Tx, id int64) (*Component, error) {
	var component Component
	var err error
	if component.FileNames, err = queryStrings(tx, `SELECT file_name FROM component_files WHERE component_id = ? ORDER BY position`, id); err != nil {
		return nil, err
	}
	if component.References, err = queryStrings(tx, `SELECT file_name FROM component_references WHERE component_id = ? ORDER BY position`, id); err != nil {
		return nil, err
	}
	if component.Environments, err = queryStrings(tx, `SELECT name FROM environments WHERE component_id = ? ORDER BY position`, id); err != nil {
		return nil, err
	}

	rows, err := tx.Query(`SELECT id, name, image FROM commands WHERE component_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query commands: %w", err)
	}
	var ids []int64
	for rows.Next() {
		var commandID int64
		var command Command
		if err := rows.Scan(&commandID, &command.Name, &command.Image); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan command: %w", err)
		}
		ids = append(ids, commandID)
		component.Commands = append(component.Commands, command)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, commandID := range ids {
		params, err := loadParameters(tx, commandID)
		if err != nil {
			return nil, err
		}
		component.Commands[i].Parameters = params
	}
	return &component, nil
}

func loadParameters(tx *sql.Tx, commandID int64) ([]Parameter, error) {
	rows, err := tx.Query(`
        SELECT parameter_index, name, image FROM arguments
        WHERE command_id = ?
        ORDER BY parameter_index, position
    `, commandID)
	if err != nil {
		return nil, fmt.Errorf("failed to query arguments: %w", err)
	}
	defer rows.Close()

	var params []Parameter
	for rows.Next() {
		var index int
		var arg Argument
		if err := rows.Scan(&index, &arg.Name, &arg.Image); err != nil {
			return nil, fmt.Errorf("failed to scan argument: %w", err)
		}
		for len(params) <= index {
			params = append(params, nil)
		}
		params[index] = append(params[index], arg)
	}
	return params, rows.Err()
}

func queryInts(tx *sql.Tx, query string, args ...any) ([]int64, error) {
	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var values []int64
	for rows.Next() {
		var v int64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func queryStrings(tx *sql.Tx, query string, args ...any) ([]string, error) {
	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
