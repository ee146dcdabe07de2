package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStorage keeps the log in a SQLite table, replacing it inside one
// transaction per save. It closes the lost-update window of the JSON file
// backend while keeping the Load/Save contract identical for the store.
type SQLiteStorage struct {
	db *sql.DB
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS analysis_records (
	seq       INTEGER PRIMARY KEY AUTOINCREMENT,
	id        TEXT NOT NULL UNIQUE,
	timestamp TEXT NOT NULL,
	module    TEXT NOT NULL,
	inputs    TEXT NOT NULL,
	results   TEXT NOT NULL,
	metadata  TEXT NOT NULL
)`

// NewSQLiteStorage opens (and initializes) a SQLite backend at the given
// path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history database: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

// Close releases the database handle.
func (ss *SQLiteStorage) Close() error {
	return ss.db.Close()
}

// Load reads the full log in append order.
func (ss *SQLiteStorage) Load() ([]Record, error) {
	rows, err := ss.db.Query(
		`SELECT id, timestamp, module, inputs, results, metadata
		 FROM analysis_records ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		var inputs, results, metadata string
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Module, &inputs, &results, &metadata); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		if err := json.Unmarshal([]byte(inputs), &rec.Inputs); err != nil {
			return nil, fmt.Errorf("failed to decode inputs for %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(results), &rec.Results); err != nil {
			return nil, fmt.Errorf("failed to decode results for %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(metadata), &rec.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata for %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Save replaces the full log in one transaction.
func (ss *SQLiteStorage) Save(records []Record) error {
	tx, err := ss.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM analysis_records`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO analysis_records (id, timestamp, module, inputs, results, metadata)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare history insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		inputs, err := json.Marshal(rec.Inputs)
		if err != nil {
			return fmt.Errorf("failed to encode inputs for %s: %w", rec.ID, err)
		}
		results, err := json.Marshal(rec.Results)
		if err != nil {
			return fmt.Errorf("failed to encode results for %s: %w", rec.ID, err)
		}
		metadata, err := json.Marshal(rec.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata for %s: %w", rec.ID, err)
		}
		if _, err := stmt.Exec(rec.ID, rec.Timestamp, rec.Module, string(inputs), string(results), string(metadata)); err != nil {
			return fmt.Errorf("failed to insert history record %s: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}
