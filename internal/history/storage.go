package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage persists the full history log. Every mutating store operation is
// a read-modify-write over the whole log; the backend only needs to load
// and replace it atomically enough for a single-operator deployment.
type Storage interface {
	Load() ([]Record, error)
	Save([]Record) error
}

// FileStorage keeps the log as one JSON document, the storefront's original
// persistence model. Created empty on first use.
type FileStorage struct {
	path string
}

// NewFileStorage creates a JSON file backend at the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the full log. A missing file is an empty log, not an error.
func (fs *FileStorage) Load() ([]Record, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return records, nil
}

// Save writes the full log back, replacing the previous document.
func (fs *FileStorage) Save(records []Record) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("failed to create history dir: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
