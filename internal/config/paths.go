package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves the absolute locations of the data files. All source
// extracts and the history log live under a single data directory, which is
// created on first use.
type Paths struct {
	DataDir        string
	SettlementFile string
	SalesFile      string
	AdSpendFile    string
	TimeslotFile   string
	HistoryFile    string
	SQLiteFile     string
}

// NewPaths resolves the configured path set against the data directory and
// ensures the directory exists.
func NewPaths(cfg PathsConfig, historyCfg HistoryConfig) (*Paths, error) {
	dataDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Paths{
		DataDir:        dataDir,
		SettlementFile: filepath.Join(dataDir, cfg.SettlementFile),
		SalesFile:      filepath.Join(dataDir, cfg.SalesFile),
		AdSpendFile:    filepath.Join(dataDir, cfg.AdSpendFile),
		TimeslotFile:   filepath.Join(dataDir, cfg.TimeslotFile),
		HistoryFile:    filepath.Join(dataDir, cfg.HistoryFile),
		SQLiteFile:     filepath.Join(dataDir, historyCfg.SQLiteFile),
	}, nil
}
