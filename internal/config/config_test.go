package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5050, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "SettleCaseByCase.csv", cfg.Paths.SettlementFile)
	assert.Equal(t, "json", cfg.History.Backend)
	assert.Equal(t, 1000, cfg.History.MaxRecords)
}

func TestLoadFrom_FileOverlay(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: 9090\nhistory:\n  backend: sqlite\n"
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := LoadFrom(configFile)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.History.Backend)
	// untouched fields keep their defaults
	assert.Equal(t, 1000, cfg.History.MaxRecords)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("server:\n  port: 9090\n"), 0644))
	t.Setenv("STORELENS_SERVER_PORT", "7070")

	cfg, err := LoadFrom(configFile)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadFrom_ValidationFailure(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("history:\n  backend: mongodb\n"), 0644))

	_, err := LoadFrom(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestNewPaths(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	cfg := Default()
	cfg.Paths.DataDir = dataDir

	paths, err := NewPaths(cfg.Paths, cfg.History)
	require.NoError(t, err)

	assert.DirExists(t, dataDir)
	assert.Equal(t, filepath.Join(dataDir, "SettleCaseByCase.csv"), paths.SettlementFile)
	assert.Equal(t, filepath.Join(dataDir, "history.json"), paths.HistoryFile)
	assert.Equal(t, filepath.Join(dataDir, "history.db"), paths.SQLiteFile)
}
