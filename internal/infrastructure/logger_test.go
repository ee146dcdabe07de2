package infrastructure

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storelens/internal/config"
)

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	logger := NewLogger(config.LoggingConfig{Level: "debug", Format: "text"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))

	logger = NewLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
}

func TestParseLogLevel_UnknownDefaultsToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}
