package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerHonoursLevel(t *testing.T) {
	ctx := context.Background()

	logger := NewLogger(&Config{LogLevel: "info"})
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, logger.Enabled(ctx, slog.LevelInfo))

	logger = NewLogger(&Config{LogLevel: "debug", LogFormat: "json"})
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))

	logger = NewLogger(&Config{LogLevel: "error"})
	assert.False(t, logger.Enabled(ctx, slog.LevelWarn))
	assert.True(t, logger.Enabled(ctx, slog.LevelError))

	// Unknown levels and a nil config default to info.
	logger = NewLogger(&Config{LogLevel: "verbose"})
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	logger = NewLogger(nil)
	assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
}
