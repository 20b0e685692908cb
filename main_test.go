package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/checkers-cli/internal/config"
)

func TestInitLogger(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
	}

	for name, level := range cases {
		logger := initLogger(&config.Config{LogLevel: name})

		assert.True(t, logger.Enabled(context.Background(), level), name)
		assert.False(t, logger.Enabled(context.Background(), level-1), name)
	}
}
