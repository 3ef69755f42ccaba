package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	play, _, err := cmd.Find([]string{"play"})
	require.NoError(t, err)
	assert.Equal(t, "play", play.Name())
	assert.Equal(t, "3", play.Flags().Lookup("size").DefValue)
	assert.NotNil(t, play.Flags().Lookup("bot"))

	stats, _, err := cmd.Find([]string{"stats"})
	require.NoError(t, err)
	assert.Equal(t, "stats", stats.Name())

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestInitLogger(t *testing.T) {
	ctx := context.Background()

	logger := initLogger(&config.Config{LogLevel: "debug"})
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))

	logger = initLogger(&config.Config{LogLevel: "warn"})
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))

	logger = initLogger(&config.Config{})
	assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
}
