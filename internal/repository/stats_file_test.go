package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStatsRepository_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing file reads as zero", func(t *testing.T) {
		// Given: a path that does not exist
		repo := NewFileStatsRepository(filepath.Join(t.TempDir(), "stats.txt"))

		// When: reading the stats
		stats := repo.Read(ctx)

		// Then: both counters are zero
		assert.Equal(t, entity.Stats{}, stats)
	})

	for name, content := range map[string]string{
		"empty":       "",
		"one field":   "7",
		"three field": "1|2|3",
		"not numbers": "x|y",
	} {
		t.Run("Malformed "+name+" reads as zero", func(t *testing.T) {
			// Given: a stats file with broken content
			path := filepath.Join(t.TempDir(), "stats.txt")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			repo := NewFileStatsRepository(path)

			// When: reading the stats
			stats := repo.Read(ctx)

			// Then: both counters are zero
			assert.Equal(t, entity.Stats{}, stats)
		})
	}

	t.Run("Directory instead of file reads as zero", func(t *testing.T) {
		repo := NewFileStatsRepository(t.TempDir())

		assert.Equal(t, entity.Stats{}, repo.Read(ctx))
	})
}

func TestFileStatsRepository_Update(t *testing.T) {
	ctx := context.Background()

	// Given: a fresh store
	path := filepath.Join(t.TempDir(), "stats.txt")
	repo := NewFileStatsRepository(path)

	// When: one match against a human is recorded
	require.NoError(t, repo.Update(ctx, 1, 0))

	// Then: the counters are (1, 0)
	assert.Equal(t, entity.Stats{TotalGames: 1, BotGames: 0}, repo.Read(ctx))

	// When: one match against the bot is recorded
	require.NoError(t, repo.Update(ctx, 1, 1))

	// Then: the counters are (2, 1) and the file holds a single record
	assert.Equal(t, entity.Stats{TotalGames: 2, BotGames: 1}, repo.Read(ctx))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2|1", string(content))
}

func TestFileStatsRepository_UpdateOverMalformed(t *testing.T) {
	ctx := context.Background()

	// Given: a corrupt stats file
	path := filepath.Join(t.TempDir(), "stats.txt")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))
	repo := NewFileStatsRepository(path)

	// When: a match is recorded
	require.NoError(t, repo.Update(ctx, 1, 1))

	// Then: the record starts over from zero
	assert.Equal(t, entity.Stats{TotalGames: 1, BotGames: 1}, repo.Read(ctx))
}
