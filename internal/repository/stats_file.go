package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const statsFileMode = 0o644

type fileStats struct {
	path string
}

func NewFileStatsRepository(path string) StatsRepository {
	return &fileStats{
		path: path,
	}
}

func (that *fileStats) Read(_ context.Context) entity.Stats {
	content, err := os.ReadFile(that.path)
	if err != nil {
		return entity.Stats{}
	}

	stats, err := entity.ParseStats(string(content))
	if err != nil {
		return entity.Stats{}
	}

	return stats
}

func (that *fileStats) Update(ctx context.Context, deltaTotal, deltaBot int) error {
	stats := that.Read(ctx).Add(deltaTotal, deltaBot)

	if err := os.WriteFile(that.path, []byte(stats.String()), statsFileMode); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	return nil
}
