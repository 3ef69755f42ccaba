package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// StatsRepository - persisted match counters. Read never fails, broken
// or missing records count as zero.
type StatsRepository interface {
	Read(ctx context.Context) entity.Stats
	Update(ctx context.Context, deltaTotal, deltaBot int) error
}
