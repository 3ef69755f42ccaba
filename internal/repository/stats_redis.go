package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type dbStats struct {
	client *redis.Client
	key    string
}

func NewRedisStatsRepository(client *redis.Client, key string) StatsRepository {
	return &dbStats{
		client: client,
		key:    key,
	}
}

func (that *dbStats) Read(ctx context.Context) entity.Stats {
	response, err := that.client.Get(ctx, that.key).Result()
	if err != nil {
		// redis.Nil included: no record yet
		return entity.Stats{}
	}

	stats, err := entity.ParseStats(response)
	if err != nil {
		return entity.Stats{}
	}

	return stats
}

func (that *dbStats) Update(ctx context.Context, deltaTotal, deltaBot int) error {
	stats := that.Read(ctx).Add(deltaTotal, deltaBot)

	if err := that.client.Set(ctx, that.key, stats.String(), 0).Err(); err != nil {
		return fmt.Errorf("failed to set stats: %w", err)
	}

	return nil
}
