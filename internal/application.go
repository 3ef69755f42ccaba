package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// Mode selects what the application does once wired.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlay
	ModeStats
)

type Options struct {
	Mode     Mode
	Settings usecase.Settings

	In  io.Reader
	Out io.Writer
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	statsRepo, closeStorage, err := newStatsRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not create stats repository: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close stats storage", "error", err)
		}
	}()

	prompter := console.NewPrompter(opts.In, opts.Out)
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	matchUseCase := usecase.NewMatchUseCase(logger, statsRepo, prompter, rng)
	menu := console.NewMenu(logger, prompter, matchUseCase)

	switch opts.Mode {
	case ModePlay:
		log.Debug("Playing a single match", "size", opts.Settings.Size, "with_bot", opts.Settings.WithBot)
		return menu.PlayOnce(ctx, opts.Settings)
	case ModeStats:
		menu.ShowStats(ctx)
		return nil
	default:
		log.Debug("Starting menu", "stats_backend", conf.Stats.Backend)
		return menu.Run(ctx)
	}
}

func newStatsRepository(ctx context.Context, conf *config.Config) (repository.StatsRepository, func() error, error) {
	switch conf.Stats.Backend {
	case config.BackendFile, "":
		return repository.NewFileStatsRepository(conf.Stats.FilePath), func() error { return nil }, nil
	case config.BackendRedis:
		addr := conf.Redis.GetRedisAddr()
		if addr == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, addr)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisStatsRepository(redisStorage.Connection, conf.Stats.RedisKey), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", apperror.ErrUnknownBackend, conf.Stats.Backend)
	}
}
