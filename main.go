package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// main - is the entry point of the application. It builds the command tree and runs it.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	run := func(opts app.Options) error {
		conf := initConfig(configPath)
		logger := initLogger(conf)

		opts.In = os.Stdin
		opts.Out = os.Stdout

		if err := app.RunApp(logger, conf, opts); err != nil {
			return fmt.Errorf("app run failed: %w", err)
		}
		return nil
	}

	rootCmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Console tic-tac-toe on boards from 3x3 to 9x9",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(app.Options{Mode: app.ModeMenu})
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yml (default ./config.yml)")

	var settings usecase.Settings

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single match and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(app.Options{Mode: app.ModePlay, Settings: settings})
		},
	}
	playCmd.Flags().IntVar(&settings.Size, "size", 3, "board size, 3 to 9")
	playCmd.Flags().BoolVar(&settings.WithBot, "bot", false, "play against the bot")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the number of games played",
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(app.Options{Mode: app.ModeStats})
		},
	}

	rootCmd.AddCommand(playCmd, statsCmd)

	return rootCmd
}

// initialize config.
func initConfig(path string) *config.Config {
	if path != "" {
		return config.MustLoad(path)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. Stdout belongs to the game, logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
