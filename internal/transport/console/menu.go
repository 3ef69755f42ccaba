package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const (
	sepLine = "████████████████████████████████"

	welcomeScreen = `
TicTacToe

1) Play
2) Stats
3) Exit
`
	opponentScreen = `
Who do you want to play against?
1) another player
2) the bot`
)

const (
	optionPlay = iota + 1
	optionStats
	optionExit
)

const (
	opponentHuman = iota + 1
	opponentBot
)

var errExit = errors.New("exit requested")

type uMatch interface {
	Play(ctx context.Context, settings usecase.Settings) (*usecase.Outcome, error)
	Stats(ctx context.Context) entity.Stats
}

type Menu struct {
	logger   *slog.Logger
	prompter *Prompter
	uMatch   uMatch

	handlers map[int]func(ctx context.Context) error
}

func NewMenu(logger *slog.Logger, prompter *Prompter, uMatch uMatch) *Menu {
	menu := &Menu{
		logger:   logger.With("component", "menu"),
		prompter: prompter,
		uMatch:   uMatch,

		handlers: make(map[int]func(context.Context) error),
	}

	menu.handlers[optionPlay] = menu.handlePlay
	menu.handlers[optionStats] = menu.handleStats
	menu.handlers[optionExit] = menu.handleExit

	return menu
}

// Run - shows the main menu until Exit is chosen or the input is closed.
func (that *Menu) Run(ctx context.Context) error {
	for {
		that.prompter.Println(sepLine)
		that.prompter.Printf("%s", welcomeScreen)

		option, err := that.prompter.ReadInt(ctx, "> ", optionPlay, optionExit)
		if err != nil {
			return that.finish(err)
		}

		handler, ok := that.handlers[option]
		if !ok {
			that.logger.Warn("no handler for option", "option", option)
			continue
		}

		if err = handler(ctx); err != nil {
			return that.finish(err)
		}
	}
}

// PlayOnce - plays a single match with the given settings, skipping the settings screen.
func (that *Menu) PlayOnce(ctx context.Context, settings usecase.Settings) error {
	if _, err := that.uMatch.Play(ctx, settings); err != nil {
		return that.finish(fmt.Errorf("failed to play match: %w", err))
	}
	return nil
}

// ShowStats - prints the persisted counters.
func (that *Menu) ShowStats(ctx context.Context) {
	stats := that.uMatch.Stats(ctx)

	that.prompter.Println("STATS")
	that.prompter.Println("Total games:", stats.TotalGames)
	that.prompter.Println("Games against the bot:", stats.BotGames)
}

// finish turns the operator leaving into a clean stop.
func (that *Menu) finish(err error) error {
	switch {
	case errors.Is(err, errExit):
		return nil
	case errors.Is(err, apperror.ErrInputClosed), errors.Is(err, context.Canceled):
		that.logger.Info("console closed, leaving", "reason", err)
		return nil
	default:
		return err
	}
}

func (that *Menu) handlePlay(ctx context.Context) error {
	that.prompter.Println(sepLine)
	that.prompter.Println("Game settings")
	that.prompter.Println()

	size, err := that.prompter.ReadInt(ctx, "Board size: ", entity.MinBoardSize, entity.MaxBoardSize)
	if err != nil {
		return fmt.Errorf("failed to read board size: %w", err)
	}

	that.prompter.Println(opponentScreen)

	opponent, err := that.prompter.ReadInt(ctx, "> ", opponentHuman, opponentBot)
	if err != nil {
		return fmt.Errorf("failed to read opponent: %w", err)
	}

	settings := usecase.Settings{Size: size, WithBot: opponent == opponentBot}
	if _, err = that.uMatch.Play(ctx, settings); err != nil {
		return fmt.Errorf("failed to play match: %w", err)
	}

	return nil
}

func (that *Menu) handleStats(ctx context.Context) error {
	that.prompter.Println(sepLine)
	that.ShowStats(ctx)
	return nil
}

func (that *Menu) handleExit(_ context.Context) error {
	return errExit
}
