package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

const (
	firstPlayerName  = "Player1"
	secondPlayerName = "Player2"
)

type Settings struct {
	Size    int
	WithBot bool
}

type Outcome struct {
	Winner     entity.Figure
	WinnerID   string
	WinnerName string
	Draw       bool
	Moves      int
}

// Message - end of match line shown to the players.
func (that *Outcome) Message() string {
	if that.Draw {
		return "Draw"
	}
	return fmt.Sprintf("Won by %s (%s)", that.WinnerName, that.Winner)
}

type MatchUseCase interface {
	Play(ctx context.Context, settings Settings) (*Outcome, error)
	Stats(ctx context.Context) entity.Stats
}

type statsRepo interface {
	Read(ctx context.Context) entity.Stats
	Update(ctx context.Context, deltaTotal, deltaBot int) error
}

type console interface {
	ReadInt(ctx context.Context, label string, minValue, maxValue int) (int, error)
	Printf(format string, args ...any)
	Println(args ...any)
}

type matchUseCase struct {
	logger *slog.Logger

	statsRepo statsRepo
	console   console
	rng       *rand.Rand
}

func NewMatchUseCase(logger *slog.Logger, statsRepo statsRepo, console console, rng *rand.Rand) MatchUseCase {
	return &matchUseCase{
		logger:    logger.With("component", "match"),
		statsRepo: statsRepo,
		console:   console,
		rng:       rng,
	}
}

func (that *matchUseCase) Stats(ctx context.Context) entity.Stats {
	return that.statsRepo.Read(ctx)
}

// Play - runs one match until a terminal move and records it in the stats.
func (that *matchUseCase) Play(ctx context.Context, settings Settings) (*Outcome, error) {
	board, err := entity.NewBoard(settings.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	participants := that.setupParticipants(settings.WithBot)

	log := that.logger.With("size", settings.Size, "with_bot", settings.WithBot)
	for _, participant := range participants {
		player := participant.Player()
		log.Debug("participant ready", "player", player.ID, "name", player.Name, "figure", player.Figure.String())
	}

	outcome, err := that.runTurns(ctx, board, participants)
	if err != nil {
		return nil, fmt.Errorf("match aborted: %w", err)
	}

	that.console.Println(board.String())
	that.console.Println(outcome.Message())
	log.Info("match finished", "draw", outcome.Draw, "winner", outcome.Winner.String(), "winner_id", outcome.WinnerID, "moves", outcome.Moves)

	deltaBot := 0
	if settings.WithBot {
		deltaBot = 1
	}

	if err = that.statsRepo.Update(ctx, 1, deltaBot); err != nil {
		log.Error("could not update stats", "error", err)
	}

	return outcome, nil
}

// setupParticipants - shuffles the order, the first one plays crosses and moves first.
func (that *matchUseCase) setupParticipants(withBot bool) []service.Participant {
	participants := []service.Participant{
		service.NewHumanParticipant(entity.NewPlayer(firstPlayerName), that.console),
	}

	if withBot {
		participants = append(participants, service.NewBotParticipant(entity.NewBotPlayer(), that.rng))
	} else {
		participants = append(participants, service.NewHumanParticipant(entity.NewPlayer(secondPlayerName), that.console))
	}

	that.rng.Shuffle(len(participants), func(i, j int) {
		participants[i], participants[j] = participants[j], participants[i]
	})

	participants[0].Player().Figure = entity.Cross
	participants[1].Player().Figure = entity.Nought

	return participants
}

func (that *matchUseCase) runTurns(ctx context.Context, board *entity.Board, participants []service.Participant) (*Outcome, error) {
	turn, moves := 0, 0

	for {
		current := participants[turn%len(participants)]

		result, err := current.DecideMove(ctx, board)
		if err != nil {
			return nil, fmt.Errorf("%s failed to move: %w", current.Player().Name, err)
		}

		switch result {
		case entity.Invalid:
			// same participant tries again
			that.console.Println("[!] Could not make the move!")
			continue
		case entity.Continue:
			moves++
			turn++
			continue
		case entity.Terminal:
			moves++
		}

		return that.buildOutcome(board, participants, moves), nil
	}
}

func (that *matchUseCase) buildOutcome(board *entity.Board, participants []service.Participant, moves int) *Outcome {
	winner := board.Winner()
	if winner == entity.Empty {
		return &Outcome{Winner: entity.Empty, Draw: true, Moves: moves}
	}

	outcome := &Outcome{Winner: winner, Moves: moves}
	for _, participant := range participants {
		if participant.Player().Figure == winner {
			outcome.WinnerID = participant.Player().ID
			outcome.WinnerName = participant.Player().Name
		}
	}

	return outcome
}
