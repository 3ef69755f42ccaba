package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const sepLine = "████████████████████████████████"

type prompter interface {
	ReadInt(ctx context.Context, label string, minValue, maxValue int) (int, error)
	Printf(format string, args ...any)
	Println(args ...any)
}

type humanParticipant struct {
	player   *entity.Player
	prompter prompter
}

func NewHumanParticipant(player *entity.Player, prompter prompter) Participant {
	return &humanParticipant{
		player:   player,
		prompter: prompter,
	}
}

func (that *humanParticipant) Player() *entity.Player {
	return that.player
}

// DecideMove - shows the board and asks for row (x) and column (y).
func (that *humanParticipant) DecideMove(ctx context.Context, board *entity.Board) (entity.MoveResult, error) {
	that.prompter.Println(sepLine)
	that.prompter.Printf("Turn of %s (%s)\n", that.player.Name, that.player.Figure)
	that.prompter.Printf("%s", board)

	last := board.Size() - 1

	row, err := that.prompter.ReadInt(ctx, "x: ", 0, last)
	if err != nil {
		return entity.Invalid, fmt.Errorf("failed to read row: %w", err)
	}

	col, err := that.prompter.ReadInt(ctx, "y: ", 0, last)
	if err != nil {
		return entity.Invalid, fmt.Errorf("failed to read column: %w", err)
	}

	return board.Move(row, col, that.player.Figure), nil
}
