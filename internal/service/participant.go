package service

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Participant - one side of a match able to attempt a single move.
type Participant interface {
	Player() *entity.Player
	DecideMove(ctx context.Context, board *entity.Board) (entity.MoveResult, error)
}
