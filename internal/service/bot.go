package service

import (
	"context"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type botParticipant struct {
	player *entity.Player
	rng    *rand.Rand
}

func NewBotParticipant(player *entity.Player, rng *rand.Rand) Participant {
	return &botParticipant{
		player: player,
		rng:    rng,
	}
}

func (that *botParticipant) Player() *entity.Player {
	return that.player
}

// DecideMove - plays a uniformly random empty cell.
func (that *botParticipant) DecideMove(_ context.Context, board *entity.Board) (entity.MoveResult, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Invalid, apperror.ErrNoAvailableMoves
	}

	chosen := availableCells[that.rng.Intn(len(availableCells))]

	return board.Move(chosen.Row, chosen.Col, that.player.Figure), nil
}
