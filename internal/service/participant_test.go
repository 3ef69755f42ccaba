package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInputGone = errors.New("input gone")

// scriptedPrompter answers ReadInt from a fixed list of values.
type scriptedPrompter struct {
	answers []int
	labels  []string
	out     strings.Builder
}

func (that *scriptedPrompter) ReadInt(_ context.Context, label string, _, _ int) (int, error) {
	that.labels = append(that.labels, label)
	if len(that.answers) == 0 {
		return 0, errInputGone
	}

	answer := that.answers[0]
	that.answers = that.answers[1:]

	return answer, nil
}

func (that *scriptedPrompter) Printf(format string, args ...any) {
	fmt.Fprintf(&that.out, format, args...)
}

func (that *scriptedPrompter) Println(args ...any) {
	fmt.Fprintln(&that.out, args...)
}

func newBoard(t *testing.T, size int) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(size)
	require.NoError(t, err)

	return board
}

func TestBotParticipant_DecideMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Never attempts an illegal move", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			// Given: a fresh 4x4 board and a bot playing both figures
			board := newBoard(t, 4)
			rng := rand.New(rand.NewSource(seed))
			cross := NewBotParticipant(&entity.Player{Name: "a", Figure: entity.Cross}, rng)
			nought := NewBotParticipant(&entity.Player{Name: "b", Figure: entity.Nought}, rng)

			current, moves := cross, 0
			for {
				// When: the bots keep playing
				result, err := current.DecideMove(ctx, board)
				require.NoError(t, err)

				// Then: every attempt is legal
				require.NotEqual(t, entity.Invalid, result, "seed %d", seed)
				moves++
				assert.Len(t, board.EmptyCells(), 16-moves)

				if result == entity.Terminal {
					break
				}
				if current == cross {
					current = nought
				} else {
					current = cross
				}
			}

			assert.True(t, board.IsFinished())
		}
	})

	t.Run("Returns ErrNoAvailableMoves on a full board", func(t *testing.T) {
		// Given: a finished draw
		board := newBoard(t, 3)
		pattern := [3][3]entity.Figure{
			{entity.Cross, entity.Nought, entity.Cross},
			{entity.Nought, entity.Cross, entity.Nought},
			{entity.Nought, entity.Cross, entity.Nought},
		}
		for row := range pattern {
			for col, figure := range pattern[row] {
				board.Move(row, col, figure)
			}
		}
		bot := NewBotParticipant(entity.NewBotPlayer(), rand.New(rand.NewSource(1)))

		// When: the bot is asked to move
		result, err := bot.DecideMove(ctx, board)

		// Then: there is nothing to play
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
		assert.Equal(t, entity.Invalid, result)
	})
}

func TestHumanParticipant_DecideMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays the entered coordinates", func(t *testing.T) {
		// Given: a human answering row 2, column 0
		prompter := &scriptedPrompter{answers: []int{2, 0}}
		player := &entity.Player{Name: "Player1", Figure: entity.Nought}
		human := NewHumanParticipant(player, prompter)
		board := newBoard(t, 3)

		// When: the human moves
		result, err := human.DecideMove(ctx, board)

		// Then: the nought lands on (2, 0)
		require.NoError(t, err)
		assert.Equal(t, entity.Continue, result)
		assert.Equal(t, entity.Nought, board.At(2, 0))
		assert.Equal(t, []string{"x: ", "y: "}, prompter.labels)
		assert.Contains(t, prompter.out.String(), "Turn of Player1 (o)")
	})

	t.Run("Returns Invalid for an occupied cell", func(t *testing.T) {
		// Given: a board with a cross in the center
		board := newBoard(t, 3)
		board.Move(1, 1, entity.Cross)
		human := NewHumanParticipant(&entity.Player{Name: "Player2", Figure: entity.Nought}, &scriptedPrompter{answers: []int{1, 1}})

		// When: the human targets the center
		result, err := human.DecideMove(ctx, board)

		// Then: the board rejects it without an error
		require.NoError(t, err)
		assert.Equal(t, entity.Invalid, result)
		assert.Equal(t, entity.Cross, board.At(1, 1))
	})

	t.Run("Propagates input errors", func(t *testing.T) {
		human := NewHumanParticipant(&entity.Player{Name: "Player1", Figure: entity.Cross}, &scriptedPrompter{answers: []int{0}})

		_, err := human.DecideMove(ctx, newBoard(t, 3))

		assert.ErrorIs(t, err, errInputGone)
	})
}
