package entity

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 9
)

type Board struct {
	size       int
	cells      [][]Figure
	emptyCells int
	winner     Figure
}

// NewBoard - creates an empty board, size must be within [MinBoardSize, MaxBoardSize].
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	cells := make([][]Figure, size)
	for i := range cells {
		cells[i] = make([]Figure, size)
	}

	return &Board{
		size:       size,
		cells:      cells,
		emptyCells: size * size,
		winner:     Empty,
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Winner() Figure {
	return that.winner
}

func (that *Board) IsFinished() bool {
	return that.winner != Empty || that.emptyCells == 0
}

// At returns Empty for coordinates outside the board.
func (that *Board) At(row, col int) Figure {
	if !that.inBounds(row, col) {
		return Empty
	}
	return that.cells[row][col]
}

// Move - places figure at (row, col) and reports how the match proceeds.
func (that *Board) Move(row, col int, figure Figure) MoveResult {
	if figure == Empty || that.IsFinished() {
		return Invalid
	}

	if !that.inBounds(row, col) || that.cells[row][col] != Empty {
		return Invalid
	}

	that.cells[row][col] = figure
	that.emptyCells--

	if that.isWin(row, col, figure) {
		that.winner = figure
		return Terminal
	}

	// the board is full and nobody has won
	if that.emptyCells == 0 {
		return Terminal
	}

	return Continue
}

// EmptyCells - returns the coordinates of all currently empty cells in row-major order.
func (that *Board) EmptyCells() []Coordinate {
	coords := make([]Coordinate, 0, that.emptyCells)
	for row := range that.cells {
		for col, cell := range that.cells[row] {
			if cell == Empty {
				coords = append(coords, Coordinate{Row: row, Col: col})
			}
		}
	}

	return coords
}

// isWin only inspects the lines passing through the just played cell.
func (that *Board) isWin(row, col int, figure Figure) bool {
	rowWin, colWin := true, true
	for i := 0; i < that.size; i++ {
		if that.cells[row][i] != figure {
			rowWin = false
		}
		if that.cells[i][col] != figure {
			colWin = false
		}
	}

	if rowWin || colWin {
		return true
	}

	last := that.size - 1

	if row == col && that.lineHolds(figure, func(i int) (int, int) { return i, i }) {
		return true
	}

	if row+col == last && that.lineHolds(figure, func(i int) (int, int) { return i, last - i }) {
		return true
	}

	return false
}

func (that *Board) lineHolds(figure Figure, at func(i int) (int, int)) bool {
	for i := 0; i < that.size; i++ {
		r, c := at(i)
		if that.cells[r][c] != figure {
			return false
		}
	}
	return true
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// Render - writes the grid with x (row) and y (column) index headers.
func (that *Board) Render(w io.Writer) error {
	if _, err := io.WriteString(w, that.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}

func (that *Board) String() string {
	segments := make([]string, that.size)
	headers := make([]string, that.size)
	for i := range segments {
		segments[i] = "━━━"
		headers[i] = strconv.Itoa(i)
	}

	var sb strings.Builder

	sb.WriteString("   y" + strings.Join(headers, "   ") + "\n")
	sb.WriteString("x ┏" + strings.Join(segments, "┳") + "┓\n")

	middle := "  ┣" + strings.Join(segments, "╋") + "┫\n"
	for row := range that.cells {
		glyphs := make([]string, that.size)
		for col, cell := range that.cells[row] {
			glyphs[col] = cell.String()
		}

		sb.WriteString(strconv.Itoa(row) + " ┃ " + strings.Join(glyphs, " ┃ ") + " ┃\n")
		if row < that.size-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString("  ┗" + strings.Join(segments, "┻") + "┛\n")

	return sb.String()
}
