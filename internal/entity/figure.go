package entity

// Figure is the mark a participant places on the board.
type Figure int

const (
	Empty Figure = iota
	Cross
	Nought
)

func (that Figure) String() string {
	switch that {
	case Cross:
		return "x"
	case Nought:
		return "o"
	default:
		return " "
	}
}

// MoveResult is the outcome of a single move attempt.
type MoveResult int

const (
	// Invalid - illegal attempt, the board is unchanged.
	Invalid MoveResult = iota
	// Continue - legal move, the match goes on.
	Continue
	// Terminal - legal move that produced a win or filled the last cell.
	Terminal
)

func (that MoveResult) String() string {
	switch that {
	case Continue:
		return "continue"
	case Terminal:
		return "terminal"
	default:
		return "invalid"
	}
}

type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
