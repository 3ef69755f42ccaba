package apperror

import "errors"

var (
	ErrMalformedStats   = errors.New("malformed stats record")
	ErrInputClosed      = errors.New("console input is closed")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownBackend   = errors.New("unknown stats backend")
)

var ErrInvalidBoardSize = errors.New("invalid board size")
