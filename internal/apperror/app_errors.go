package apperror

import "errors"

var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrOutOfRange         = errors.New("position is out of the board")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrNoCapture          = errors.New("move captures no piece")
	ErrGameFinished       = errors.New("game is already finished")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrInvariantViolation = errors.New("engine rejected a legal destination")
	ErrStalled            = errors.New("player to move has no destination on an unfinished board")
)
