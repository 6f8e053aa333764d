package service

import (
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

// Mover applies a placement for the current player of the board.
type Mover interface {
	Place(board *reversi.Board, pos entity.Position) ([]entity.Position, error)
}

type boardMover struct{}

func NewMover() Mover {
	return &boardMover{}
}

func (that *boardMover) Place(board *reversi.Board, pos entity.Position) ([]entity.Position, error) {
	return board.Place(pos.X, pos.Y)
}
