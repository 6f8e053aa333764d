package service

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

type PlayerMoveService interface {
	MakeTurn(board *reversi.Board, pos entity.Position) (entity.Move, error)
}

type playerMoveService struct {
	mover Mover
}

func NewPlayerMoveService(mover Mover) PlayerMoveService {
	return &playerMoveService{
		mover: mover,
	}
}

// MakeTurn places a piece for the current player at pos. Legality is left to the board.
func (that *playerMoveService) MakeTurn(board *reversi.Board, pos entity.Position) (entity.Move, error) {
	player := *board.CurrentPlayer()

	flipped, err := that.mover.Place(board, pos)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to place piece: %w", err)
	}

	return entity.Move{
		Player:   player.ID,
		Color:    player.Color,
		Position: pos,
		Flipped:  flipped,
	}, nil
}
