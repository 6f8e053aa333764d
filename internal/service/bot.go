package service

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

type BotService interface {
	MakeTurn(board *reversi.Board) (entity.Move, bool)
}

type botService struct {
	mover Mover
	rand  Rand
}

func NewBotService(mover Mover, rnd Rand) BotService {
	return &botService{
		mover: mover,
		rand:  rnd,
	}
}

// MakeTurn plays a destination drawn uniformly among the legal ones of the current
// player. It returns false and leaves the board alone when there is none.
func (that *botService) MakeTurn(board *reversi.Board) (entity.Move, bool) {
	player := *board.CurrentPlayer()

	destinations := board.LegalDestinations(&player)
	if len(destinations) == 0 {
		return entity.Move{}, false
	}

	chosen := destinations[that.rand.IntN(len(destinations))]

	flipped, err := that.mover.Place(board, chosen)
	if err != nil {
		panic(fmt.Errorf("%w: %s: %w", apperror.ErrInvariantViolation, chosen, err))
	}

	return entity.Move{
		Player:   player.ID,
		Color:    player.Color,
		Position: chosen,
		Flipped:  flipped,
	}, true
}
