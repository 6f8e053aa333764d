package usecase

import (
	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

// Session is a human-vs-bot game held by one driving loop.
type Session struct {
	game  GameUseCase
	human entity.PlayerID

	board *reversi.Board
	last  *entity.Move
}

func NewSession(game GameUseCase, human entity.PlayerID) *Session {
	return &Session{
		game:  game,
		human: human,
		board: game.StartGame(),
	}
}

// Restart replaces the board with a fresh one.
func (that *Session) Restart() {
	that.board = that.game.StartGame()
	that.last = nil
}

func (that *Session) Board() *reversi.Board {
	return that.board
}

func (that *Session) Human() *entity.Player {
	return that.board.Player(that.human)
}

// LastMove returns the latest move played, nil before the first one.
func (that *Session) LastMove() *entity.Move {
	return that.last
}

func (that *Session) HumanTurn() bool {
	return that.board.IsCurrent(that.human)
}

// Hints returns the destinations of the human while it is its turn.
func (that *Session) Hints() []entity.Position {
	if !that.HumanTurn() {
		return nil
	}
	return that.game.AvailableMoves(that.board)
}

func (that *Session) Result() (entity.Score, bool) {
	return that.game.EvaluateGameEnd(that.board)
}

func (that *Session) Play(pos entity.Position) (TurnResult, error) {
	if !that.HumanTurn() {
		return TurnResult{}, apperror.ErrNotYourTurn
	}

	result, err := that.game.PlayerMove(that.board, pos)
	if err != nil {
		return result, err
	}

	that.remember(result)

	return result, nil
}

func (that *Session) BotPlay() (TurnResult, error) {
	if that.HumanTurn() {
		return TurnResult{}, apperror.ErrNotYourTurn
	}

	result, err := that.game.BotMove(that.board)
	if err != nil {
		return result, err
	}

	that.remember(result)

	return result, nil
}

func (that *Session) remember(result TurnResult) {
	if result.Played {
		move := result.Move
		that.last = &move
	}
}
