package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

// TurnResult is what a driving loop needs to render after a turn.
type TurnResult struct {
	Move entity.Move
	// Played is false when the bot had no destination and nothing happened.
	Played bool
	// Passed is true when the opponent could not move and the mover keeps the turn.
	Passed   bool
	Score    entity.Score
	Finished bool
}

type GameUseCase interface {
	StartGame() *reversi.Board
	AvailableMoves(board *reversi.Board) []entity.Position
	PlayerMove(board *reversi.Board, pos entity.Position) (TurnResult, error)
	BotMove(board *reversi.Board) (TurnResult, error)
	EvaluateGameEnd(board *reversi.Board) (entity.Score, bool)
}

type playerService interface {
	MakeTurn(board *reversi.Board, pos entity.Position) (entity.Move, error)
}

type botService interface {
	MakeTurn(board *reversi.Board) (entity.Move, bool)
}

type gameUseCase struct {
	logger *slog.Logger

	playerService playerService
	botService    botService
	player1Color  entity.Color
}

func NewGameUseCase(logger *slog.Logger, playerService playerService, botService botService, player1Color entity.Color) GameUseCase {
	return &gameUseCase{
		logger:        logger.With("component", "game"),
		playerService: playerService,
		botService:    botService,
		player1Color:  player1Color,
	}
}

func (that *gameUseCase) StartGame() *reversi.Board {
	that.logger.Info("game started", "player1", that.player1Color.String())

	return reversi.NewBoardWithColors(that.player1Color)
}

// AvailableMoves returns the legal destinations of the player to move.
func (that *gameUseCase) AvailableMoves(board *reversi.Board) []entity.Position {
	return board.LegalDestinations(board.CurrentPlayer())
}

func (that *gameUseCase) PlayerMove(board *reversi.Board, pos entity.Position) (TurnResult, error) {
	log := that.logger.With("method", "PlayerMove")

	if _, finished := board.EndOfGame(); finished {
		return TurnResult{}, apperror.ErrGameFinished
	}

	move, err := that.playerService.MakeTurn(board, pos)
	if err != nil {
		log.Debug("move rejected", "x", pos.X, "y", pos.Y, "error", err)
		return TurnResult{}, fmt.Errorf("failed to make turn: %w", err)
	}

	return that.turnResult(log, board, move), nil
}

func (that *gameUseCase) BotMove(board *reversi.Board) (TurnResult, error) {
	log := that.logger.With("method", "BotMove")

	if _, finished := board.EndOfGame(); finished {
		return TurnResult{}, apperror.ErrGameFinished
	}

	move, played := that.botService.MakeTurn(board)
	if !played {
		log.Info("bot has no destination", "player", board.CurrentPlayer().ID.String())
		return TurnResult{}, nil
	}

	return that.turnResult(log, board, move), nil
}

func (that *gameUseCase) EvaluateGameEnd(board *reversi.Board) (entity.Score, bool) {
	return board.EndOfGame()
}

func (that *gameUseCase) turnResult(log *slog.Logger, board *reversi.Board, move entity.Move) TurnResult {
	log.Debug("move played",
		"player", move.Player.String(),
		"x", move.Position.X,
		"y", move.Position.Y,
		"flipped", len(move.Flipped),
	)

	result := TurnResult{
		Move:   move,
		Played: true,
	}

	score, finished := board.EndOfGame()
	if finished {
		result.Score = score
		result.Finished = true

		log.Info("game finished", "player1", score.Player1, "player2", score.Player2)

		return result
	}

	if board.IsCurrent(move.Player) {
		result.Passed = true

		log.Info("opponent has no destination, turn passes back", "player", move.Player.String())
	}

	return result
}
