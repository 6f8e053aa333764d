package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

// GameRecord is a finished computer-vs-computer game.
type GameRecord struct {
	Moves []entity.Move
	Score entity.Score
}

// SeriesResult aggregates the outcome of several games.
type SeriesResult struct {
	Games       int
	Player1Wins int
	Player2Wins int
	Draws       int
}

// GameManager plays games where the bot moves for both players.
type GameManager struct {
	logger *slog.Logger
	game   GameUseCase
}

func NewGameManager(logger *slog.Logger, game GameUseCase) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),
		game:   game,
	}
}

// Play runs one game on a fresh board until it ends. The context is checked between moves.
func (that *GameManager) Play(ctx context.Context) (GameRecord, error) {
	board := that.game.StartGame()

	var record GameRecord
	for {
		if score, finished := that.game.EvaluateGameEnd(board); finished {
			record.Score = score
			return record, nil
		}

		if err := ctx.Err(); err != nil {
			return record, fmt.Errorf("game interrupted after %d moves: %w", len(record.Moves), err)
		}

		result, err := that.game.BotMove(board)
		if err != nil {
			return record, fmt.Errorf("failed to play bot move: %w", err)
		}

		if !result.Played {
			return record, apperror.ErrStalled
		}

		record.Moves = append(record.Moves, result.Move)
	}
}

// RunSeries plays n games in a row and counts the results.
func (that *GameManager) RunSeries(ctx context.Context, n int) (SeriesResult, error) {
	log := that.logger.With("method", "RunSeries")

	var series SeriesResult
	for i := 0; i < n; i++ {
		record, err := that.Play(ctx)
		if err != nil {
			return series, fmt.Errorf("game %d: %w", i+1, err)
		}

		series.Games++
		switch winner, ok := record.Score.Winner(); {
		case !ok:
			series.Draws++
		case winner == entity.Player1:
			series.Player1Wins++
		default:
			series.Player2Wins++
		}

		log.Debug("game recorded",
			"game", i+1,
			"moves", len(record.Moves),
			"player1", record.Score.Player1,
			"player2", record.Score.Player2,
		)
	}

	log.Info("series finished",
		"games", series.Games,
		"player1_wins", series.Player1Wins,
		"player2_wins", series.Player2Wins,
		"draws", series.Draws,
	)

	return series, nil
}
