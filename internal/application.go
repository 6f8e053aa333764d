package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/reversi-backend/internal/config"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/service"
	"github.com/rocketscienceinc/reversi-backend/internal/ui"
	"github.com/rocketscienceinc/reversi-backend/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	mover := service.NewMover()
	gameUseCase := usecase.NewGameUseCase(
		logger,
		service.NewPlayerMoveService(mover),
		service.NewBotService(mover, service.NewRand(conf.Seed)),
		entity.Black,
	)

	switch conf.Mode {
	case config.ModeSelfPlay:
		return runSelfPlay(ctx, logger, gameUseCase, conf.SelfPlay.Games)
	default:
		return runTUI(ctx, logger, gameUseCase, conf)
	}
}

func runSelfPlay(ctx context.Context, logger *slog.Logger, gameUseCase usecase.GameUseCase, games int) error {
	manager := usecase.NewGameManager(logger, gameUseCase)

	series, err := manager.RunSeries(ctx, games)
	if err != nil {
		return fmt.Errorf("self-play failed: %w", err)
	}

	fmt.Printf("games: %d  player1: %d  player2: %d  draws: %d\n",
		series.Games, series.Player1Wins, series.Player2Wins, series.Draws)

	return nil
}

func runTUI(ctx context.Context, logger *slog.Logger, gameUseCase usecase.GameUseCase, conf *config.Config) error {
	log := logger.With("component", "app")

	app := tview.NewApplication()
	session := usecase.NewSession(gameUseCase, conf.Human())
	boardUI := ui.NewBoardUI(logger, session, ui.QueueScheduler(app), conf.ShowHints, conf.BotDelay)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	log.Info("Starting terminal UI", "human", conf.Human().String(), "hints", conf.ShowHints)

	if err := app.SetRoot(boardUI.Layout(), true).SetFocus(boardUI.Box).Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	return nil
}
