// Package ui draws a reversi game in the terminal and turns key presses into moves.
package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/usecase"
)

const (
	boardOffsetX = 3
	boardOffsetY = 2

	pieceRune = '●'
	hintRune  = '·'
	emptyRune = ' '
)

var (
	boardColor  = tcell.NewRGBColor(0, 110, 50)
	cursorColor = tcell.NewRGBColor(70, 160, 90)
	lastColor   = tcell.NewRGBColor(20, 80, 40)
)

// Scheduler runs fn on the UI goroutine after delay.
type Scheduler func(delay time.Duration, fn func())

type BoardUI struct {
	Box    *tview.Box
	status *tview.TextView
	logger *slog.Logger

	session  *usecase.Session
	schedule Scheduler
	botDelay time.Duration

	showHints bool
	thinking  bool
	passed    bool
	selX      int
	selY      int
}

// NewBoardUI builds the board widget for session. When the bot has the first move it
// is scheduled right away.
func NewBoardUI(logger *slog.Logger, session *usecase.Session, schedule Scheduler, showHints bool, botDelay time.Duration) *BoardUI {
	board := &BoardUI{
		Box:       tview.NewBox(),
		status:    tview.NewTextView(),
		logger:    logger.With("component", "ui"),
		session:   session,
		schedule:  schedule,
		botDelay:  botDelay,
		showHints: showHints,
		selX:      entity.BoardSize / 2,
		selY:      entity.BoardSize / 2,
	}

	board.Box.SetBorder(true).SetTitle(" Reversi ")
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetInputCapture(board.HandleKey)

	board.status.SetBorder(true)
	board.status.SetBorderPadding(0, 0, 1, 1)
	board.status.SetTitle(" Status ")
	board.status.SetTitleAlign(tview.AlignLeft)

	board.scheduleBot()
	board.refreshStatus()

	return board
}

// QueueScheduler runs the function through app so it touches the session on the UI goroutine.
func QueueScheduler(app *tview.Application) Scheduler {
	return func(delay time.Duration, fn func()) {
		go func() {
			time.Sleep(delay)
			app.QueueUpdateDraw(fn)
		}()
	}
}

// Layout places the board next to the status panel.
func (g *BoardUI) Layout() *tview.Flex {
	boardWidth := boardOffsetX + entity.BoardSize*2 + 3

	return tview.NewFlex().
		AddItem(g.Box, boardWidth, 0, true).
		AddItem(g.status, 0, 1, false)
}

func (g *BoardUI) Status() string {
	return g.status.GetText(true)
}

func (g *BoardUI) Selected() entity.Position {
	return entity.Position{X: g.selX, Y: g.selY}
}

func (g *BoardUI) MoveSelection(dx, dy int) {
	next := entity.Position{X: g.selX + dx, Y: g.selY + dy}
	if !next.InBounds() {
		return
	}
	g.selX, g.selY = next.X, next.Y
}

func (g *BoardUI) ToggleHints() bool {
	g.showHints = !g.showHints
	return g.showHints
}

// NewGame throws the current board away and starts over.
func (g *BoardUI) NewGame() {
	g.session.Restart()
	g.thinking = false
	g.passed = false
	g.logger.Info("new game")
	g.scheduleBot()
	g.refreshStatus()
}

// PlaySelected plays the human move at the cursor. Illegal moves are ignored.
func (g *BoardUI) PlaySelected() {
	if g.thinking {
		return
	}

	result, err := g.session.Play(g.Selected())
	switch {
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return
	case err != nil:
		g.logger.Error("failed to play move", "error", err)
		return
	}

	g.passed = result.Passed
	g.scheduleBot()
	g.refreshStatus()
}

func (g *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		g.MoveSelection(0, -1)
	case tcell.KeyDown:
		g.MoveSelection(0, 1)
	case tcell.KeyLeft:
		g.MoveSelection(-1, 0)
	case tcell.KeyRight:
		g.MoveSelection(1, 0)
	case tcell.KeyEnter:
		g.PlaySelected()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			g.MoveSelection(-1, 0)
		case 'j':
			g.MoveSelection(0, 1)
		case 'k':
			g.MoveSelection(0, -1)
		case 'l':
			g.MoveSelection(1, 0)
		case ' ':
			g.PlaySelected()
		case 't':
			g.ToggleHints()
		case 'n':
			g.NewGame()
		default:
			return event
		}
	default:
		return event
	}

	g.refreshStatus()
	return nil
}

func (g *BoardUI) scheduleBot() {
	if _, finished := g.session.Result(); finished || g.session.HumanTurn() {
		g.thinking = false
		return
	}

	g.thinking = true
	board := g.session.Board()
	g.schedule(g.botDelay, func() {
		// a new game may have started while waiting
		if board != g.session.Board() {
			return
		}
		g.botTurn()
	})
}

func (g *BoardUI) botTurn() {
	result, err := g.session.BotPlay()
	if err != nil && !errors.Is(err, apperror.ErrGameFinished) {
		g.logger.Error("bot failed to play", "error", err)
	}

	g.passed = result.Passed
	g.scheduleBot()
	g.refreshStatus()
}

func (g *BoardUI) refreshStatus() {
	board := g.session.Board()
	human := g.session.Human()
	bot := board.Player(human.ID.Other())

	var text strings.Builder

	fmt.Fprintf(&text, "  You (%s): %d\n", human.Color, board.Count(human.Color))
	fmt.Fprintf(&text, "  Bot (%s): %d\n\n", bot.Color, board.Count(bot.Color))

	if last := g.session.LastMove(); last != nil {
		who := "You"
		if last.Player != human.ID {
			who = "Bot"
		}
		fmt.Fprintf(&text, "  Last: %s played %s, %d flipped\n", who, last.Position, len(last.Flipped))
	}

	if score, finished := g.session.Result(); finished {
		fmt.Fprintf(&text, "\n  %s %d-%d\n", outcome(score, human.ID), score.Of(human.ID), score.Of(bot.ID))
		text.WriteString("\n  n · new game   q · quit")
		g.status.SetText(text.String())
		return
	}

	switch {
	case g.passed && g.session.HumanTurn():
		text.WriteString("  Bot cannot move, play again\n")
	case g.passed:
		text.WriteString("  You cannot move, bot plays again\n")
	}

	if g.thinking {
		text.WriteString("  Bot is thinking...\n")
	} else {
		text.WriteString("  Your move\n")
	}

	hints := "off"
	if g.showHints {
		hints = "on"
	}
	fmt.Fprintf(&text, `
  hjkl/arrows move   enter play
  t hints (%s)   n new game   q quit`, hints)

	g.status.SetText(text.String())
}

func outcome(score entity.Score, human entity.PlayerID) string {
	winner, ok := score.Winner()
	switch {
	case !ok:
		return "Draw"
	case winner == human:
		return "Victory!"
	default:
		return "Defeat..."
	}
}

func (g *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	board := g.session.Board()
	left, top := x+boardOffsetX, y+boardOffsetY

	hints := map[entity.Position]bool{}
	if g.showHints && !g.thinking {
		for _, p := range g.session.Hints() {
			hints[p] = true
		}
	}

	var last *entity.Position
	if move := g.session.LastMove(); move != nil {
		last = &move.Position
	}

	for cx := 0; cx < entity.BoardSize; cx++ {
		screen.SetContent(left+cx*2, top-1, rune('a'+cx), nil, tcell.StyleDefault)
	}

	for cy := 0; cy < entity.BoardSize; cy++ {
		screen.SetContent(left-2, top+cy, rune('1'+cy), nil, tcell.StyleDefault)

		for cx := 0; cx < entity.BoardSize; cx++ {
			pos := entity.Position{X: cx, Y: cy}
			cell, _ := board.Cell(cx, cy)

			background := boardColor
			switch {
			case cx == g.selX && cy == g.selY:
				background = cursorColor
			case last != nil && *last == pos:
				background = lastColor
			}
			style := tcell.StyleDefault.Background(background)

			r := emptyRune
			if color, ok := cell.Piece(); ok {
				r = pieceRune
				if color == entity.Black {
					style = style.Foreground(tcell.ColorBlack)
				} else {
					style = style.Foreground(tcell.ColorWhite)
				}
			} else if hints[pos] {
				r = hintRune
				style = style.Foreground(tcell.ColorYellow)
			}

			screen.SetContent(left+cx*2, top+cy, r, nil, style)
			screen.SetContent(left+cx*2+1, top+cy, ' ', nil, style)
		}
	}

	return x, y, width, height
}
