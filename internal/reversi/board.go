package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const cellCount = entity.BoardSize * entity.BoardSize

// Board is the 8x8 grid and the players taking turns on it.
// A Board is owned by a single caller and is not safe for concurrent use.
type Board struct {
	cells   [cellCount]entity.Cell
	current entity.PlayerID
	player1 entity.Player
	player2 entity.Player
}

// NewBoard returns the standard opening position with Player1 (black) to move.
func NewBoard() *Board {
	return NewBoardWithColors(entity.Black)
}

// NewBoardWithColors returns the standard opening position, Player1 playing player1Color
// and Player2 the other color. Player1 moves first either way.
func NewBoardWithColors(player1Color entity.Color) *Board {
	var cells [cellCount]entity.Cell
	cells[index(3, 3)] = entity.PieceCell(entity.White)
	cells[index(3, 4)] = entity.PieceCell(entity.Black)
	cells[index(4, 3)] = entity.PieceCell(entity.Black)
	cells[index(4, 4)] = entity.PieceCell(entity.White)

	return &Board{
		cells:   cells,
		current: entity.Player1,
		player1: *entity.NewPlayer(entity.Player1, player1Color),
		player2: *entity.NewPlayer(entity.Player2, player1Color.Opponent()),
	}
}

// NewBoardFromCells builds a board from an arbitrary grid, indexed x*8+y.
// Player1 plays black and Player2 white.
func NewBoardFromCells(cells [cellCount]entity.Cell, current entity.PlayerID) *Board {
	return &Board{
		cells:   cells,
		current: current,
		player1: *entity.NewPlayer(entity.Player1, entity.Black),
		player2: *entity.NewPlayer(entity.Player2, entity.White),
	}
}

// Clone returns an independent copy of the board.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

func (that *Board) CurrentPlayer() *entity.Player {
	return that.Player(that.current)
}

// Player returns a copy of the player record; colors are fixed for the whole game.
func (that *Board) Player(id entity.PlayerID) *entity.Player {
	player := that.player2
	if id == entity.Player1 {
		player = that.player1
	}
	return &player
}

func (that *Board) IsCurrent(id entity.PlayerID) bool {
	return that.current == id
}

// Cell returns the cell at (x, y), false when the coordinate is off the board.
func (that *Board) Cell(x, y int) (entity.Cell, bool) {
	if !(entity.Position{X: x, Y: y}).InBounds() {
		return entity.Cell{}, false
	}
	return that.cells[index(x, y)], true
}

// Cells returns a copy of the grid, indexed x*8+y.
func (that *Board) Cells() [cellCount]entity.Cell {
	return that.cells
}

// Count returns the number of pieces of the given color.
func (that *Board) Count(color entity.Color) int {
	count := 0
	for _, cell := range that.cells {
		if c, ok := cell.Piece(); ok && c == color {
			count++
		}
	}
	return count
}

// Occupied returns the number of non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that.cells {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

// LegalDestinations returns every empty cell where player would capture at least one
// line, scanning x first then y. The result is empty, never nil, when there is none.
func (that *Board) LegalDestinations(player *entity.Player) []entity.Position {
	destinations := make([]entity.Position, 0)

	for y := 0; y < entity.BoardSize; y++ {
		for x := 0; x < entity.BoardSize; x++ {
			if that.isLegal(x, y, player.Color) {
				destinations = append(destinations, entity.Position{X: x, Y: y})
			}
		}
	}

	return destinations
}

func (that *Board) hasLegalDestination(player *entity.Player) bool {
	for y := 0; y < entity.BoardSize; y++ {
		for x := 0; x < entity.BoardSize; x++ {
			if that.isLegal(x, y, player.Color) {
				return true
			}
		}
	}
	return false
}

func (that *Board) isLegal(x, y int, color entity.Color) bool {
	if !that.cells[index(x, y)].IsEmpty() {
		return false
	}
	for _, dir := range directions {
		if len(that.scanFlips(x, y, dir, color)) > 0 {
			return true
		}
	}
	return false
}

// Place puts a piece of the current player at (x, y), flips every captured line and
// passes the turn. It returns the flipped positions, direction by direction, each line
// from the placed piece outward. On error the board is left untouched.
//
// When the opponent has no legal destination after the move, the turn comes back to
// the mover. This happens once: if the mover is stuck as well the game is over and
// EndOfGame reports it.
func (that *Board) Place(x, y int) ([]entity.Position, error) {
	pos := entity.Position{X: x, Y: y}

	if !pos.InBounds() {
		return nil, fmt.Errorf("%w: %w: %s", apperror.ErrIllegalMove, apperror.ErrOutOfRange, pos)
	}

	if !that.cells[index(x, y)].IsEmpty() {
		return nil, fmt.Errorf("%w: %w: %s", apperror.ErrIllegalMove, apperror.ErrCellOccupied, pos)
	}

	color := that.CurrentPlayer().Color

	flipped := make([]entity.Position, 0)
	for _, dir := range directions {
		flipped = append(flipped, that.scanFlips(x, y, dir, color)...)
	}

	if len(flipped) == 0 {
		return nil, fmt.Errorf("%w: %w: %s", apperror.ErrIllegalMove, apperror.ErrNoCapture, pos)
	}

	for _, p := range flipped {
		that.cells[index(p.X, p.Y)] = that.cells[index(p.X, p.Y)].Flipped()
	}
	that.cells[index(x, y)] = entity.PieceCell(color)

	that.switchPlayer()
	if !that.hasLegalDestination(that.CurrentPlayer()) {
		that.switchPlayer()
	}

	return flipped, nil
}

// scanFlips walks from (x, y) along dir and returns the run of opponent pieces closed
// by a piece of color, nil when the run is empty, open or runs off the board.
func (that *Board) scanFlips(x, y int, dir Direction, color entity.Color) []entity.Position {
	opponent := color.Opponent()

	var run []entity.Position
	for nx, ny := x+dir.DX, y+dir.DY; ; nx, ny = nx+dir.DX, ny+dir.DY {
		cell, ok := that.Cell(nx, ny)
		if !ok {
			return nil
		}

		piece, occupied := cell.Piece()
		switch {
		case !occupied:
			return nil
		case piece == opponent:
			run = append(run, entity.Position{X: nx, Y: ny})
		default:
			return run
		}
	}
}

func (that *Board) switchPlayer() {
	that.current = that.current.Other()
}

// EndOfGame returns the final score once the grid is full or neither player can move,
// false while the game goes on.
func (that *Board) EndOfGame() (entity.Score, bool) {
	if that.Occupied() < cellCount &&
		(that.hasLegalDestination(&that.player1) || that.hasLegalDestination(&that.player2)) {
		return entity.Score{}, false
	}

	return entity.Score{
		Player1: that.Count(that.player1.Color),
		Player2: that.Count(that.player2.Color),
	}, true
}

func index(x, y int) int {
	return x*entity.BoardSize + y
}
