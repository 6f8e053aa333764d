package entity

import "fmt"

// Color is the color of a piece on the board.
type Color uint8

const (
	Black Color = iota + 1
	White
)

func (that Color) Opponent() Color {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(fmt.Sprintf("unknown color: %d", that))
	}
}

func (that Color) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("Color(%d)", uint8(that))
	}
}

// Cell is either empty or occupied by a piece of a given color.
// The zero value is an empty cell.
type Cell struct {
	occupied bool
	color    Color
}

func EmptyCell() Cell {
	return Cell{}
}

func PieceCell(color Color) Cell {
	return Cell{occupied: true, color: color}
}

func (that Cell) IsEmpty() bool {
	return !that.occupied
}

// Piece returns the color of the piece in the cell, false when the cell is empty.
func (that Cell) Piece() (Color, bool) {
	if !that.occupied {
		return 0, false
	}
	return that.color, true
}

// Flipped returns the cell with its piece turned over. An empty cell stays empty.
func (that Cell) Flipped() Cell {
	if !that.occupied {
		return that
	}
	return PieceCell(that.color.Opponent())
}

func (that Cell) String() string {
	if !that.occupied {
		return "empty"
	}
	return that.color.String()
}
