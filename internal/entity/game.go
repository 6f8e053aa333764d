package entity

import "fmt"

const BoardSize = 8

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Position) InBounds() bool {
	return that.X >= 0 && that.X < BoardSize && that.Y >= 0 && that.Y < BoardSize
}

// String renders the position as a column letter and a row number, e.g. "d3" for (3,2).
func (that Position) String() string {
	if !that.InBounds() {
		return fmt.Sprintf("(%d,%d)", that.X, that.Y)
	}
	return fmt.Sprintf("%c%d", 'a'+that.X, that.Y+1)
}

// Move is the outcome of one accepted placement.
type Move struct {
	Player   PlayerID   `json:"player"`
	Color    Color      `json:"color"`
	Position Position   `json:"position"`
	Flipped  []Position `json:"flipped"`
}

// Score holds the final piece count of each player.
type Score struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

func (that Score) Total() int {
	return that.Player1 + that.Player2
}

// Winner returns the player with more pieces, false on a draw.
func (that Score) Winner() (PlayerID, bool) {
	switch {
	case that.Player1 > that.Player2:
		return Player1, true
	case that.Player2 > that.Player1:
		return Player2, true
	default:
		return 0, false
	}
}

func (that Score) Of(id PlayerID) int {
	if id == Player1 {
		return that.Player1
	}
	return that.Player2
}
