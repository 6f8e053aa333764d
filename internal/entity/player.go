package entity

import "fmt"

type PlayerID uint8

const (
	Player1 PlayerID = iota + 1
	Player2
)

func (that PlayerID) Other() PlayerID {
	if that == Player1 {
		return Player2
	}
	return Player1
}

func (that PlayerID) String() string {
	switch that {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("PlayerID(%d)", uint8(that))
	}
}

// Player binds a player identity to the color it plays for the whole game.
type Player struct {
	ID    PlayerID `json:"id"`
	Color Color    `json:"color"`
}

func NewPlayer(id PlayerID, color Color) *Player {
	return &Player{ID: id, Color: color}
}

func (that *Player) OpponentColor() Color {
	return that.Color.Opponent()
}
