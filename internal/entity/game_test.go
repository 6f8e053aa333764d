package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	t.Run("In bounds", func(t *testing.T) {
		assert.True(t, Position{X: 0, Y: 0}.InBounds())
		assert.True(t, Position{X: 7, Y: 7}.InBounds())
		assert.False(t, Position{X: 8, Y: 0}.InBounds())
		assert.False(t, Position{X: 0, Y: -1}.InBounds())
	})

	t.Run("String uses column letters and row numbers", func(t *testing.T) {
		assert.Equal(t, "d3", Position{X: 3, Y: 2}.String())
		assert.Equal(t, "a1", Position{X: 0, Y: 0}.String())
		assert.Equal(t, "h8", Position{X: 7, Y: 7}.String())
		assert.Equal(t, "(8,0)", Position{X: 8, Y: 0}.String())
	})
}

func TestScore(t *testing.T) {
	t.Run("Player1 wins", func(t *testing.T) {
		score := Score{Player1: 40, Player2: 24}

		winner, ok := score.Winner()

		assert.True(t, ok)
		assert.Equal(t, Player1, winner)
		assert.Equal(t, 64, score.Total())
		assert.Equal(t, 24, score.Of(Player2))
	})

	t.Run("Player2 wins", func(t *testing.T) {
		winner, ok := Score{Player1: 0, Player2: 64}.Winner()

		assert.True(t, ok)
		assert.Equal(t, Player2, winner)
	})

	t.Run("Draw", func(t *testing.T) {
		_, ok := Score{Player1: 32, Player2: 32}.Winner()

		assert.False(t, ok)
	})
}
