package reversi

import (
	"math/rand/v2"
	"testing"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(x, y int) entity.Position {
	return entity.Position{X: x, Y: y}
}

func boardWith(pieces map[entity.Position]entity.Color, current entity.PlayerID) *Board {
	var cells [cellCount]entity.Cell
	for p, color := range pieces {
		cells[index(p.X, p.Y)] = entity.PieceCell(color)
	}
	return NewBoardFromCells(cells, current)
}

func filledBoard(color entity.Color) *Board {
	var cells [cellCount]entity.Cell
	for i := range cells {
		cells[i] = entity.PieceCell(color)
	}
	return NewBoardFromCells(cells, entity.Player1)
}

func TestNewBoard(t *testing.T) {
	// Given: a new board
	board := NewBoard()

	// Then: the four center pieces are placed and every other cell is empty
	for x := 0; x < entity.BoardSize; x++ {
		for y := 0; y < entity.BoardSize; y++ {
			cell, ok := board.Cell(x, y)
			require.True(t, ok)

			switch {
			case (x == 3 && y == 3) || (x == 4 && y == 4):
				assert.Equal(t, entity.PieceCell(entity.White), cell, "cell (%d, %d)", x, y)
			case (x == 3 && y == 4) || (x == 4 && y == 3):
				assert.Equal(t, entity.PieceCell(entity.Black), cell, "cell (%d, %d)", x, y)
			default:
				assert.True(t, cell.IsEmpty(), "cell (%d, %d) should be empty", x, y)
			}
		}
	}

	// Then: player1 plays black and moves first
	assert.True(t, board.IsCurrent(entity.Player1))
	assert.Equal(t, entity.Black, board.Player(entity.Player1).Color)
	assert.Equal(t, entity.White, board.Player(entity.Player2).Color)
	assert.Equal(t, 2, board.Count(entity.Black))
	assert.Equal(t, 2, board.Count(entity.White))
}

func TestNewBoardWithColors(t *testing.T) {
	// Given: a board where player1 plays white
	board := NewBoardWithColors(entity.White)

	// Then: player1 is still first to move, with the white pieces
	assert.True(t, board.IsCurrent(entity.Player1))
	assert.Equal(t, entity.White, board.CurrentPlayer().Color)
	assert.Equal(t, entity.Black, board.Player(entity.Player2).Color)

	// Then: white's opening moves are the mirror of black's
	assert.Equal(t,
		[]entity.Position{pos(4, 2), pos(5, 3), pos(2, 4), pos(3, 5)},
		board.LegalDestinations(board.CurrentPlayer()),
	)
}

func TestBoard_Cell(t *testing.T) {
	board := NewBoard()

	t.Run("Returns false off the board", func(t *testing.T) {
		for _, p := range []entity.Position{pos(-1, 0), pos(0, -1), pos(8, 0), pos(0, 8)} {
			_, ok := board.Cell(p.X, p.Y)
			assert.False(t, ok, "position %v", p)
		}
	})

	t.Run("Uses x*8+y indexing", func(t *testing.T) {
		cells := board.Cells()
		assert.Equal(t, entity.PieceCell(entity.White), cells[27])
		assert.Equal(t, entity.PieceCell(entity.Black), cells[28])
		assert.Equal(t, entity.PieceCell(entity.Black), cells[35])
		assert.Equal(t, entity.PieceCell(entity.White), cells[36])
	})
}

func TestBoard_LegalDestinations(t *testing.T) {
	t.Run("Opening moves for player1", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: computing the destinations of player1
		destinations := board.LegalDestinations(board.Player(entity.Player1))

		// Then: the four canonical openings are returned in scan order
		assert.Equal(t, []entity.Position{pos(3, 2), pos(2, 3), pos(5, 4), pos(4, 5)}, destinations)
	})

	t.Run("Opening moves for player2", func(t *testing.T) {
		board := NewBoard()

		destinations := board.LegalDestinations(board.Player(entity.Player2))

		assert.Equal(t, []entity.Position{pos(4, 2), pos(5, 3), pos(2, 4), pos(3, 5)}, destinations)
	})

	t.Run("Returns an empty set when nothing is capturable", func(t *testing.T) {
		// Given: a board with only black pieces
		board := boardWith(map[entity.Position]entity.Color{
			pos(3, 3): entity.Black,
			pos(3, 4): entity.Black,
		}, entity.Player1)

		// When: computing the destinations of both players
		black := board.LegalDestinations(board.Player(entity.Player1))
		white := board.LegalDestinations(board.Player(entity.Player2))

		// Then: both are empty but not nil
		require.NotNil(t, black)
		require.NotNil(t, white)
		assert.Empty(t, black)
		assert.Empty(t, white)
	})

	t.Run("Does not change the board", func(t *testing.T) {
		board := NewBoard()
		before := board.Cells()

		board.LegalDestinations(board.CurrentPlayer())

		assert.Equal(t, before, board.Cells())
		assert.True(t, board.IsCurrent(entity.Player1))
	})

	t.Run("A run must be closed by the mover's color", func(t *testing.T) {
		// Given: a white run at the edge with no black piece behind it
		board := boardWith(map[entity.Position]entity.Color{
			pos(0, 1): entity.White,
			pos(0, 2): entity.White,
		}, entity.Player1)

		// Then: black has nowhere to play
		assert.Empty(t, board.LegalDestinations(board.CurrentPlayer()))
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Flips the captured piece on the opening move", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: player1 places at (3,2)
		flipped, err := board.Place(3, 2)

		// Then: (3,3) is flipped to black and the turn goes to player2
		require.NoError(t, err)
		assert.Equal(t, []entity.Position{pos(3, 3)}, flipped)

		cell, _ := board.Cell(3, 3)
		assert.Equal(t, entity.PieceCell(entity.Black), cell)
		cell, _ = board.Cell(3, 2)
		assert.Equal(t, entity.PieceCell(entity.Black), cell)
		assert.True(t, board.IsCurrent(entity.Player2))
	})

	t.Run("Rejects an occupied cell without changing the board", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()
		before := board.Cells()

		// When: player1 places on an occupied cell
		flipped, err := board.Place(3, 3)

		// Then: the move is illegal and nothing changed
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Nil(t, flipped)
		assert.Equal(t, before, board.Cells())
		assert.True(t, board.IsCurrent(entity.Player1))
	})

	t.Run("Rejects an empty cell that captures nothing", func(t *testing.T) {
		board := NewBoard()
		before := board.Cells()

		flipped, err := board.Place(0, 0)

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrNoCapture)
		assert.Nil(t, flipped)
		assert.Equal(t, before, board.Cells())
		assert.True(t, board.IsCurrent(entity.Player1))
	})

	t.Run("Rejects positions off the board", func(t *testing.T) {
		board := NewBoard()

		for _, p := range []entity.Position{pos(8, 0), pos(0, 8), pos(-1, 3), pos(3, -1)} {
			_, err := board.Place(p.X, p.Y)

			require.ErrorIs(t, err, apperror.ErrIllegalMove, "position %v", p)
			require.ErrorIs(t, err, apperror.ErrOutOfRange, "position %v", p)
		}
		assert.Equal(t, NewBoard().Cells(), board.Cells())
	})

	t.Run("Lists flips direction by direction, outward", func(t *testing.T) {
		// Given: a black piece at (3,3) would capture along three directions
		board := boardWith(map[entity.Position]entity.Color{
			pos(2, 2): entity.White,
			pos(1, 1): entity.Black,
			pos(3, 4): entity.White,
			pos(3, 5): entity.White,
			pos(3, 6): entity.Black,
			pos(4, 3): entity.White,
			pos(5, 3): entity.Black,
		}, entity.Player1)

		// When: player1 places at (3,3)
		flipped, err := board.Place(3, 3)

		// Then: flips follow the fixed direction order
		require.NoError(t, err)
		assert.Equal(t, []entity.Position{pos(2, 2), pos(3, 4), pos(3, 5), pos(4, 3)}, flipped)
		assert.Equal(t, 8, board.Count(entity.Black))
		assert.Equal(t, 0, board.Count(entity.White))
	})

	t.Run("Turn comes back when the opponent cannot move", func(t *testing.T) {
		// Given: white's only piece is about to be captured
		board := boardWith(map[entity.Position]entity.Color{
			pos(0, 0): entity.Black,
			pos(0, 1): entity.White,
		}, entity.Player1)

		// When: player1 captures it
		flipped, err := board.Place(0, 2)

		// Then: player2 has no destination, so player1 keeps the turn
		require.NoError(t, err)
		assert.Equal(t, []entity.Position{pos(0, 1)}, flipped)
		assert.True(t, board.IsCurrent(entity.Player1))

		// Then: player1 is stuck too and the game is over
		assert.Empty(t, board.LegalDestinations(board.CurrentPlayer()))
		score, finished := board.EndOfGame()
		require.True(t, finished)
		assert.Equal(t, entity.Score{Player1: 3, Player2: 0}, score)
	})

	t.Run("Turn comes back and the mover keeps playing", func(t *testing.T) {
		// Given: white's pieces are both flankable by black, and the one on row 7
		// sits next to a black corner that cannot be captured
		board := boardWith(map[entity.Position]entity.Color{
			pos(0, 0): entity.Black,
			pos(1, 0): entity.White,
			pos(7, 0): entity.Black,
			pos(7, 1): entity.White,
		}, entity.Player1)

		// When: player1 captures (1,0)
		flipped, err := board.Place(2, 0)

		// Then: player2 is stuck, player1 moves again and can still capture (7,1)
		require.NoError(t, err)
		assert.Equal(t, []entity.Position{pos(1, 0)}, flipped)
		assert.True(t, board.IsCurrent(entity.Player1))
		assert.Empty(t, board.LegalDestinations(board.Player(entity.Player2)))
		assert.Equal(t, []entity.Position{pos(7, 2)}, board.LegalDestinations(board.CurrentPlayer()))

		_, finished := board.EndOfGame()
		assert.False(t, finished)
	})
}

func TestBoard_EndOfGame(t *testing.T) {
	t.Run("Board full of white pieces", func(t *testing.T) {
		// Given: every cell is white
		board := filledBoard(entity.White)

		// When: evaluating the end of the game
		score, finished := board.EndOfGame()

		// Then: player2 owns every piece
		require.True(t, finished)
		assert.Equal(t, entity.Score{Player1: 0, Player2: 64}, score)
	})

	t.Run("Board full of black pieces", func(t *testing.T) {
		board := filledBoard(entity.Black)

		score, finished := board.EndOfGame()

		require.True(t, finished)
		assert.Equal(t, entity.Score{Player1: 64, Player2: 0}, score)
	})

	t.Run("No move available for either player", func(t *testing.T) {
		// Given: two black pieces and nothing else
		board := boardWith(map[entity.Position]entity.Color{
			pos(3, 3): entity.Black,
			pos(3, 4): entity.Black,
		}, entity.Player1)

		// When: evaluating the end of the game
		score, finished := board.EndOfGame()

		// Then: the game is over with the pieces counted
		require.True(t, finished)
		assert.Equal(t, entity.Score{Player1: 2, Player2: 0}, score)
	})

	t.Run("Game is not over at the start", func(t *testing.T) {
		board := NewBoard()

		_, finished := board.EndOfGame()

		assert.False(t, finished)
	})

	t.Run("Score follows the player colors", func(t *testing.T) {
		// Given: player1 plays white on a full white board
		board := NewBoardWithColors(entity.White)
		for i := range board.cells {
			board.cells[i] = entity.PieceCell(entity.White)
		}

		score, finished := board.EndOfGame()

		require.True(t, finished)
		assert.Equal(t, entity.Score{Player1: 64, Player2: 0}, score)
	})
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board := NewBoard()
	clone := board.Clone()

	// When: a move is played on the clone
	_, err := clone.Place(3, 2)
	require.NoError(t, err)

	// Then: the original is untouched
	assert.Equal(t, NewBoard().Cells(), board.Cells())
	assert.True(t, board.IsCurrent(entity.Player1))
	assert.True(t, clone.IsCurrent(entity.Player2))
}

func TestBoard_RandomGames(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))

	for game := 0; game < 50; game++ {
		board := NewBoard()

		for {
			if score, finished := board.EndOfGame(); finished {
				require.Equal(t, board.Occupied(), score.Total())
				break
			}

			mover := *board.CurrentPlayer()
			destinations := board.LegalDestinations(&mover)
			require.NotEmpty(t, destinations, "a player to move on an unfinished board must have a destination")

			target := destinations[rnd.IntN(len(destinations))]
			occupied := board.Occupied()

			flipped, err := board.Place(target.X, target.Y)
			require.NoError(t, err)
			require.NotEmpty(t, flipped)

			// placed and flipped pieces belong to the mover, and exactly one piece was added
			assert.Equal(t, occupied+1, board.Occupied())
			for _, p := range append(flipped, target) {
				cell, _ := board.Cell(p.X, p.Y)
				assert.Equal(t, entity.PieceCell(mover.Color), cell)
			}

			// single-level pass: the opponent moves unless it has nowhere to play
			opponent := board.Player(mover.ID.Other())
			if len(board.LegalDestinations(opponent)) > 0 {
				assert.True(t, board.IsCurrent(opponent.ID))
			} else {
				assert.True(t, board.IsCurrent(mover.ID))
			}
		}
	}
}
