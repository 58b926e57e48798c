package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/portfolio-site/internal/entity"
)

// play applies the moves in order and fails the test if any of them is ignored.
func play(t *testing.T, game entity.Game, cells ...int) entity.Game {
	t.Helper()

	for _, cell := range cells {
		var applied bool
		game, applied = ChooseCell(game, cell)
		require.True(t, applied, "move on cell %d was ignored", cell)
	}

	return game
}

func TestChooseCell(t *testing.T) {
	t.Run("Places the mark and passes the turn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: X chooses cell 0
		next, applied := ChooseCell(game, 0)

		// Then: the board holds X at 0 and it is O's turn
		require.True(t, applied)
		expectedGame := entity.Game{
			ID:      "123",
			Board:   entity.Board{entity.PlayerX},
			Turn:    entity.PlayerO,
			Outcome: entity.OutcomeInProgress,
		}
		require.Equal(t, expectedGame, next)

		// Then: the input state is untouched
		assert.Equal(t, entity.NewGame("123"), game)
	})

	t.Run("Ignores an occupied cell", func(t *testing.T) {
		// Given: a game where X holds cell 0
		game := play(t, entity.NewGame("123"), 0)

		// When: O chooses the same cell
		next, applied := ChooseCell(game, 0)

		// Then: nothing changes
		assert.False(t, applied)
		assert.Equal(t, game, next)
	})

	t.Run("Ignores out of range cells", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		for _, cell := range []int{-1, 9, 20} {
			// When: an index outside the board is chosen
			next, applied := ChooseCell(game, cell)

			// Then: nothing changes
			assert.False(t, applied)
			assert.Equal(t, game, next)
		}
	})

	t.Run("Top row win for X", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: the moves 0,4,1,5,2 are played
		game = play(t, game, 0, 4, 1, 5, 2)

		// Then: X wins on the top row and is counted once
		assert.Equal(t, entity.OutcomeXWins, game.Outcome)
		assert.Equal(t, []int{0, 1, 2}, game.WinningLine)
		assert.Equal(t, entity.Scoreboard{X: 1}, game.Scores)
		assert.Equal(t, entity.PlayerX, game.Turn, "turn is frozen on the finishing player")
		assert.Equal(t, entity.Board{
			entity.PlayerX, entity.PlayerX, entity.PlayerX,
			entity.EmptyCell, entity.PlayerO, entity.PlayerO,
		}, game.Board)
	})

	t.Run("Diagonal win for O", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: O completes the main diagonal
		game = play(t, game, 1, 0, 2, 4, 3, 8)

		// Then: O wins on [0,4,8]
		assert.Equal(t, entity.OutcomeOWins, game.Outcome)
		assert.Equal(t, []int{0, 4, 8}, game.WinningLine)
		assert.Equal(t, entity.Scoreboard{O: 1}, game.Scores)
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: all nine cells are filled without three in a row
		game = play(t, game, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is a tie and counted once
		assert.Equal(t, entity.OutcomeTie, game.Outcome)
		assert.Nil(t, game.WinningLine)
		assert.Equal(t, entity.Scoreboard{Ties: 1}, game.Scores)
		assert.True(t, game.Board.IsFull())
	})

	t.Run("Win on the last cell is a win, not a tie", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: X fills the ninth cell and completes the right column
		game = play(t, game, 0, 1, 2, 3, 5, 4, 7, 6, 8)

		// Then: X wins, ties stay at zero
		assert.Equal(t, entity.OutcomeXWins, game.Outcome)
		assert.Equal(t, []int{2, 5, 8}, game.WinningLine)
		assert.Equal(t, entity.Scoreboard{X: 1}, game.Scores)
	})

	t.Run("Moves after a win are ignored", func(t *testing.T) {
		// Given: a game X has won
		game := play(t, entity.NewGame("123"), 0, 4, 1, 5, 2)

		for cell := 0; cell < entity.BoardSize; cell++ {
			// When: any cell is chosen
			next, applied := ChooseCell(game, cell)

			// Then: nothing changes and the score is not bumped again
			assert.False(t, applied)
			assert.Equal(t, game, next)
		}
	})

	t.Run("Moves after a tie are ignored", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := play(t, entity.NewGame("123"), 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// When: a cell is chosen again
		next, applied := ChooseCell(game, 4)

		// Then: nothing changes
		assert.False(t, applied)
		assert.Equal(t, entity.Scoreboard{Ties: 1}, next.Scores)
	})
}

func TestChooseCell_MarkBalance(t *testing.T) {
	rnd := rand.New(rand.NewSource(42)) //nolint: gosec // deterministic test input

	for round := 0; round < 200; round++ {
		game := entity.NewGame("balance")
		placed := 0

		for step := 0; step < 30 && !game.IsFinished(); step++ {
			var applied bool
			game, applied = ChooseCell(game, rnd.Intn(entity.BoardSize+2)-1)
			if applied {
				placed++
			}

			x, o := game.Board.Count(entity.PlayerX), game.Board.Count(entity.PlayerO)
			require.Contains(t, []int{0, 1}, x-o)
			require.Equal(t, (placed+1)/2, x)
			require.Equal(t, placed/2, o)
		}

		total := game.Scores.X + game.Scores.O + game.Scores.Ties
		if game.IsFinished() {
			require.Equal(t, 1, total)
		} else {
			require.Equal(t, 0, total)
		}
	}
}

func TestNewGame(t *testing.T) {
	t.Run("Clears a finished game and keeps the scores", func(t *testing.T) {
		// Given: a game X has won
		game := play(t, entity.NewGame("123"), 0, 4, 1, 5, 2)

		// When: a new game is started
		game = NewGame(game)

		// Then: the board is fresh and the score survives
		assert.Equal(t, entity.Board{}, game.Board)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.OutcomeInProgress, game.Outcome)
		assert.Nil(t, game.WinningLine)
		assert.Equal(t, "123", game.ID)
		assert.Equal(t, entity.Scoreboard{X: 1}, game.Scores)
	})

	t.Run("Resets a game in progress on O's turn", func(t *testing.T) {
		// Given: a game where O is to move
		game := play(t, entity.NewGame("123"), 4)

		// When: a new game is started
		game = NewGame(game)

		// Then: X moves first again
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Scores accumulate across games", func(t *testing.T) {
		// Given: an X win, then an O win, then a tie
		game := play(t, entity.NewGame("123"), 0, 4, 1, 5, 2)
		game = play(t, NewGame(game), 1, 0, 2, 4, 3, 8)
		game = play(t, NewGame(game), 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: each finished game is counted once
		assert.Equal(t, entity.Scoreboard{X: 1, O: 1, Ties: 1}, game.Scores)
	})
}

func TestResetScores(t *testing.T) {
	// Given: a game with a recorded win and a move on the next board
	game := play(t, entity.NewGame("123"), 0, 4, 1, 5, 2)
	game = play(t, NewGame(game), 8)

	// When: scores are reset
	next := ResetScores(game)

	// Then: the counters are zero and the board is untouched
	assert.Equal(t, entity.Scoreboard{}, next.Scores)
	assert.Equal(t, game.Board, next.Board)
	assert.Equal(t, game.Turn, next.Turn)
	assert.Equal(t, game.Outcome, next.Outcome)
}
