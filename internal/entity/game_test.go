package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123")

	// Then: it starts empty with X to move and no winner
	expectedGame := Game{
		ID:      "123",
		Board:   Board{},
		Turn:    PlayerX,
		Outcome: OutcomeInProgress,
	}

	require.Equal(t, expectedGame, game)
	assert.False(t, game.IsFinished())
	assert.Nil(t, game.WinningLine)
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Returns x_wins and the row when Player X wins", func(t *testing.T) {
		// Given: a board where Player X holds the top row
		game := &Game{
			Board: Board{
				PlayerX, PlayerX, PlayerX,
				PlayerO, PlayerO, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
		}

		// When: determining the game result
		outcome, line := game.DetermineGameResult()

		// Then: X wins on line [0,1,2]
		assert.Equal(t, OutcomeXWins, outcome)
		assert.Equal(t, []int{0, 1, 2}, line)
	})

	t.Run("Returns o_wins on a column", func(t *testing.T) {
		// Given: a board where Player O holds the middle column
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, EmptyCell,
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerO, PlayerX,
			},
		}

		// When: determining the game result
		outcome, line := game.DetermineGameResult()

		// Then: O wins on line [1,4,7]
		assert.Equal(t, OutcomeOWins, outcome)
		assert.Equal(t, []int{1, 4, 7}, line)
	})

	t.Run("Returns the anti-diagonal", func(t *testing.T) {
		// Given: a board where Player X holds the anti-diagonal
		game := &Game{
			Board: Board{
				PlayerO, PlayerO, PlayerX,
				EmptyCell, PlayerX, EmptyCell,
				PlayerX, EmptyCell, EmptyCell,
			},
		}

		// When: determining the game result
		outcome, line := game.DetermineGameResult()

		// Then: X wins on line [2,4,6]
		assert.Equal(t, OutcomeXWins, outcome)
		assert.Equal(t, []int{2, 4, 6}, line)
	})

	t.Run("First line in declared order wins when two are complete", func(t *testing.T) {
		// Given: a board where X completes both the top row and the left column
		game := &Game{
			Board: Board{
				PlayerX, PlayerX, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerX, PlayerO, PlayerO,
			},
		}

		// When: determining the game result
		outcome, line := game.DetermineGameResult()

		// Then: the row is reported because rows come before columns
		assert.Equal(t, OutcomeXWins, outcome)
		assert.Equal(t, []int{0, 1, 2}, line)
	})

	t.Run("Returns tie on a full board without a line", func(t *testing.T) {
		// Given: a full board without three in a row
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, PlayerX,
				PlayerX, PlayerO, PlayerO,
				PlayerO, PlayerX, PlayerX,
			},
		}

		// When: determining the game result
		outcome, line := game.DetermineGameResult()

		// Then: the game is a tie with no line
		assert.Equal(t, OutcomeTie, outcome)
		assert.Nil(t, line)
	})

	t.Run("Returns in_progress while cells are empty", func(t *testing.T) {
		// Given: a board that is still ongoing
		game := &Game{
			Board: Board{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
		}

		// When: determining the game result
		outcome, line := game.DetermineGameResult()

		// Then: the game continues
		assert.Equal(t, OutcomeInProgress, outcome)
		assert.Nil(t, line)
	})
}

func TestGame_Winner(t *testing.T) {
	tests := []struct {
		outcome Outcome
		winner  Mark
	}{
		{OutcomeInProgress, EmptyCell},
		{OutcomeXWins, PlayerX},
		{OutcomeOWins, PlayerO},
		{OutcomeTie, EmptyCell},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			game := &Game{Outcome: tt.outcome}

			assert.Equal(t, tt.winner, game.Winner())
			assert.Equal(t, tt.outcome != OutcomeInProgress, game.IsFinished())
		})
	}
}

func TestGame_Cells(t *testing.T) {
	game := &Game{
		Board:       Board{PlayerX, PlayerX, PlayerX},
		WinningLine: []int{0, 1, 2},
	}

	assert.False(t, game.IsCellEmpty(0))
	assert.True(t, game.IsCellEmpty(5))
	assert.False(t, game.IsCellEmpty(-1))
	assert.False(t, game.IsCellEmpty(BoardSize))

	assert.True(t, game.InWinningLine(2))
	assert.False(t, game.InWinningLine(3))

	assert.Equal(t, 3, game.Board.Count(PlayerX))
	assert.Equal(t, 0, game.Board.Count(PlayerO))
	assert.False(t, game.Board.IsFull())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}

func TestGame_Status(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want string
	}{
		{name: "in progress", game: Game{Turn: PlayerO, Outcome: OutcomeInProgress}, want: "Current Player: O"},
		{name: "x wins", game: Game{Turn: PlayerX, Outcome: OutcomeXWins}, want: "Player X wins!"},
		{name: "o wins", game: Game{Turn: PlayerO, Outcome: OutcomeOWins}, want: "Player O wins!"},
		{name: "tie", game: Game{Turn: PlayerX, Outcome: OutcomeTie}, want: "It's a tie!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.game.Status())
		})
	}
}
