// Package tictactoe holds the state transitions of a single board.
//
// Every function takes the current state by value and returns the next one, so a caller owns the
// state and decides where to keep it. None of them fail: stale or invalid input leaves the state as is.
package tictactoe

import (
	"github.com/rocketscienceinc/portfolio-site/internal/entity"
)

// ChooseCell places the current turn's mark on cell. It reports false, and returns the game
// unchanged, when the cell is out of range, already occupied, or the game is already over.
// The finishing move bumps the scoreboard, so a finished game is counted exactly once.
func ChooseCell(game entity.Game, cell int) (entity.Game, bool) {
	if game.IsFinished() || !game.IsCellEmpty(cell) {
		return game, false
	}

	game.Board[cell] = game.Turn
	updateGameStatus(&game)

	return game, true
}

// NewGame clears the board and hands the first move to X. Scores are kept.
func NewGame(game entity.Game) entity.Game {
	fresh := entity.NewGame(game.ID)
	fresh.Scores = game.Scores

	return fresh
}

// ResetScores zeroes the scoreboard and leaves the board alone.
func ResetScores(game entity.Game) entity.Game {
	game.Scores = entity.Scoreboard{}

	return game
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	switch outcome, line := game.DetermineGameResult(); outcome {
	case entity.OutcomeXWins:
		game.Outcome = outcome
		game.WinningLine = line
		game.Scores.X++
	case entity.OutcomeOWins:
		game.Outcome = outcome
		game.WinningLine = line
		game.Scores.O++
	case entity.OutcomeTie:
		game.Outcome = outcome
		game.Scores.Ties++
	default:
		game.Turn = game.Turn.Opponent()
	}
}
