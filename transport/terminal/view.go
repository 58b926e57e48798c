// Package terminal plays the board in a local terminal on top of tcell.
package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/portfolio-site/internal/entity"
	"github.com/rocketscienceinc/portfolio-site/internal/tictactoe"
)

const (
	boardTop  = 4
	boardLeft = 2
	cellWidth = 4
	helpText  = "arrows/1-9 move · enter play · n new · r reset · q quit"
)

var (
	styleDefault = tcell.StyleDefault
	styleX       = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleO       = tcell.StyleDefault.Foreground(tcell.ColorIndianRed).Bold(true)
	styleWin     = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// View keeps one local game and draws it onto a tcell screen.
type View struct {
	logger *slog.Logger
	screen tcell.Screen

	game   entity.Game
	cursor int
}

func New(logger *slog.Logger, screen tcell.Screen) *View {
	return &View{
		logger: logger.With("component", "terminal"),
		screen: screen,
		game:   entity.NewGame("terminal"),
		cursor: 4,
	}
}

// Game returns the current state.
func (that *View) Game() entity.Game {
	return that.game
}

// Run draws the board and processes key events until the player quits or ctx is canceled.
func (that *View) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	that.Draw()

	for {
		switch ev := that.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventKey:
			if that.HandleKey(ev) {
				return nil
			}
		}

		that.Draw()
	}
}

// HandleKey applies one key press and reports whether the player asked to quit.
func (that *View) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		that.moveCursor(-3)
	case tcell.KeyDown:
		that.moveCursor(3)
	case tcell.KeyLeft:
		if that.cursor%3 > 0 {
			that.cursor--
		}
	case tcell.KeyRight:
		if that.cursor%3 < 2 {
			that.cursor++
		}
	case tcell.KeyEnter:
		that.choose(that.cursor)
	case tcell.KeyRune:
		return that.handleRune(ev.Rune())
	}

	return false
}

func (that *View) handleRune(r rune) bool {
	switch {
	case r == 'q' || r == 'Q':
		return true
	case r == ' ':
		that.choose(that.cursor)
	case r >= '1' && r <= '9':
		that.cursor = int(r - '1')
		that.choose(that.cursor)
	case r == 'n' || r == 'N':
		that.game = tictactoe.NewGame(that.game)
		that.logger.Debug("new game", "scores", that.game.Scores)
	case r == 'r' || r == 'R':
		that.game = tictactoe.ResetScores(that.game)
	}

	return false
}

func (that *View) moveCursor(delta int) {
	if next := that.cursor + delta; entity.IsValidCell(next) {
		that.cursor = next
	}
}

func (that *View) choose(cell int) {
	game, changed := tictactoe.ChooseCell(that.game, cell)
	if !changed {
		return
	}

	that.game = game
	if game.IsFinished() {
		that.logger.Debug("game finished", "outcome", game.Outcome, "scores", game.Scores)
	}
}

// Draw renders the banner, board, scoreboard and key help.
func (that *View) Draw() {
	that.screen.Clear()

	that.drawText(boardLeft, 0, styleDefault.Bold(true), "Tic Tac Toe")
	that.drawText(boardLeft, 2, that.statusStyle(), that.game.Status())

	for row := 0; row < 3; row++ {
		y := boardTop + row*2
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			x := boardLeft + col*cellWidth
			that.drawCell(x, y, cell)
			if col < 2 {
				that.drawText(x+3, y, styleMuted, "│")
			}
		}
		if row < 2 {
			that.drawText(boardLeft, y+1, styleMuted, "───┼───┼───")
		}
	}

	scores := that.game.Scores
	that.drawText(boardLeft, boardTop+6, styleDefault, fmt.Sprintf("X: %d   Ties: %d   O: %d", scores.X, scores.Ties, scores.O))
	that.drawText(boardLeft, boardTop+8, styleMuted, helpText)

	that.screen.Show()
}

func (that *View) drawCell(x, y, cell int) {
	mark := that.game.Board[cell]

	style := styleDefault
	switch mark {
	case entity.PlayerX:
		style = styleX
	case entity.PlayerO:
		style = styleO
	}
	if that.game.InWinningLine(cell) {
		style = style.Background(tcell.ColorDarkGreen)
	}
	if cell == that.cursor {
		style = style.Reverse(true)
	}

	label := " "
	if mark != entity.EmptyCell {
		label = string(mark)
	}

	that.drawText(x, y, style, " "+label+" ")
}

func (that *View) statusStyle() tcell.Style {
	switch that.game.Outcome {
	case entity.OutcomeXWins:
		return styleX
	case entity.OutcomeOWins:
		return styleO
	case entity.OutcomeTie:
		return styleWin
	default:
		return styleDefault
	}
}

func (that *View) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		that.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
