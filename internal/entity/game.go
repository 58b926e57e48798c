package entity

type Mark string

type Outcome string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeXWins      Outcome = "x_wins"
	OutcomeOWins      Outcome = "o_wins"
	OutcomeTie        Outcome = "tie"
)

const BoardSize = 9

// WinCombos lists the winning lines in evaluation order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]Mark

// Scoreboard counts finished games of one session.
type Scoreboard struct {
	X    int `json:"x"`
	O    int `json:"o"`
	Ties int `json:"ties"`
}

// Game is the full state of one session's board, render-ready as JSON.
type Game struct {
	ID          string     `json:"id"`
	Board       Board      `json:"board"`
	Turn        Mark       `json:"turn"`
	Outcome     Outcome    `json:"outcome"`
	WinningLine []int      `json:"winning_line,omitempty"`
	Scores      Scoreboard `json:"scores"`
}

func NewGame(id string) Game {
	return Game{
		ID:      id,
		Turn:    PlayerX,
		Outcome: OutcomeInProgress,
	}
}

// DetermineGameResult scans the lines in declared order and falls back to a tie on a full board.
func (that *Game) DetermineGameResult() (Outcome, []int) {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return WinOutcome(a), []int{combo[0], combo[1], combo[2]}
		}
	}

	// the game will continue until all the squares are full
	if !that.Board.IsFull() {
		return OutcomeInProgress, nil
	}

	return OutcomeTie, nil
}

func (that *Game) IsFinished() bool {
	return that.Outcome != OutcomeInProgress
}

func (that *Game) IsCellEmpty(cell int) bool {
	return IsValidCell(cell) && that.Board[cell] == EmptyCell
}

// Winner returns the mark of the winning player, or EmptyCell while in progress or on a tie.
func (that *Game) Winner() Mark {
	switch that.Outcome {
	case OutcomeXWins:
		return PlayerX
	case OutcomeOWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Status is the banner shown above the board.
func (that Game) Status() string {
	switch that.Outcome {
	case OutcomeXWins, OutcomeOWins:
		return "Player " + string(that.Winner()) + " wins!"
	case OutcomeTie:
		return "It's a tie!"
	default:
		return "Current Player: " + string(that.Turn)
	}
}

func (that *Game) InWinningLine(cell int) bool {
	for _, idx := range that.WinningLine {
		if idx == cell {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

func WinOutcome(mark Mark) Outcome {
	if mark == PlayerX {
		return OutcomeXWins
	}
	return OutcomeOWins
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}
