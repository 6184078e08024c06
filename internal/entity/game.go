package entity

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Mode is the kind of session picked on the menu screen.
type Mode string

const (
	ModeUnselected      Mode = ""
	ModeHumanVsHuman    Mode = "pvp"
	ModeHumanVsComputer Mode = "bot"
)

// IsPlayable reports whether a game can be started in this mode.
func (that Mode) IsPlayable() bool {
	switch that {
	case ModeHumanVsHuman, ModeHumanVsComputer:
		return true
	case ModeUnselected:
		return false
	default:
		return false
	}
}

// Status is the stage of a single game.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome is derived from the board. Winner is set only when Status is StatusWon.
type Outcome struct {
	Status Status
	Winner Mark
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress, Winner: EmptyCell}
}

func Win(mark Mark) Outcome {
	return Outcome{Status: StatusWon, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw, Winner: EmptyCell}
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusInProgress
}

// WinCombos lists every line of three cells: rows, then columns, then diagonals.
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

// Board is a 3x3 grid stored row by row.
type Board [CellCount]Mark

// CellIndex maps (row, col) to a board index. ok is false when the position is off the board.
func CellIndex(row, col int) (int, bool) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0, false
	}
	return row*BoardSize + col, true
}

// At returns the mark at (row, col), or EmptyCell when the position is off the board.
func (that Board) At(row, col int) Mark {
	idx, ok := CellIndex(row, col)
	if !ok {
		return EmptyCell
	}
	return that[idx]
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// DetermineGameResult checks every line for three equal marks, then the fill state.
func (that Board) DetermineGameResult() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Win(a)
		}
	}

	// the game continues until all the squares are full
	if !that.IsFull() {
		return InProgress()
	}

	return Draw()
}
