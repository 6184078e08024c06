package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const (
	HumanMark    = entity.PlayerX
	ComputerMark = entity.PlayerO
)

type botService interface {
	ChooseCell(availableCells []int) int
}

// GameEngine owns the board, the turn, the mode and the outcome of one session.
// It is not safe for concurrent use; a single control loop drives it.
//
// Invalid calls are ignored rather than reported: every mutating method
// returns false when nothing changed.
type GameEngine struct {
	board   entity.Board
	turn    entity.Mark
	mode    entity.Mode
	outcome entity.Outcome

	bot botService
}

func NewGameEngine(bot botService) *GameEngine {
	engine := &GameEngine{
		mode: entity.ModeUnselected,
		bot:  bot,
	}
	engine.Reset()

	return engine
}

// Reset clears the board and gives the first turn to X. The mode is kept.
func (that *GameEngine) Reset() {
	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.outcome = entity.InProgress()
}

// SelectMode starts the first game. The mode can be picked only once.
func (that *GameEngine) SelectMode(mode entity.Mode) bool {
	if that.mode != entity.ModeUnselected || !mode.IsPlayable() {
		return false
	}

	that.mode = mode
	that.Reset()

	return true
}

func (that *GameEngine) PlaceMark(row, col int) bool {
	cell, ok := entity.CellIndex(row, col)
	if !ok {
		return false
	}

	return that.placeAt(cell)
}

// ComputerMove puts the current mark on a random empty cell chosen by the bot.
func (that *GameEngine) ComputerMove() bool {
	if !that.canPlay() {
		return false
	}

	available := that.board.EmptyCells()
	if len(available) == 0 {
		return false
	}

	return that.placeAt(that.bot.ChooseCell(available))
}

// EvaluateOutcome recomputes the outcome from the board without changing anything.
func (that *GameEngine) EvaluateOutcome() entity.Outcome {
	return that.board.DetermineGameResult()
}

func (that *GameEngine) Board() entity.Board {
	return that.board
}

func (that *GameEngine) Turn() entity.Mark {
	return that.turn
}

func (that *GameEngine) Mode() entity.Mode {
	return that.mode
}

func (that *GameEngine) Outcome() entity.Outcome {
	return that.outcome
}

// IsComputerTurn reports whether the control loop should call ComputerMove.
func (that *GameEngine) IsComputerTurn() bool {
	return that.mode == entity.ModeHumanVsComputer && that.turn == ComputerMark && that.canPlay()
}

func (that *GameEngine) canPlay() bool {
	return that.mode.IsPlayable() && !that.outcome.IsTerminal()
}

func (that *GameEngine) placeAt(cell int) bool {
	if !that.canPlay() {
		return false
	}

	if cell < 0 || cell >= len(that.board) || that.board[cell] != entity.EmptyCell {
		return false
	}

	that.board[cell] = that.turn
	that.turn = that.turn.Opponent()
	that.outcome = that.EvaluateOutcome()

	return true
}
