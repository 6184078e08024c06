package usecase

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/view"
)

type EventKind int

const (
	EventSelectMode EventKind = iota + 1
	EventClick
	EventRestart
	EventQuit
	EventClose
)

func (that EventKind) String() string {
	switch that {
	case EventSelectMode:
		return "select_mode"
	case EventClick:
		return "click"
	case EventRestart:
		return "restart"
	case EventQuit:
		return "quit"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is a discrete input request delivered by a front-end.
// X and Y are used by EventClick, Mode by EventSelectMode.
type Event struct {
	Kind EventKind
	Mode entity.Mode
	X, Y int
}

func SelectMode(mode entity.Mode) Event {
	return Event{Kind: EventSelectMode, Mode: mode}
}

func Click(x, y int) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}

func Restart() Event {
	return Event{Kind: EventRestart}
}

func Quit() Event {
	return Event{Kind: EventQuit}
}

func Close() Event {
	return Event{Kind: EventClose}
}

// State is what a front-end needs to draw one frame.
type State struct {
	Board   entity.Board
	Turn    entity.Mark
	Mode    entity.Mode
	Outcome entity.Outcome
}

// InMenu reports whether the mode has not been picked yet.
func (that State) InMenu() bool {
	return that.Mode == entity.ModeUnselected
}

// Session dispatches input events to the engine it owns and plays the
// computer's turns. A front-end drives it from its single loop.
type Session struct {
	logger *slog.Logger

	engine *tictactoe.GameEngine
	layout view.Layout
	done   bool
}

func NewSession(logger *slog.Logger, engine *tictactoe.GameEngine, layout view.Layout) *Session {
	return &Session{
		logger: logger.With("component", "session"),
		engine: engine,
		layout: layout,
	}
}

func (that *Session) Handle(event Event) {
	if that.done {
		return
	}

	switch event.Kind {
	case EventSelectMode:
		that.selectMode(event.Mode)
	case EventClick:
		that.click(event.X, event.Y)
	case EventRestart:
		that.restart()
	case EventQuit:
		// quitting from a running game is not offered, only from the end screen
		if that.engine.Outcome().IsTerminal() {
			that.finish(event.Kind)
		}
	case EventClose:
		that.finish(event.Kind)
	default:
		that.logger.Warn("unknown event", "kind", event.Kind)
	}
}

// Tick lets the computer play when it is its turn. Front-ends call it once per frame.
func (that *Session) Tick() {
	if that.done || !that.engine.IsComputerTurn() {
		return
	}

	if that.engine.ComputerMove() {
		that.logger.Debug("computer moved", "mark", tictactoe.ComputerMark)
		that.reportOutcome()
	}
}

func (that *Session) Done() bool {
	return that.done
}

func (that *Session) Layout() view.Layout {
	return that.layout
}

func (that *Session) State() State {
	return State{
		Board:   that.engine.Board(),
		Turn:    that.engine.Turn(),
		Mode:    that.engine.Mode(),
		Outcome: that.engine.Outcome(),
	}
}

func (that *Session) selectMode(mode entity.Mode) {
	if !that.engine.SelectMode(mode) {
		that.logger.Debug("mode selection ignored", "mode", mode, "current", that.engine.Mode())
		return
	}

	that.logger.Info("mode selected", "mode", mode)
}

func (that *Session) click(x, y int) {
	log := that.logger.With("method", "click")

	if that.engine.Mode() == entity.ModeUnselected || that.engine.IsComputerTurn() {
		return
	}

	row, col, ok := that.layout.CellAt(x, y)
	if !ok {
		log.Debug("click outside the grid", "x", x, "y", y)
		return
	}

	mark := that.engine.Turn()
	if !that.engine.PlaceMark(row, col) {
		log.Debug("placement ignored", "row", row, "col", col)
		return
	}

	log.Debug("mark placed", "mark", mark, "row", row, "col", col)
	that.reportOutcome()
}

func (that *Session) restart() {
	if !that.engine.Outcome().IsTerminal() {
		return
	}

	that.engine.Reset()
	that.logger.Info("game restarted", "mode", that.engine.Mode())
}

func (that *Session) finish(kind EventKind) {
	that.done = true
	that.logger.Info("session finished", "by", kind)
}

func (that *Session) reportOutcome() {
	outcome := that.engine.Outcome()

	switch outcome.Status {
	case entity.StatusWon:
		that.logger.Info("game finished", "status", outcome.Status, "winner", outcome.Winner)
	case entity.StatusDraw:
		that.logger.Info("game finished", "status", outcome.Status)
	case entity.StatusInProgress:
	}
}
