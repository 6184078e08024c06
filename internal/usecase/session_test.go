package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-desktop/testing/suite"
)

func TestSession_SelectMode(t *testing.T) {
	t.Run("Leaves the menu after a mode is picked", func(t *testing.T) {
		_, st := suite.New(t)
		require.True(t, st.Session.State().InMenu())

		// When: the player picks human vs human
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))

		// Then: a game is running
		state := st.Session.State()
		assert.False(t, state.InMenu())
		assert.Equal(t, entity.ModeHumanVsHuman, state.Mode)
		assert.Equal(t, entity.InProgress(), state.Outcome)
	})

	t.Run("Second pick is ignored", func(t *testing.T) {
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))

		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsComputer))

		assert.Equal(t, entity.ModeHumanVsHuman, st.Session.State().Mode)
	})
}

func TestSession_Click(t *testing.T) {
	t.Run("Clicks in the menu do nothing", func(t *testing.T) {
		_, st := suite.New(t)

		st.ClickCell(0, 0)

		assert.Equal(t, entity.Board{}, st.Session.State().Board)
	})

	t.Run("Click maps pixels to the tile under the pointer", func(t *testing.T) {
		// Given: a human vs human game
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))

		// When: clicking at (250, 120) with 100px tiles
		st.Session.Handle(usecase.Click(250, 120))

		// Then: X lands on row 1, col 2
		board := st.Session.State().Board
		assert.Equal(t, entity.PlayerX, board.At(1, 2))
		assert.Equal(t, entity.PlayerO, st.Session.State().Turn)
	})

	t.Run("Clicks outside the grid are ignored", func(t *testing.T) {
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))

		st.Session.Handle(usecase.Click(301, 10))
		st.Session.Handle(usecase.Click(-4, 10))

		assert.Equal(t, entity.Board{}, st.Session.State().Board)
		assert.Equal(t, entity.PlayerX, st.Session.State().Turn)
	})

	t.Run("Players alternate until X takes the top row", func(t *testing.T) {
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))

		for _, move := range [][2]int{{0, 0}, {2, 2}, {0, 1}, {2, 1}, {0, 2}} {
			st.ClickCell(move[0], move[1])
		}

		assert.Equal(t, entity.Win(entity.PlayerX), st.Session.State().Outcome)
	})
}

func TestSession_Tick(t *testing.T) {
	t.Run("Computer answers every human move", func(t *testing.T) {
		// Given: a human vs computer game
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsComputer))

		// When: the human plays the center and the frame ticks
		st.ClickCell(1, 1)
		st.Session.Tick()

		// Then: the computer placed one O and it is X's turn again
		state := st.Session.State()
		assert.Equal(t, entity.PlayerX, state.Turn)
		assert.Len(t, state.Board.EmptyCells(), 7)

		count := 0
		for _, mark := range state.Board {
			if mark == entity.PlayerO {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("Human clicks wait for the computer", func(t *testing.T) {
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsComputer))
		st.ClickCell(0, 0)

		// a second click before the tick is ignored
		st.ClickCell(2, 2)

		state := st.Session.State()
		assert.Len(t, state.Board.EmptyCells(), 8)
		assert.Equal(t, entity.PlayerO, state.Turn)
	})

	t.Run("Tick does nothing in human vs human mode", func(t *testing.T) {
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))
		st.ClickCell(0, 0)

		st.Session.Tick()

		assert.Len(t, st.Session.State().Board.EmptyCells(), 8)
	})

	t.Run("A full game against the computer always ends", func(t *testing.T) {
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsComputer))

		for step := 0; step < entity.CellCount && !st.Session.State().Outcome.IsTerminal(); step++ {
			free := st.Session.State().Board.EmptyCells()
			require.NotEmpty(t, free)
			st.ClickCell(free[0]/entity.BoardSize, free[0]%entity.BoardSize)
			st.Session.Tick()
		}

		assert.True(t, st.Session.State().Outcome.IsTerminal())
	})
}

func TestSession_RestartAndQuit(t *testing.T) {
	finishedGame := func(t *testing.T) *suite.Suite {
		t.Helper()

		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))
		for _, move := range [][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 0}, {2, 2}} {
			st.ClickCell(move[0], move[1])
		}
		require.Equal(t, entity.Win(entity.PlayerX), st.Session.State().Outcome)

		return st
	}

	t.Run("Restart is ignored while the game runs", func(t *testing.T) {
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))
		st.ClickCell(0, 0)

		st.Session.Handle(usecase.Restart())

		assert.Equal(t, entity.PlayerX, st.Session.State().Board.At(0, 0))
	})

	t.Run("Restart after the end keeps the mode", func(t *testing.T) {
		st := finishedGame(t)

		st.Session.Handle(usecase.Restart())

		state := st.Session.State()
		assert.Equal(t, entity.Board{}, state.Board)
		assert.Equal(t, entity.PlayerX, state.Turn)
		assert.Equal(t, entity.InProgress(), state.Outcome)
		assert.Equal(t, entity.ModeHumanVsHuman, state.Mode)
	})

	t.Run("Quit is only honoured on the end screen", func(t *testing.T) {
		_, st := suite.New(t)
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))

		st.Session.Handle(usecase.Quit())
		assert.False(t, st.Session.Done())

		st = finishedGame(t)
		st.Session.Handle(usecase.Quit())
		assert.True(t, st.Session.Done())
	})

	t.Run("Close always ends the session", func(t *testing.T) {
		_, st := suite.New(t)

		st.Session.Handle(usecase.Close())

		assert.True(t, st.Session.Done())

		// events after the end are dropped
		st.Session.Handle(usecase.SelectMode(entity.ModeHumanVsHuman))
		assert.True(t, st.Session.State().InMenu())
	})
}
