// Package view holds the read-only projections of the engine state shared by
// every front-end: menu entries, cell glyphs, the end-of-game banner and the
// grid geometry used to turn pointer positions into cells.
package view

import (
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const (
	RestartHint = "Press Enter to Restart"
	QuitHint    = "Press Escape to Quit"
	TieMessage  = "It's a Tie!"
)

type MenuItem struct {
	Key   rune
	Label string
	Mode  entity.Mode
}

var Menu = []MenuItem{
	{Key: '1', Label: "1. Player vs Player", Mode: entity.ModeHumanVsHuman},
	{Key: '2', Label: "2. Player vs Computer", Mode: entity.ModeHumanVsComputer},
}

// ModeForKey returns the menu mode bound to key.
func ModeForKey(key rune) (entity.Mode, bool) {
	for _, item := range Menu {
		if item.Key == key {
			return item.Mode, true
		}
	}
	return entity.ModeUnselected, false
}

// Glyph is the text drawn inside a cell.
func Glyph(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return "X"
	case entity.PlayerO:
		return "O"
	case entity.EmptyCell:
		return ""
	default:
		return ""
	}
}

// Banner returns the end-of-game lines, or nil while the game is running.
func Banner(outcome entity.Outcome) []string {
	switch outcome.Status {
	case entity.StatusWon:
		return []string{"Player " + Glyph(outcome.Winner) + " Wins!", RestartHint, QuitHint}
	case entity.StatusDraw:
		return []string{TieMessage, RestartHint, QuitHint}
	case entity.StatusInProgress:
		return nil
	default:
		return nil
	}
}

// Layout is the size of one tile in front-end units (pixels or terminal cells).
type Layout struct {
	TileWidth  int
	TileHeight int
}

func (that Layout) Width() int {
	return that.TileWidth * entity.BoardSize
}

func (that Layout) Height() int {
	return that.TileHeight * entity.BoardSize
}

// CellAt maps a pointer position to a board cell. ok is false outside the grid.
func (that Layout) CellAt(x, y int) (int, int, bool) {
	if x < 0 || y < 0 || that.TileWidth <= 0 || that.TileHeight <= 0 {
		return 0, 0, false
	}

	row, col := y/that.TileHeight, x/that.TileWidth
	if _, ok := entity.CellIndex(row, col); !ok {
		return 0, 0, false
	}

	return row, col, true
}

// Origin is the top-left corner of the tile at (row, col).
func (that Layout) Origin(row, col int) (int, int) {
	return col * that.TileWidth, row * that.TileHeight
}

// CenterOffset is the start position that centers something of size inside space. It never goes negative.
func CenterOffset(size, space int) int {
	return max((space-size)/2, 0)
}
