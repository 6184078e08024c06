package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/service"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/view"
)

const (
	maxWaitDuration = 10 * time.Second

	// Seed keeps the computer's moves reproducible between runs.
	Seed = 42

	TileSize = 100
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Engine  *tictactoe.GameEngine
	Session *usecase.Session
}

// New builds a session over a seeded engine with 100px tiles.
// Set TEST_LOG=1 to see the session logs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	return NewWithLayout(t, view.Layout{TileWidth: TileSize, TileHeight: TileSize})
}

func NewWithLayout(t *testing.T, layout view.Layout) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var out io.Writer = io.Discard
	if os.Getenv("TEST_LOG") != "" {
		out = os.Stdout
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := tictactoe.NewGameEngine(service.NewBotService(Seed))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Engine:  engine,
		Session: usecase.NewSession(logger, engine, layout),
	}
}

// ClickCell sends a click in the middle of the tile at (row, col).
func (that *Suite) ClickCell(row, col int) {
	that.Helper()

	layout := that.Session.Layout()
	x, y := layout.Origin(row, col)
	that.Session.Handle(usecase.Click(x+layout.TileWidth/2, y+layout.TileHeight/2))
}
