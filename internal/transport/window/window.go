package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/view"
)

// ebitenutil's debug font
const (
	charWidth  = 6
	lineHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 24, G: 24, B: 24, A: 255}
	gridColor       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	xColor          = color.RGBA{R: 90, G: 160, B: 255, A: 255}
	oColor          = color.RGBA{R: 255, G: 170, B: 60, A: 255}
	bannerColor     = color.RGBA{R: 160, G: 20, B: 20, A: 220}
)

var menuKeys = map[ebiten.Key]rune{
	ebiten.KeyDigit1:  '1',
	ebiten.KeyDigit2:  '2',
	ebiten.KeyNumpad1: '1',
	ebiten.KeyNumpad2: '2',
}

// Window implements ebiten.Game on top of a session.
type Window struct {
	ctx    context.Context //nolint: containedctx // ebiten.Game methods take no context
	logger *slog.Logger

	session *usecase.Session
	title   string
	scale   int
}

func New(logger *slog.Logger, session *usecase.Session, title string, scale int) *Window {
	return &Window{
		logger:  logger.With("component", "window"),
		session: session,
		title:   title,
		scale:   scale,
	}
}

// Run opens the window and blocks until the session ends, the window is closed or ctx is canceled.
func (that *Window) Run(ctx context.Context) error {
	that.ctx = ctx
	layout := that.session.Layout()

	ebiten.SetWindowSize(layout.Width()*that.scale, layout.Height()*that.scale)
	ebiten.SetWindowTitle(that.title)
	ebiten.SetWindowClosingHandled(true)

	that.logger.Info("opening window", "width", layout.Width(), "height", layout.Height(), "scale", that.scale)

	if err := ebiten.RunGame(that); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run window: %w", err)
	}

	return nil
}

func (that *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || that.ctx.Err() != nil {
		that.session.Handle(usecase.Close())
	}

	// the computer plays at the start of the frame, before new input
	that.session.Tick()

	for _, event := range that.poll() {
		that.session.Handle(event)
	}

	if that.session.Done() {
		return ebiten.Termination
	}

	return nil
}

func (that *Window) poll() []usecase.Event {
	var events []usecase.Event

	for key, r := range menuKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if mode, ok := view.ModeForKey(r); ok {
			events = append(events, usecase.SelectMode(mode))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, usecase.Click(x, y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		events = append(events, usecase.Restart())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, usecase.Quit())
	}

	return events
}

func (that *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	state := that.session.State()
	layout := that.session.Layout()

	if state.InMenu() {
		that.drawLines(screen, layout, menuLines())
		return
	}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			x, y := layout.Origin(row, col)
			vector.StrokeRect(screen, float32(x), float32(y), float32(layout.TileWidth), float32(layout.TileHeight), 1, gridColor, false)
			drawMark(screen, state.Board.At(row, col), x, y, layout)
		}
	}

	if banner := view.Banner(state.Outcome); banner != nil {
		top := (layout.Height() - len(banner)*lineHeight) / 2
		vector.DrawFilledRect(screen, 0, float32(top-4), float32(layout.Width()), float32(len(banner)*lineHeight+8), bannerColor, false)
		that.drawLines(screen, layout, banner)
	}
}

func (that *Window) Layout(_, _ int) (int, int) {
	layout := that.session.Layout()
	return layout.Width(), layout.Height()
}

// drawLines centers lines on the screen, one per debug-font row.
func (that *Window) drawLines(screen *ebiten.Image, layout view.Layout, lines []string) {
	top := (layout.Height() - len(lines)*lineHeight) / 2
	for i, line := range lines {
		x := view.CenterOffset(len(line)*charWidth, layout.Width())
		ebitenutil.DebugPrintAt(screen, line, x, top+i*lineHeight)
	}
}

func drawMark(screen *ebiten.Image, mark entity.Mark, x, y int, layout view.Layout) {
	pad := float32(min(layout.TileWidth, layout.TileHeight)) / 5
	left, top := float32(x)+pad, float32(y)+pad
	right, bottom := float32(x+layout.TileWidth)-pad, float32(y+layout.TileHeight)-pad

	switch mark {
	case entity.PlayerX:
		vector.StrokeLine(screen, left, top, right, bottom, 4, xColor, true)
		vector.StrokeLine(screen, right, top, left, bottom, 4, xColor, true)
	case entity.PlayerO:
		radius := (right - left) / 2
		vector.StrokeCircle(screen, left+radius, top+(bottom-top)/2, radius, 4, oColor, true)
	case entity.EmptyCell:
	}
}

func menuLines() []string {
	lines := make([]string, 0, len(view.Menu))
	for _, item := range view.Menu {
		lines = append(lines, item.Label)
	}
	return lines
}
