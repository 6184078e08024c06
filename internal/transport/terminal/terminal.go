package terminal

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/view"
)

var (
	gridStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	markStyle   = tcell.StyleDefault.Bold(true)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Terminal draws the session on a tcell screen and feeds it keyboard and mouse input.
type Terminal struct {
	logger  *slog.Logger
	screen  tcell.Screen
	session *usecase.Session

	pressed bool
}

// New expects an initialised screen; the caller owns Init and Fini.
func New(logger *slog.Logger, screen tcell.Screen, session *usecase.Session) *Terminal {
	return &Terminal{
		logger:  logger.With("component", "terminal"),
		screen:  screen,
		session: session,
	}
}

// Run processes events until the session ends or ctx is canceled.
func (that *Terminal) Run(ctx context.Context) error {
	that.screen.EnableMouse()
	that.screen.HideCursor()

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			// wake up PollEvent
			_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		that.session.Tick()
		that.draw()

		if that.session.Done() {
			return nil
		}

		ev := that.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				that.logger.Info("context canceled, leaving terminal")
				return nil
			}
		case *tcell.EventResize:
			that.screen.Sync()
		default:
			if event, ok := that.translate(ev); ok {
				that.session.Handle(event)
			}
		}
	}
}

func (that *Terminal) translate(ev tcell.Event) (usecase.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		wasDown := that.pressed
		that.pressed = down

		if !down || wasDown {
			return usecase.Event{}, false
		}

		x, y := ev.Position()
		return usecase.Click(x, y), true
	default:
		return usecase.Event{}, false
	}
}

func translateKey(ev *tcell.EventKey) (usecase.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return usecase.Restart(), true
	case tcell.KeyEscape:
		return usecase.Quit(), true
	case tcell.KeyCtrlC:
		return usecase.Close(), true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return usecase.Close(), true
		}
		if mode, ok := view.ModeForKey(ev.Rune()); ok {
			return usecase.SelectMode(mode), true
		}
	}

	return usecase.Event{}, false
}

func (that *Terminal) draw() {
	that.screen.Clear()

	state := that.session.State()
	if state.InMenu() {
		for i, item := range view.Menu {
			putString(that.screen, 1, 1+i*2, item.Label, tcell.StyleDefault)
		}
		that.screen.Show()
		return
	}

	layout := that.session.Layout()
	that.drawGrid(layout)

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			glyph := view.Glyph(state.Board.At(row, col))
			if glyph == "" {
				continue
			}
			x, y := layout.Origin(row, col)
			putString(that.screen, x+(layout.TileWidth-1)/2, y+(layout.TileHeight-1)/2, glyph, markStyle)
		}
	}

	footer := layout.Height() + 1
	if banner := view.Banner(state.Outcome); banner != nil {
		for i, line := range banner {
			putString(that.screen, 0, footer+i, line, bannerStyle)
		}
	} else {
		putString(that.screen, 0, footer, "Turn: "+view.Glyph(state.Turn), tcell.StyleDefault)
	}

	that.screen.Show()
}

// drawGrid draws separators on the last column and row of every inner tile.
func (that *Terminal) drawGrid(layout view.Layout) {
	for i := 1; i < entity.BoardSize; i++ {
		x := i*layout.TileWidth - 1
		y := i*layout.TileHeight - 1

		for yy := range layout.Height() {
			that.screen.SetContent(x, yy, tcell.RuneVLine, nil, gridStyle)
		}
		for xx := range layout.Width() {
			that.screen.SetContent(xx, y, tcell.RuneHLine, nil, gridStyle)
		}
	}

	for i := 1; i < entity.BoardSize; i++ {
		for j := 1; j < entity.BoardSize; j++ {
			that.screen.SetContent(i*layout.TileWidth-1, j*layout.TileHeight-1, tcell.RunePlus, nil, gridStyle)
		}
	}
}

func putString(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
