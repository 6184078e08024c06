package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/service"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/transport/window"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/view"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	engine := tictactoe.NewGameEngine(service.NewBotService(conf.Seed))

	switch conf.Frontend {
	case config.FrontendWindow:
		layout := view.Layout{TileWidth: conf.Window.TileSize, TileHeight: conf.Window.TileSize}
		session := usecase.NewSession(logger, engine, layout)

		log.Info("Starting window", "title", conf.Window.Title)
		if err := window.New(logger, session, conf.Window.Title, conf.Window.Scale).Run(ctx); err != nil {
			return fmt.Errorf("window error: %w", err)
		}
	case config.FrontendTerminal:
		layout := view.Layout{TileWidth: conf.Terminal.TileWidth, TileHeight: conf.Terminal.TileHeight}
		session := usecase.NewSession(logger, engine, layout)

		if err := runTerminal(ctx, logger, session); err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownFrontend, conf.Frontend)
	}

	log.Info("Application finished")

	return nil
}

func runTerminal(ctx context.Context, logger *slog.Logger, session *usecase.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrNoScreen, err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrNoScreen, err)
	}
	defer screen.Fini()

	return terminal.New(logger, screen, session).Run(ctx)
}
