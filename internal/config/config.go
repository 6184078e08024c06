package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string   `yaml:"log-file" env:"LOG_FILE"`
	Frontend string   `yaml:"frontend" env:"FRONTEND" env-default:"window"`
	Seed     uint64   `yaml:"seed" env:"SEED" env-default:"0"`
	Window   Window   `yaml:"window"`
	Terminal Terminal `yaml:"terminal"`
}

type Window struct {
	Title    string `yaml:"title" env:"WINDOW_TITLE" env-default:"Tic-Tac-Toe"`
	TileSize int    `yaml:"tile-size" env:"WINDOW_TILE_SIZE" env-default:"100"`
	Scale    int    `yaml:"scale" env:"WINDOW_SCALE" env-default:"1"`
}

type Terminal struct {
	TileWidth  int `yaml:"tile-width" env:"TERMINAL_TILE_WIDTH" env-default:"6"`
	TileHeight int `yaml:"tile-height" env:"TERMINAL_TILE_HEIGHT" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Frontend {
	case FrontendWindow:
		if that.Window.TileSize <= 0 || that.Window.Scale <= 0 {
			return fmt.Errorf("%w: window tile %d scale %d", apperror.ErrInvalidTileSize, that.Window.TileSize, that.Window.Scale)
		}
	case FrontendTerminal:
		if that.Terminal.TileWidth <= 0 || that.Terminal.TileHeight <= 0 {
			return fmt.Errorf("%w: terminal tile %dx%d", apperror.ErrInvalidTileSize, that.Terminal.TileWidth, that.Terminal.TileHeight)
		}
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownFrontend, that.Frontend)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownLogLevel, that.LogLevel)
	}
}
