package apperror

import "errors"

var (
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrInvalidTileSize = errors.New("tile size must be positive")
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrNoScreen        = errors.New("terminal screen is not available")
)
