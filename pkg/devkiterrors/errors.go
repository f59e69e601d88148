package devkiterrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArguments indicates invalid arguments were provided.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInvalidFormat indicates an unknown log format was requested.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidLevel indicates an unknown log level was requested.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrInvalidPath indicates a candidate installation path was rejected.
	ErrInvalidPath = errors.New("invalid path")

	// ErrConfig indicates an error occurred while handling configuration.
	ErrConfig = errors.New("config")

	// ErrReadConfig indicates the configuration file could not be read.
	ErrReadConfig = fmt.Errorf("read %w", ErrConfig)

	// ErrParseConfig indicates the configuration file could not be decoded.
	ErrParseConfig = fmt.Errorf("parse %w", ErrConfig)
)
