package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide logger from LOG_LEVEL and LOG_FORMAT.
func NewLogger() zerolog.Logger {
	var level zerolog.Level
	switch GetConfig("LOG_LEVEL") {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if GetConfig("LOG_FORMAT") == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	return logger
}
