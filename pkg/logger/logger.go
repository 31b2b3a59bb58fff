package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Init sets up a console logger so boot messages are readable before the
// environment is known. InitStructured replaces it once APP_ENV is resolved.
func Init() {
	zlog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

// Info logs a printf-style info message
func Info(format string, v ...interface{}) {
	zlog.Info().Msgf(format, v...)
}

// Warn logs a printf-style warning message
func Warn(format string, v ...interface{}) {
	zlog.Warn().Msgf(format, v...)
}

// Error logs a printf-style error message
func Error(format string, v ...interface{}) {
	zlog.Error().Msgf(format, v...)
}
