package buglink

import (
	"os"

	"github.com/rs/zerolog"
)

// defaultLogger returns the logger used when a [Builder] does not supply
// one: a no-op unless BUGLINK_LOG is set, which enables debug console
// logging to stderr.
func defaultLogger() zerolog.Logger {
	if os.Getenv("BUGLINK_LOG") == "" {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}
