package skk

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the package-level logger. Callers embedding this engine in a
// larger program can replace it with SetLogger to route engine events
// (dictionary misses, registrations, mode switches) into their own
// logging pipeline instead of stderr.
var log zerolog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Logger()

// SetLogger replaces the package-level logger used for diagnostic
// messages emitted while processing key events.
func SetLogger(l zerolog.Logger) {
	log = l
}
