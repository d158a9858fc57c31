//go:build !hexless

// Package corelog wraps the motion core's logging so call sites read
// log.Log.Debug().Str(...).Msg(...) regardless of which build variant
// is active.
//
// Grounded on pkg/logger/logger.go and pkg/core/logger/logger.empty.go:
// the same package-level Log var, the same build-tag split, renamed
// from the teacher's "logless" tag to "hexless" since this module
// carries its own tag namespace.
package corelog

import (
	"os"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
)

// Log is the package-level entry point every call site uses.
var Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
