// Package logger builds the zerolog logger used by the bazaar CLI.
package logger

import (
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// Formats accepted by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

// New returns a logger writing to w (os.Stderr when nil) in the given format.
// Debug enables debug level; otherwise info and above are written.
// Call sites should use .Stack() on error events to include stacks.
func New(service, format string, w io.Writer, debug bool) (zerolog.Logger, error) {
	// Attach a pkg/errors stack when an error has none, so .Stack() always renders one.
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}

	if w == nil {
		w = os.Stderr
	}
	switch format {
	case FormatJSON, "":
	case FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format %q (want %s or %s)", format, FormatJSON, FormatConsole)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().
		Str("service", service).
		Timestamp().
		Logger(), nil
}
