// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. It logs warnings and errors,
// or everything from debug up when verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: "15:04:05",
	}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
