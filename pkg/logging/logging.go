// Package logging sets up the optional diagnostic log. The terminal is owned
// by the UI, so logs only ever go to a file.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05"

var openFile = func(name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger appending to the file at path, and the file to close
// on exit. An empty path disables logging.
func New(path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	f, err := openFile(path)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := NewWithWriter(f)
	logger.Info().Msg("Logging enabled.")
	return logger, f, nil
}

// NewWithWriter returns a debug-level logger writing human readable lines to w.
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: timeFormat,
	}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
