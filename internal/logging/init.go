// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

type Format string

const (
	JSON Format = "json"
	Text Format = "text"
	Tint Format = "tint"
)

// Options is the log section of the sortwiz config file.
type Options struct {
	Format Format `yaml:"format"`
	Level  string `yaml:"level"`
	// File receives the log when set. Otherwise the log goes to the
	// fallback writer given to Setup.
	File string `yaml:"file"`
}

func DefaultOptions() Options {
	return Options{Format: Tint, Level: "info"}
}

func (o Options) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(o.Level)); err != nil {
		return lvl, fmt.Errorf("log level %q: %w", o.Level, err)
	}
	return lvl, nil
}

// Validate checks the format and level without touching the default logger.
func (o Options) Validate() error {
	if _, err := o.level(); err != nil {
		return err
	}
	switch o.Format {
	case JSON, Text, Tint:
		return nil
	}
	return fmt.Errorf("unknown log format %q", o.Format)
}

// NewHandler builds the handler described by o. Source locations are only
// attached at debug level.
func NewHandler(w io.Writer, o Options) (slog.Handler, error) {
	lvl, err := o.level()
	if err != nil {
		return nil, err
	}
	debug := lvl <= slog.LevelDebug

	switch o.Format {
	case JSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: debug, Level: lvl}), nil
	case Text:
		return slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: debug, Level: lvl}), nil
	case Tint:
		return tint.NewHandler(w, &tint.Options{AddSource: debug, Level: lvl, TimeFormat: "15:04:05.000"}), nil
	}
	return nil, fmt.Errorf("unknown log format %q", o.Format)
}

// Setup installs the default logger. It writes to o.File when set and to
// fallback otherwise; a nil fallback discards everything. The returned func
// closes the log file.
func Setup(o Options, fallback io.Writer) (func() error, error) {
	w := fallback
	if w == nil {
		w = io.Discard
	}
	closer := func() error { return nil }

	if o.File != "" {
		f, err := os.OpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	h, err := NewHandler(w, o)
	if err != nil {
		closer()
		return nil, err
	}
	slog.SetDefault(slog.New(h))
	slog.Debug("logger ready", "format", o.Format, "level", o.Level, "file", o.File)
	return closer, nil
}
