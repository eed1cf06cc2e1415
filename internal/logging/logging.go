// Package logging builds the slog handler the binaries install at start-up.
package logging

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Options selects the handler format and minimum level.
type Options struct {
	Format string
	Level  string
}

// Bind registers --log-format and --log-level on fs.
func (o *Options) Bind(fs *flag.FlagSet) {
	if o.Format == "" {
		o.Format = "text"
	}
	if o.Level == "" {
		o.Level = "info"
	}
	fs.StringVar(&o.Format, "log-format", o.Format, "log output format: text or json")
	fs.StringVar(&o.Level, "log-level", o.Level, "minimum log level: debug, info, warn, error")
}

// New builds a logger writing to w.
func New(w io.Writer, o Options) (*slog.Logger, error) {
	var level slog.Level
	if o.Level != "" {
		if err := level.UnmarshalText([]byte(o.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", o.Level, err)
		}
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(o.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", o.Format)
	}
}

// Install builds a logger and makes it the process default.
func Install(w io.Writer, o Options) (*slog.Logger, error) {
	l, err := New(w, o)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return l, nil
}
