// Package logging builds the CLI's slog logger on top of charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

// New returns a logger writing to w at the given level and format.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var f log.Formatter
	switch strings.ToLower(format) {
	case TextFormat, "":
		f = log.TextFormatter
	case LogfmtFormat:
		f = log.LogfmtFormatter
	case JSONFormat:
		f = log.JSONFormatter
	default:
		return nil, fmt.Errorf("invalid log format %q (want text, logfmt or json)", format)
	}

	h := log.NewWithOptions(w, log.Options{
		Level:     lvl,
		Formatter: f,
	})
	return slog.New(h), nil
}
