// Package logging builds the hclog loggers shared by the command-line tools.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Level maps the --verbose and --quiet flags to a log level.
// Quiet wins when both are set.
func Level(verbose, quiet bool) hclog.Level {
	switch {
	case quiet:
		return hclog.Error
	case verbose:
		return hclog.Debug
	default:
		return hclog.Info
	}
}

// New returns a logger writing to w at the level selected by verbose and quiet.
// A nil writer yields a logger that discards everything.
func New(name string, w io.Writer, verbose, quiet bool) hclog.Logger {
	if w == nil {
		return hclog.New(&hclog.LoggerOptions{
			Name:   name,
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: w,
		Level:  Level(verbose, quiet),
	})
}
