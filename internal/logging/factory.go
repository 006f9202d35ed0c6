package logging

import (
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/zap"
)

const (
	FormatJSON = "json"
	FormatText = "text"
	FormatZap  = "zap"
)

// New builds a Logger for the requested output format. JSON and text go
// through slog; "zap" uses a production zap logger writing to stderr.
func New(format string, w io.Writer) (Logger, error) {
	switch format {
	case "", FormatJSON:
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, nil))), nil
	case FormatText:
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, nil))), nil
	case FormatZap:
		z, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		return NewZapLogger(z), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
