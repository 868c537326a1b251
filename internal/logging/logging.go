package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

const (
	TextFormat = "text"
	JSONFormat = "json"
)

// New builds a logger writing to w. Format is "text" or "json"; level is any
// name logrus understands.
func New(w io.Writer, format, level string) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(w)

	switch format {
	case TextFormat:
		logger.SetFormatter(&log.TextFormatter{DisableColors: true})
	case JSONFormat:
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format: %q", format)
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)

	return logger, nil
}
