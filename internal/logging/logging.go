package logging

import (
	"fmt"
	"io"

	"github.com/safar/go-catalog-store/internal/config"
	log "github.com/sirupsen/logrus"
)

func New(cfg config.LogConfig, out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return logger, nil
}
