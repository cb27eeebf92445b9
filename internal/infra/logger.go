package infra

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-sqlite/internal/config"
)

// Logger builds logrus logger according to provided config
func Logger(cfg config.LogCfg) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level - %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	return logger, nil
}
