package infra

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/customers-sqlite/internal/config"
)

func TestLogger(t *testing.T) {
	logger, err := Logger(config.LogCfg{Level: "debug", Format: "json"})
	require.NoError(t, err, "valid config must produce logger")
	require.Equal(t, logrus.DebugLevel, logger.GetLevel(), "wrong log level")
	require.IsType(t, &logrus.JSONFormatter{}, logger.Formatter, "wrong formatter")

	logger, err = Logger(config.LogCfg{Level: "warn", Format: "text"})
	require.NoError(t, err, "valid config must produce logger")
	require.IsType(t, &logrus.TextFormatter{}, logger.Formatter, "wrong formatter")

	_, err = Logger(config.LogCfg{Level: "loud", Format: "json"})
	require.Error(t, err, "unknown level must be rejected")

	_, err = Logger(config.LogCfg{Level: "info", Format: "xml"})
	require.Error(t, err, "unknown format must be rejected")
}
