package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type SqliteCfg struct {
	Path           string        `env:"SQLITE_PATH" envDefault:"app.db"`
	BusyTimeout    time.Duration `env:"SQLITE_BUSY_TIMEOUT" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"SQLITE_CONNECT_TIMEOUT" envDefault:"5s"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Config struct {
	HTTPCfg   HTTPCfg
	SqliteCfg SqliteCfg
	LogCfg    LogCfg
}

func Build() (*Config, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s file - %w", dotEnvFile, err)
	}

	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	return &cfg, nil
}
