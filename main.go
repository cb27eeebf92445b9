package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-sqlite/internal/config"
	"github.com/umalmyha/customers-sqlite/internal/infra"
)

// @title       Customers API
// @version     1.0
// @description CRUD operations over customers stored in embedded sqlite database
// @host        localhost:3000
// @BasePath    /
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatalf("failed to build config - %v", err)
	}

	logger, err := infra.Logger(cfg.LogCfg)
	if err != nil {
		logrus.Fatalf("failed to build logger - %v", err)
	}

	db, err := connectToDb(cfg.SqliteCfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Errorf("failed to close sqlite database - %v", err)
		}
	}()

	e, err := infra.Router(db, logger)
	if err != nil {
		logger.Errorf("failed to build router - %v", err)
		return
	}

	start(e, cfg.HTTPCfg, logger)
}

func connectToDb(cfg config.SqliteCfg) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	return infra.Sqlite(ctx, cfg)
}

func start(e *echo.Echo, cfg config.HTTPCfg, logger logrus.FieldLogger) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("starting server on port %d", cfg.Port)
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			logger.Errorf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}
