package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"ordersystem/cmd"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := cmd.LoadConfig()
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(cfg, logger)
	defer root.Close()

	e := echo.New()
	e.HideBanner = true
	root.NewHTTPServer().RegisterRoutes(e)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	jobManager := root.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("background jobs failed to start", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	go func() {
		if serveErr := e.Start(":" + cfg.HTTPPort); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", serveErr)
			os.Exit(1)
		}
	}()
	logger.Info("order system started", "port", cfg.HTTPPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
