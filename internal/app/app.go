package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hngprojects/devops-stage1/internal/config"
	"github.com/hngprojects/devops-stage1/internal/handler"
	log "github.com/sirupsen/logrus"
)

const (
	shutdownTimeout = 30 * time.Second

	readTimeout  = 30 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

type App struct {
	cfg    *config.Config
	server *http.Server
}

func New(cfg *config.Config) (*App, error) {
	page, err := handler.NewStatusPage(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("initializing status page: %w", err)
	}

	httpHandler := handler.NewHTTPHandler(cfg, page)

	mux := http.NewServeMux()
	httpHandler.RegisterRoutes(mux)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.Wrap(mux),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &App{
		cfg:    cfg,
		server: server,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.startServer()

	return a.waitForShutdown(ctx, cancel)
}

func (a *App) startServer() {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   a.cfg.Addr(),
	}).Info("http server listening")

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Fatal("http server failed to start")
	}
}

func (a *App) waitForShutdown(ctx context.Context, cancel context.CancelFunc) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	}

	cancel()
	return a.shutdown()
}

func (a *App) shutdown() error {
	log.Info("graceful shutdown started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
		return err
	}

	log.Info("graceful shutdown completed")
	return nil
}
