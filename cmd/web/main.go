package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/config"
	"github.com/abhaypratapsingh7704866570/abhayvideography/internal/logging"
	"github.com/abhaypratapsingh7704866570/abhayvideography/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	// Flags override the environment
	flag.StringVar(&cfg.Addr, "addr", cfg.ListenAddr(), "HTTP listen address")
	flag.StringVar(&cfg.UIDir, "ui", cfg.UIDir, "ui directory read in dev mode")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	uiDir := ""
	if cfg.Dev {
		uiDir = cfg.UIDir
	}
	s, err := newServer(cfg, logger, ui.FS(uiDir))
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()
	logger.Info("web listening", zap.String("addr", srv.Addr), zap.Bool("dev", cfg.Dev))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	logger.Info("web stopped")
}
