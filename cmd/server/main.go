package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jumbohomes/backend/internal/config"
	"github.com/jumbohomes/backend/internal/dataset"
	httpapi "github.com/jumbohomes/backend/internal/http"
	"github.com/jumbohomes/backend/internal/overrides"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "insight-backend").Logger()

	loader := dataset.Loader{Dir: cfg.DataDir, Logger: logger}
	snap, err := loader.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load csv snapshot")
	}
	data := dataset.NewStore(snap)

	router := httpapi.Router(cfg, data, loader, overrides.NewStore(), logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
