// Chessmaster serves the chess engine, game sessions, opening explorer
// and lesson curriculum over HTTP and WebSockets.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chessmaster/internal/config"
	"chessmaster/internal/game"
	"chessmaster/internal/opening"
	"chessmaster/internal/server"
	"chessmaster/internal/storage"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	dataDir := cfg.DataDir
	if dataDir == "" {
		var err error
		if dataDir, err = storage.DatabaseDir(); err != nil {
			log.Fatal().Err(err).Msg("resolve data directory")
		}
	}
	store, err := storage.Open(dataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dataDir).Msg("open game store")
	}
	defer store.Close()

	openings := opening.NewExplorer()
	manager := game.NewManager(openings, store)
	srv := server.New(manager, openings, store)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Router(cfg.CORSOrigins),
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.ListenAndServe()
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", cfg.Addr).Str("data", dataDir).Msg("server listening")

	select {
	case <-sigCtx.Done():
		log.Info().Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
