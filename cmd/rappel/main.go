package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rappel-app/rappel/internal/api"
	"github.com/rappel-app/rappel/internal/config"
	"github.com/rappel-app/rappel/internal/events"
	"github.com/rappel-app/rappel/internal/extractor"
	"github.com/rappel-app/rappel/internal/openai"
	"github.com/rappel-app/rappel/internal/responder"
	"github.com/rappel-app/rappel/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("rappel starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready")

	// Model client
	if cfg.OpenAIAPIKey == "" {
		slog.Error("OPENAI_API_KEY is required")
		os.Exit(1)
	}
	llm := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	slog.Info("model client ready", "model", cfg.OpenAIModel)

	ext := extractor.New(llm, slog.Default())
	chat := responder.New(ext, slog.Default())

	// Events (optional — rappel works without NATS, just no lifecycle events)
	var publisher api.Publisher
	if cfg.NatsURL != "" {
		eventsClient, err := events.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Warn("failed to connect to NATS — running without events", "error", err)
		} else {
			defer eventsClient.Close()
			publisher = eventsClient
			slog.Info("NATS connected", "url", cfg.NatsURL)
		}
	} else {
		slog.Warn("NATS not configured — running without events")
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, db, ext, chat, publisher, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("rappel ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("rappel stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
