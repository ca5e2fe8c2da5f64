package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/use-agent/wooscrape/catalog"
	"github.com/use-agent/wooscrape/config"
	"github.com/use-agent/wooscrape/models"
	"github.com/use-agent/wooscrape/writer"
)

func main() {
	// ── 1. Load configuration ───────────────────────────────────────
	dotenvErr := godotenv.Load()
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)
	if dotenvErr != nil && !os.IsNotExist(dotenvErr) {
		slog.Warn(".env not loaded", "error", dotenvErr)
	}
	slog.Info("wooscrape starting",
		"offline", cfg.API.Offline,
		"baseURL", cfg.API.BaseURL,
		"maxPages", cfg.API.MaxPages,
	)

	// ── 3. Collect records ──────────────────────────────────────────
	var extensions []models.Extension
	if cfg.API.Offline {
		slog.Info("using fixed sample extensions")
		extensions = catalog.SampleExtensions()
	} else {
		slog.Info("fetching extensions from the marketplace API")
		var err error
		extensions, err = catalog.NewClient(cfg.API).FetchAll(context.Background())
		if err != nil {
			slog.Error("fetch failed", "error", err)
			os.Exit(1)
		}
	}

	// ── 4. Write outputs ────────────────────────────────────────────
	if err := writer.Write(extensions, cfg.Output); err != nil {
		slog.Error("write failed", "error", err)
		os.Exit(1)
	}

	slog.Info("wooscrape finished", "records", len(extensions))
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
