package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mgarciagodoy/portfolio/internal/app"
	"github.com/mgarciagodoy/portfolio/internal/config"
	"github.com/mgarciagodoy/portfolio/internal/logging"
	"github.com/mgarciagodoy/portfolio/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logging.New(cfg.LogFormat, cfg.LogLevel)

	injector := app.New(cfg, afero.NewOsFs())

	// Create a new server instance.
	s, err := do.Invoke[*server.Server](injector)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(context.Background()); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
