package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shipstatic/shipstatic/internal/config"
	"github.com/shipstatic/shipstatic/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	manifest *config.Manifest
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with the deployment manifest loaded and validated.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	manifest, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		// A failure to load the manifest is a fatal startup error.
		panic(fmt.Errorf("failed to load deployment manifest: %w", err))
	}
	logger.Debug("Manifest loaded and translated into unified model.",
		"project", manifest.Project.Name,
		"stages", len(manifest.Stages))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		manifest: manifest,
	}
}

// Manifest exposes the loaded deployment manifest.
func (a *App) Manifest() *config.Manifest {
	return a.manifest
}
