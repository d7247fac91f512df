package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/discovery"
	"github.com/specialistvlad/modgraph/internal/limits"
	"github.com/specialistvlad/modgraph/internal/metrics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	discoverer *discovery.Discoverer
	metricsReg *prometheus.Registry
	metrics    *metrics.Recorder
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. With no loaders the built-in HCL and YAML formats
// are used.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...config.Loader) (*App, error) {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &App{
		outW:       outW,
		logger:     logger,
		config:     cfg,
		discoverer: discovery.New(cfg.WorkerCount, loaders...),
		metricsReg: reg,
		metrics:    recorder,
	}, nil
}

// Context returns ctx carrying the App's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Gatherer exposes the App's metrics registry. This is primarily for testing.
func (a *App) Gatherer() prometheus.Gatherer {
	return a.metricsReg
}

func (a *App) limits() limits.Limits {
	l := limits.Default()
	if a.config.MaxModules > 0 {
		l.MaxModules = a.config.MaxModules
	}
	if a.config.MaxEdges > 0 {
		l.MaxEdges = a.config.MaxEdges
	}
	return l
}
