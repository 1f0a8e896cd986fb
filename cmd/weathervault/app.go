package main

import (
	"log/slog"

	"github.com/couchcryptid/weathervault/internal/config"
	"github.com/couchcryptid/weathervault/internal/fetch"
	"github.com/couchcryptid/weathervault/internal/observability"
	"github.com/couchcryptid/weathervault/pkg/station"
	"github.com/couchcryptid/weathervault/pkg/weather"
)

// app holds the wired service graph shared by all subcommands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	catalog *station.Catalog
	source  *fetch.Source
	weather *weather.Service
}

// newApp loads configuration and wires the collaborators. The timezone
// finder is optional: when its polygon data cannot be loaded, stations
// simply carry no zone and local-time output degrades to UTC.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	finder, err := station.NewTimezoneFinder()
	if err != nil {
		logger.Warn("timezone resolution unavailable", "error", err)
		finder = nil
	}

	catalog := station.NewCatalog(cfg.ArchiveBaseURL, finder, logger)
	source := fetch.NewSource(cfg.ArchiveBaseURL, cfg.CacheDir, cfg.FetchTimeout, logger, metrics)
	svc := weather.NewService(source, catalog, logger, metrics)

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		catalog: catalog,
		source:  source,
		weather: svc,
	}, nil
}
