package config

import (
	"errors"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// ISD archive access.
	ArchiveBaseURL string
	CacheDir       string
	FetchTimeout   time.Duration

	// Sink configuration for backfill loads.
	KafkaBrokers  []string
	KafkaTopic    string
	PostgresDSN   string
	SinkBatchSize int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	fetchTimeoutStr := sharedcfg.EnvOrDefault("FETCH_TIMEOUT", "120s")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil || fetchTimeout <= 0 {
		return nil, errors.New("invalid FETCH_TIMEOUT")
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		ArchiveBaseURL: sharedcfg.EnvOrDefault("ARCHIVE_BASE_URL", "https://www.ncei.noaa.gov/pub/data/noaa"),
		CacheDir:       sharedcfg.EnvOrDefault("CACHE_DIR", "."),
		FetchTimeout:   fetchTimeout,

		KafkaBrokers:  sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:    sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "weather-observations"),
		PostgresDSN:   sharedcfg.EnvOrDefault("POSTGRES_DSN", ""),
		SinkBatchSize: batchSize,
	}

	if cfg.ArchiveBaseURL == "" {
		return nil, errors.New("ARCHIVE_BASE_URL is required")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}

	return cfg, nil
}
