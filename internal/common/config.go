package common

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Recognized backend selections.
const (
	StorageBackendLocal = "local"
	StorageBackendMinio = "minio"

	EmbedderBackendMock    = "mock"
	EmbedderBackendServing = "serving"
)

// Config holds all application configuration, loaded from environment
// variables via caarlos0/env. A .env file is honored when present.
type Config struct {
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":50052"`

	Database DatabaseConfig `envPrefix:"DB_"`
	Storage  StorageConfig  `envPrefix:"STORAGE_"`
	Embedder EmbedderConfig `envPrefix:"EMBEDDER_"`
	Curation CurationConfig `envPrefix:"CURATION_"`
}

// DatabaseConfig holds connection pool settings for Postgres.
type DatabaseConfig struct {
	URL              string        `env:"URL"`
	MaxConns         int32         `env:"MAX_CONNS" envDefault:"20"`
	MinConns         int32         `env:"MIN_CONNS" envDefault:"5"`
	MaxConnLifetime  time.Duration `env:"MAX_CONN_LIFETIME" envDefault:"30m"`
	MaxConnIdleTime  time.Duration `env:"MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DialTimeout      time.Duration `env:"DIAL_TIMEOUT" envDefault:"3s"`
	StatementTimeout time.Duration `env:"STATEMENT_TIMEOUT" envDefault:"0"`
}

// StorageConfig selects and configures the object store backend.
type StorageConfig struct {
	Backend   string `env:"BACKEND" envDefault:"local"`
	LocalRoot string `env:"LOCAL_ROOT" envDefault:"/tmp/data-curator"`

	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// EmbedderConfig selects and configures the embedding backend.
type EmbedderConfig struct {
	Backend    string        `env:"BACKEND" envDefault:"mock"`
	Endpoint   string        `env:"ENDPOINT"`
	Dimensions int           `env:"DIMENSIONS" envDefault:"768"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// CurationConfig tunes the job pipeline.
type CurationConfig struct {
	FeedbackCount int           `env:"FEEDBACK_COUNT" envDefault:"10"`
	SweepWorkers  int           `env:"SWEEP_WORKERS" envDefault:"4"`
	SweepTimeout  time.Duration `env:"SWEEP_TIMEOUT" envDefault:"10m"`
	QueueWorkers  int           `env:"QUEUE_WORKERS" envDefault:"4"`
	QueueSize     int           `env:"QUEUE_SIZE" envDefault:"256"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Sanitize()
	return &cfg, nil
}

// Sanitize applies guardrails to values loaded from env.
func (c *Config) Sanitize() {
	if c.Curation.FeedbackCount < 0 {
		c.Curation.FeedbackCount = 0
	}
	if c.Curation.SweepWorkers < 1 {
		c.Curation.SweepWorkers = 1
	}
	if c.Curation.QueueWorkers < 1 {
		c.Curation.QueueWorkers = 1
	}
	if c.Curation.QueueSize < 1 {
		c.Curation.QueueSize = 1
	}
	if c.Embedder.Dimensions < 1 {
		c.Embedder.Dimensions = 768
	}
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return WrapError(ErrInvalidInput, "DB_URL is required")
	}
	if c.GRPCAddr == "" {
		return WrapError(ErrInvalidInput, "GRPC_ADDR is required")
	}
	switch c.Storage.Backend {
	case StorageBackendLocal:
	case StorageBackendMinio:
		if c.Storage.Endpoint == "" {
			return WrapError(ErrInvalidInput, "STORAGE_ENDPOINT is required for the minio backend")
		}
	default:
		return WrapError(ErrInvalidInput, fmt.Sprintf("unknown storage backend %q", c.Storage.Backend))
	}
	switch c.Embedder.Backend {
	case EmbedderBackendMock:
	case EmbedderBackendServing:
		if c.Embedder.Endpoint == "" {
			return WrapError(ErrInvalidInput, "EMBEDDER_ENDPOINT is required for the serving backend")
		}
	default:
		return WrapError(ErrInvalidInput, fmt.Sprintf("unknown embedder backend %q", c.Embedder.Backend))
	}
	return nil
}
