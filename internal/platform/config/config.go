// Package config loads service configuration from RPG_ENCOUNTERS_*
// environment variables
package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/storage"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the full service configuration
type Config struct {
	HTTPPort int `env:"RPG_ENCOUNTERS_HTTP_PORT" envDefault:"8080"`
	GRPCPort int `env:"RPG_ENCOUNTERS_GRPC_PORT" envDefault:"50051"`

	CatalogBackend string `env:"RPG_ENCOUNTERS_CATALOG_BACKEND" envDefault:"file"`
	CatalogPath    string `env:"RPG_ENCOUNTERS_CATALOG_PATH" envDefault:"data/monsters.json"`
	RedisAddr      string `env:"RPG_ENCOUNTERS_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisKey       string `env:"RPG_ENCOUNTERS_REDIS_KEY" envDefault:"rpg-encounters:monsters"`
	SQLitePath     string `env:"RPG_ENCOUNTERS_SQLITE_PATH" envDefault:"data/catalog.db"`

	// DiceSeed selects a reproducible roller when set. Zero is a valid seed.
	DiceSeed *int64 `env:"RPG_ENCOUNTERS_DICE_SEED"`

	LogLevel  string `env:"RPG_ENCOUNTERS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RPG_ENCOUNTERS_LOG_FORMAT" envDefault:"text"`

	OTelEndpoint string `env:"RPG_ENCOUNTERS_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"RPG_ENCOUNTERS_OTEL_ENABLED" envDefault:"true"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field that has a restricted set of values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("HTTPPort", c.HTTPPort, 1, 65535, vb)
	errors.ValidateRange("GRPCPort", c.GRPCPort, 0, 65535, vb)
	errors.ValidateEnum("CatalogBackend", c.CatalogBackend, storage.Backends, vb)
	errors.ValidateEnum("LogFormat", strings.ToLower(c.LogFormat), []string{LogFormatText, LogFormatJSON}, vb)

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", errors.GetMessage(err))
	}

	switch storage.Backend(c.CatalogBackend) {
	case storage.BackendFile:
		errors.ValidateRequired("CatalogPath", c.CatalogPath, vb)
	case storage.BackendRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case storage.BackendSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}

// ParseLogLevel accepts debug, info, warn and error in any case
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}

// NewLogger builds a slog logger writing to w in the configured format
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
