// Package config manages environment variables.
//
// It reads variables from the process environment (optionally loaded from
// a `.env` file), maps them into structured Go types, and validates that
// required values are present so the app fails fast on bad config.
//
// Env vars use the TOURISM_ prefix and dot-delimited nesting, e.g.
// TOURISM_DATABASE.HOST maps to Config.Database.Host.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env before
	// anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// Email and RateLimit are pointers because they are optional: a nil Email
// disables booking confirmation emails, a nil RateLimit gets defaults.
type Config struct {
	Primary   Primary          `koanf:"primary" validate:"required"`
	Server    ServerConfig     `koanf:"server" validate:"required"`
	Database  DatabaseConfig   `koanf:"database" validate:"required"`
	Redis     RedisConfig      `koanf:"redis" validate:"required"`
	Logging   LoggingConfig    `koanf:"logging"`
	Email     *EmailConfig     `koanf:"email"`
	RateLimit *RateLimitConfig `koanf:"ratelimit"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are
// in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxConns        int    `koanf:"max_conns" validate:"required"`
	MinConns        int    `koanf:"min_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port").
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// LoggingConfig controls the structured logger. Zero values mean
// info-level JSON output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// EmailConfig configures the Resend email integration.
type EmailConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
	FromName     string `koanf:"from_name" validate:"required"`
	FromAddress  string `koanf:"from_address" validate:"required"`
}

// RateLimitConfig controls the per-client request limiter.
type RateLimitConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Requests int           `koanf:"requests" validate:"min=1"`
	Window   time.Duration `koanf:"window" validate:"min=1s"`
}

// DefaultRateLimitConfig is applied when no ratelimit block is configured.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled:  true,
		Requests: 60,
		Window:   time.Minute,
	}
}

// Load reads configuration from environment variables, unmarshals it into
// Config, validates it, and applies defaults for the optional blocks.
//
// Missing or invalid required values log fatally: there is no sensible way
// to run without them.
func Load() (*Config, error) {
	// Bootstrap logger for config-time failures; the real logger is built
	// afterwards from the loaded config.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider("TOURISM_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TOURISM_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	if mainConfig.Logging.Level == "" {
		mainConfig.Logging.Level = "info"
	}
	if mainConfig.Logging.Format == "" {
		if mainConfig.Primary.Env == "local" {
			mainConfig.Logging.Format = "console"
		} else {
			mainConfig.Logging.Format = "json"
		}
	}

	if mainConfig.RateLimit == nil {
		mainConfig.RateLimit = DefaultRateLimitConfig()
	}
	if err := validate.Struct(mainConfig.RateLimit); err != nil {
		logger.Fatal().Err(err).Msg("invalid ratelimit config")
	}

	if mainConfig.Email != nil {
		if err := validate.Struct(mainConfig.Email); err != nil {
			logger.Fatal().Err(err).Msg("invalid email config")
		}
	}

	return mainConfig, nil
}
