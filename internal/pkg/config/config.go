package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=12h"`
	ActionBuffer    int           `env:"ACTION_BUFFER,    default=64"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	// CORSOrigins lists the origins allowed to call the API from a browser.
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`
}

// Development reports whether the console runs with developer ergonomics
// (pretty logs).
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through l.
func LoadFrom(l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	if cfg.ActionBuffer <= 0 {
		return nil, fmt.Errorf("ACTION_BUFFER must be positive, got %d", cfg.ActionBuffer)
	}
	return &cfg, nil
}
