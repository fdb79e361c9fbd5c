package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the service configuration, read from the environment.
type Config struct {
	DatabaseURL  string        `env:"DATABASE_URL,required"`
	ListenAddr   string        `env:"LISTEN_ADDR"       envDefault:"0.0.0.0:8080"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`
	StartupDelay time.Duration `env:"STARTUP_DELAY"     envDefault:"2s"`

	// StrictListErrors makes GET /tabs report storage failures as 500
	// instead of the historical 200 + empty list.
	StrictListErrors bool `env:"STRICT_LIST_ERRORS" envDefault:"false"`
}

// Load parses the environment. A missing DATABASE_URL is an error.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
