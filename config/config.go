package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings. It is constructed once at
// startup and passed by reference to the components that need it.
type Config struct {
	DatabasePath    string `env:"DATABASE" env-default:"data/inventory.db"`
	Port            string `env:"PORT" env-default:"8080"`
	UseHTTPS        bool   `env:"USE_HTTPS" env-default:"false"`
	DefaultUsername string `env:"DEFAULT_USERNAME" env-default:"soc"`
	DefaultPassword string `env:"DEFAULT_PASSWORD" env-default:"changeme"`
	SessionLifetime int64  `env:"SESSION_LIFETIME" env-default:"86400"`
	SessionCookie   string `env:"SESSION_COOKIE" env-default:"inventory_session"`
}

// Load reads a .env file if present and then the process environment.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return &cfg, nil
}
