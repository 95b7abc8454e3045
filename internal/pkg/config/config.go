// Package config holds the settings of the intake form client.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type ClientConfig struct {
	URL      string        `env:"INTAKE_URL,     default=http://localhost:5000"`
	Timeout  time.Duration `env:"INTAKE_TIMEOUT, default=10s"`
	LogLevel string        `env:"LOG_LEVEL,      default=warn"`
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*ClientConfig, error) {
	_ = godotenv.Load()

	var cfg ClientConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load client configuration: %w", err)
	}
	return &cfg, nil
}
