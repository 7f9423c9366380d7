package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the environment-variable defaults for the commands.
// Flags override these.
type Config struct {
	// Directory where experiment results are recorded
	ResultsDir string `env:"GRIDWALK_RESULTS" envDefault:"results"`
	// Address of the redis instance used as a policy store
	RedisAddr string `env:"GRIDWALK_REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	// Key prefix of the redis policy store
	RedisPrefix string `env:"GRIDWALK_REDIS_PREFIX" envDefault:"gridwalk:policy:"`
	// Pause between agent moves in an autorun play session
	PlayDelay time.Duration `env:"GRIDWALK_PLAY_DELAY" envDefault:"200ms"`
}

// FromEnv loads the configuration from environment variables
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
