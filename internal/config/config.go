package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all process-level settings. Values come from the environment,
// optionally seeded from a .env file in the working directory.
type Config struct {
	DiscordToken  string  `env:"DISCORD_TOKEN,required"`
	DefaultPrefix string  `env:"DEFAULT_PREFIX" envDefault:"m!"`
	StoragePath   string  `env:"STORAGE_PATH" envDefault:"settings.json"`
	MaxQueueSize  int     `env:"MAX_QUEUE_SIZE" envDefault:"100"`
	DefaultVolume float64 `env:"DEFAULT_VOLUME" envDefault:"0.5"`
	SearchLimit   int     `env:"SEARCH_LIMIT" envDefault:"3"`
	LogLevel      string  `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string  `env:"LOG_FILE"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DefaultVolume < 0 || cfg.DefaultVolume > 1 {
		return nil, fmt.Errorf("DEFAULT_VOLUME must be within [0,1], got %v", cfg.DefaultVolume)
	}

	return &cfg, nil
}
