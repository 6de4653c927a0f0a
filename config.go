package main

import (
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string        `env:"LISTEN_ADDR"`
	MaxItems      int           `env:"MAX_ITEMS"`
	MaxTextLength int           `env:"MAX_TEXT_LENGTH"`
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT"`
	Debug         bool          `env:"DEBUG"`
}

func defaultConfig() Config {
	return Config{
		ListenAddr:    ":8080",
		MaxItems:      0,
		MaxTextLength: 0,
		ClientTimeout: httpClientTimeout,
	}
}

// loadConfig reads flags first; environment variables (optionally from a .env
// file) override whatever the flags set.
func loadConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()

	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "listen address")
	fs.IntVar(&cfg.MaxItems, "maxItems", cfg.MaxItems, "max items per feed, 0 for unlimited")
	fs.IntVar(&cfg.MaxTextLength, "maxText", cfg.MaxTextLength, "truncate title and description to this length, 0 to disable")
	fs.DurationVar(&cfg.ClientTimeout, "timeout", cfg.ClientTimeout, "timeout fetching rumble.com")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("error parsing environment: %w", err)
	}

	if cfg.MaxItems < 0 || cfg.MaxTextLength < 0 {
		return cfg, fmt.Errorf("maxItems and maxText must not be negative")
	}
	if cfg.ClientTimeout <= 0 {
		return cfg, fmt.Errorf("timeout must be positive, got %s", cfg.ClientTimeout)
	}

	return cfg, nil
}
