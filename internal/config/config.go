// Package config loads process configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the process-level settings. Generation settings live in
// the ai package's own Config.
type Config struct {
	DBPath        string
	TelegramToken string
	DefaultLang   string // BCP-47 tag used when a profile has no language
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults for any unset values.
func Load() (Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DefaultLang:   "ru",
	}

	if v := os.Getenv("ZHOSPAR_DEFAULT_LANG"); v != "" {
		cfg.DefaultLang = v
	}

	cfg.DBPath = os.Getenv("ZHOSPAR_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".zhospar", "zhospar.db")
	}

	return cfg, nil
}

// RequireTelegramToken validates that a bot token is configured. Only the
// serve path needs one; operator commands run without it.
func (c Config) RequireTelegramToken() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set (add it to the environment or a .env file)")
	}
	return nil
}
