// Package config loads process settings from the environment and an
// optional .env file, and sets up the default slog logger.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultAddr is where `mathquest serve` listens unless MATHQUEST_ADDR is set.
const DefaultAddr = "127.0.0.1:8787"

// Config holds settings shared by every command.
type Config struct {
	// DBPath overrides the journal location. Empty means the XDG default.
	DBPath string `env:"DB"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFile receives TUI logs. Empty means next to the journal.
	LogFile string `env:"LOG_FILE"`

	Addr string `env:"ADDR" envDefault:"127.0.0.1:8787"`
}

// Load reads files (default ".env") if present, then parses MATHQUEST_*
// variables. Variables already set in the process win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "MATHQUEST_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLevel maps debug/info/warn/error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
