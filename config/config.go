// Package config assembles the startup configuration of roadtrip from
// positional arguments, ROADTRIP_* environment variables and an optional
// .env file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvBorders    = "ROADTRIP_BORDERS"
	EnvCapitals   = "ROADTRIP_CAPDIST"
	EnvStateNames = "ROADTRIP_STATE_NAME"
	EnvAliases    = "ROADTRIP_ALIASES"
	EnvLogLevel   = "ROADTRIP_LOG_LEVEL"
	EnvCacheSize  = "ROADTRIP_CACHE_SIZE"
)

// Defaults used when neither an argument nor the environment sets a value.
const (
	DefaultBorders    = "borders.txt"
	DefaultCapitals   = "capdist.csv"
	DefaultStateNames = "state_name.tsv"
	DefaultCacheSize  = 256
)

// ErrInvalid reports a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved startup configuration.
type Config struct {
	Borders    string
	Capitals   string
	StateNames string
	// Aliases is an optional YAML alias file merged over the built-in table.
	Aliases   string
	LogLevel  slog.Level
	CacheSize int
}

// Load reads envFiles (".env" when none is given; a missing default file is
// not an error) and resolves the configuration. args are the positional
// command-line arguments: borders, capital distances, country names.
func Load(args []string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("config: env file: %w", err)
	}

	return Resolve(args, os.Getenv)
}

// Resolve builds a Config from positional args and getenv without touching
// the process environment.
func Resolve(args []string, getenv func(string) string) (*Config, error) {
	if len(args) > 3 {
		return nil, fmt.Errorf("%w: expected at most 3 input files, got %d", ErrInvalid, len(args))
	}
	env := func(key string) string { return strings.TrimSpace(getenv(key)) }

	cfg := &Config{
		Borders:    firstNonEmpty(arg(args, 0), env(EnvBorders), DefaultBorders),
		Capitals:   firstNonEmpty(arg(args, 1), env(EnvCapitals), DefaultCapitals),
		StateNames: firstNonEmpty(arg(args, 2), env(EnvStateNames), DefaultStateNames),
		Aliases:    env(EnvAliases),
		LogLevel:   slog.LevelInfo,
		CacheSize:  DefaultCacheSize,
	}

	if raw := env(EnvLogLevel); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvLogLevel, raw)
		}
	}
	if raw := env(EnvCacheSize); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvCacheSize, raw)
		}
		cfg.CacheSize = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields that have no safe fallback.
func (c *Config) Validate() error {
	if c.CacheSize <= 0 {
		return fmt.Errorf("%w: cache size must be positive, got %d", ErrInvalid, c.CacheSize)
	}

	return nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return strings.TrimSpace(args[i])
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
