// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type StoreType string

const (
	StoreMongo    StoreType = "mongo"
	StorePostgres StoreType = "postgres"
	StoreSQLite   StoreType = "sqlite"
	StoreMemory   StoreType = "memory"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  StoreType
	DatabaseName  string
	StoreTimeout  time.Duration
	PollCacheSize int
	LogLevel      slog.Level
}

// LoadEnvFiles loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var dbType, logLevel string

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&dbType, "t", "", "Store type (mongo, postgres, sqlite or memory)")
	fs.StringVar(&cfg.DatabaseName, "db-name", "", "Mongo database name")

	// Tuning
	fs.DurationVar(&cfg.StoreTimeout, "store-timeout", 0, "Store connect and call timeout")
	fs.IntVar(&cfg.PollCacheSize, "poll-cache", 0, "Poll cache entries, 0 disables")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if dbType == "" {
		dbType = os.Getenv("DATABASE_TYPE")
		if dbType == "" {
			dbType = string(StoreMongo)
		}
	}
	switch StoreType(dbType) {
	case StoreMongo, StorePostgres, StoreSQLite, StoreMemory:
		cfg.DatabaseType = StoreType(dbType)
	default:
		return Config{}, fmt.Errorf("unknown store type %q", dbType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("MONGO_URI")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType != StoreMemory {
		return Config{}, errors.New("database URL required (use -d, DATABASE_URL or MONGO_URI env)")
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = os.Getenv("DATABASE")
		if cfg.DatabaseName == "" {
			cfg.DatabaseName = "quickly_vote"
		}
	}

	if !set["store-timeout"] {
		if s := os.Getenv("STORE_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid STORE_TIMEOUT env variable")
			}
			cfg.StoreTimeout = d
		} else {
			cfg.StoreTimeout = 5 * time.Second
		}
	}
	if cfg.StoreTimeout < 0 {
		return Config{}, errors.New("store timeout cannot be negative")
	}

	if !set["poll-cache"] {
		if s := os.Getenv("POLL_CACHE_SIZE"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid POLL_CACHE_SIZE env variable")
			}
			cfg.PollCacheSize = n
		} else {
			cfg.PollCacheSize = 512
		}
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	return cfg, nil
}
