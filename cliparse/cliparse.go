// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = 3318
	defaultLedgerName = "default"
	defaultEnvFile    = ".env"
)

var defaultCandidates = []string{"Candidate1", "Candidate2", "Candidate3"}

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string
	LedgerName   string
	Candidates   []string
	EnvFile      string
}

// ParseFlags reads flags, then a .env file, then environment variables.
// CLI flags take precedence over both.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var candidates string

	flags := flag.NewFlagSet("votewatch", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Storage backend (memory, sqlite or postgres)")

	// Ledger setup
	flags.StringVar(&cfg.LedgerName, "ledger", "", "Ledger name (scopes the admin key)")
	flags.StringVar(&candidates, "candidates", "", "Comma-separated seed candidates")
	flags.StringVar(&cfg.EnvFile, "env-file", defaultEnvFile, "Path to a .env file")

	// Secrets (prefer env variables, but allow CLI for dev)
	flags.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "memory"
		}
	}
	switch cfg.DatabaseType {
	case "memory", "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.LedgerName == "" {
		cfg.LedgerName = os.Getenv("LEDGER_NAME")
		if cfg.LedgerName == "" {
			cfg.LedgerName = defaultLedgerName
		}
	}

	if candidates == "" {
		candidates = os.Getenv("DEFAULT_CANDIDATES")
	}
	cfg.Candidates = splitList(candidates)
	if len(cfg.Candidates) == 0 {
		cfg.Candidates = append([]string(nil), defaultCandidates...)
	}

	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}

	return cfg, nil
}

// RequireAdminSalt fails when no admin key salt was configured. Commands that
// expose admin operations call it after ParseFlags.
func (c Config) RequireAdminSalt() error {
	if c.AdminKeySalt == "" {
		return errors.New("ADMIN_KEY_SALT required")
	}
	return nil
}

// loadEnvFile populates unset environment variables from path. A missing
// file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
